package guard

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Num is the numeric value carried by guard valuations and register
// initial values (Wiki Expression constants are plain int64). It wraps *uint256.Int the way the teacher's guard
// evaluator (tokenmodel/guard/eval.go) represents bound numeric values,
// giving registers and parameters 256-bit range instead of a machine int.
type Num struct {
	v *uint256.Int
}

// NumFromInt64 wraps a machine int64 as a Num. Negative values are not
// representable (uint256 is unsigned); callers in this theory only deal
// with non-negative register/parameter values and literal constants, so a
// negative input is rejected rather than silently clamped to zero.
func NumFromInt64(n int64) (Num, error) {
	if n < 0 {
		return Num{}, fmt.Errorf("%w: %d", ErrNegativeValue, n)
	}
	return Num{v: uint256.NewInt(uint64(n))}, nil
}

// NumFromUint64 wraps a machine uint64 as a Num.
func NumFromUint64(n uint64) Num {
	return Num{v: uint256.NewInt(n)}
}

// Cmp compares two Num values the way uint256.Int.Cmp does: -1, 0, 1.
func (n Num) Cmp(other Num) int {
	if n.v == nil {
		n.v = uint256.NewInt(0)
	}
	if other.v == nil {
		other.v = uint256.NewInt(0)
	}
	return n.v.Cmp(other.v)
}

// Uint64 returns the value truncated to uint64.
func (n Num) Uint64() uint64 {
	if n.v == nil {
		return 0
	}
	return n.v.Uint64()
}

// String renders the decimal value.
func (n Num) String() string {
	if n.v == nil {
		return "0"
	}
	return n.v.Dec()
}
