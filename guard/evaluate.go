package guard

import (
	"fmt"

	"github.com/ra-bench/ra-gen/symbol"
)

// Valuation maps a symbol to a concrete value for Evaluate. Evaluation is
// specific to the internal model's guard dialect (Node[symbol.Symbol]);
// the Wiki guard dialect is never evaluated, only parsed/printed/converted.
type Valuation map[symbol.Symbol]Num

// Evaluate evaluates g under valuation. For BinaryRel, both operand
// symbols must be present in valuation (ErrUnboundSymbol otherwise). And/Or
// short-circuit.
func Evaluate(g Node[symbol.Symbol], valuation Valuation) (bool, error) {
	switch n := g.(type) {
	case True[symbol.Symbol]:
		return true, nil
	case BinaryRel[symbol.Symbol]:
		lv, ok := valuation[n.Left]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnboundSymbol, n.Left)
		}
		rv, ok := valuation[n.Right]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnboundSymbol, n.Right)
		}
		return evalRel(n.Op, lv, rv), nil
	case And[symbol.Symbol]:
		for _, c := range n.Children {
			ok, err := Evaluate(c, valuation)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case Or[symbol.Symbol]:
		for _, c := range n.Children {
			ok, err := Evaluate(c, valuation)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("guard: unknown guard node %T", g)
	}
}

func evalRel(op Rel, l, r Num) bool {
	cmp := l.Cmp(r)
	switch op {
	case Eq:
		return cmp == 0
	case Neq:
		return cmp != 0
	case Geq:
		return cmp >= 0
	case Gt:
		return cmp > 0
	case Leq:
		return cmp <= 0
	case Lt:
		return cmp < 0
	default:
		return false
	}
}
