package guard

import "errors"

var (
	// ErrUnboundSymbol is returned by Evaluate when a valuation does not
	// cover a symbol appearing in a binary relation.
	ErrUnboundSymbol = errors.New("guard: unbound symbol in valuation")

	// ErrTrueNotInvertible is returned by Invert: negation of True is not
	// expressible in this inequality theory.
	ErrTrueNotInvertible = errors.New("guard: True is not invertible")

	// ErrUnsupportedInRALibDialect is returned by the RALib-safe printer
	// when it encounters <= or >= that was not removed by a prior
	// SimplifyInequalities + ToDisjunctiveNormalForm pass.
	ErrUnsupportedInRALibDialect = errors.New("guard: <= / >= unsupported in RALib dialect")

	// ErrNegativeValue is returned by NumFromInt64 for a negative input:
	// Num is uint256-backed and has no representation for it.
	ErrNegativeValue = errors.New("guard: negative value has no Num representation")
)
