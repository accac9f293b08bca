package convert

import (
	"fmt"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/symbol"
	"github.com/ra-bench/ra-gen/wiki"
)

// internalGuardToWiki renames every symbol.Symbol leaf to a wiki.Expression
// variable by name: the Wiki dialect does not distinguish a parameter from
// a register at the guard-string level, only the declaration site does.
func internalGuardToWiki(g guard.Guard) wiki.WikiGuard {
	switch n := g.(type) {
	case guard.True[symbol.Symbol]:
		return guard.True[wiki.Expression]{}
	case guard.BinaryRel[symbol.Symbol]:
		return guard.BinaryRel[wiki.Expression]{
			Op:    n.Op,
			Left:  wiki.Variable(n.Left.Name),
			Right: wiki.Variable(n.Right.Name),
		}
	case guard.And[symbol.Symbol]:
		children := make([]wiki.WikiGuard, len(n.Children))
		for i, c := range n.Children {
			children[i] = internalGuardToWiki(c)
		}
		return guard.And[wiki.Expression]{Children: children}
	case guard.Or[symbol.Symbol]:
		children := make([]wiki.WikiGuard, len(n.Children))
		for i, c := range n.Children {
			children[i] = internalGuardToWiki(c)
		}
		return guard.Or[wiki.Expression]{Children: children}
	default:
		return guard.True[wiki.Expression]{}
	}
}

// resolveExpression maps a Wiki guard/assignment leaf to the internal
// symbol it denotes: a variable resolves via nameToSymbol (parameters ∪
// registers); an integer constant resolves via valueToRegister, the
// constant-value-to-register side table built while merging the Wiki
// automaton's constants into the register set.
func resolveExpression(e wiki.Expression, nameToSymbol map[string]symbol.Symbol, valueToRegister map[int64]string) (symbol.Symbol, error) {
	if e.Kind == wiki.ExprVariable {
		sym, ok := nameToSymbol[e.Name]
		if !ok {
			return symbol.Symbol{}, fmt.Errorf("%w: %q", ErrUnboundIdentifier, e.Name)
		}
		return sym, nil
	}
	regName, ok := valueToRegister[e.Value]
	if !ok {
		return symbol.Symbol{}, fmt.Errorf("%w: %d", ErrUnmappedConstant, e.Value)
	}
	return symbol.Register(regName), nil
}

// wikiGuardToInternal converts a Wiki guard to the internal dialect,
// resolving every leaf via resolveExpression.
func wikiGuardToInternal(g wiki.WikiGuard, nameToSymbol map[string]symbol.Symbol, valueToRegister map[int64]string) (guard.Guard, error) {
	switch n := g.(type) {
	case nil:
		return guard.TrueGuard(), nil
	case guard.True[wiki.Expression]:
		return guard.TrueGuard(), nil
	case guard.BinaryRel[wiki.Expression]:
		l, err := resolveExpression(n.Left, nameToSymbol, valueToRegister)
		if err != nil {
			return nil, err
		}
		r, err := resolveExpression(n.Right, nameToSymbol, valueToRegister)
		if err != nil {
			return nil, err
		}
		return guard.MakeRel(n.Op, l, r), nil
	case guard.And[wiki.Expression]:
		children := make([]guard.Guard, len(n.Children))
		for i, c := range n.Children {
			ic, err := wikiGuardToInternal(c, nameToSymbol, valueToRegister)
			if err != nil {
				return nil, err
			}
			children[i] = ic
		}
		return guard.MakeAnd(children...), nil
	case guard.Or[wiki.Expression]:
		children := make([]guard.Guard, len(n.Children))
		for i, c := range n.Children {
			ic, err := wikiGuardToInternal(c, nameToSymbol, valueToRegister)
			if err != nil {
				return nil, err
			}
			children[i] = ic
		}
		return guard.MakeOr(children...), nil
	default:
		return guard.TrueGuard(), nil
	}
}
