// Package guard implements the boolean-guard theory over inequalities used
// to decorate register-automaton transitions: a closed sum type of guards,
// free-variable extraction, De Morgan negation, inequality desugaring, and
// conversion to disjunctive normal form.
//
// The sum type is generic over its leaf type (Node[L]) so that the same
// algebra serves both the internal model, whose atoms compare
// symbol.Symbol values, and the Wiki guard dialect, whose atoms compare
// expressions that may additionally be integer literals. This follows the
// "guard trait" extensibility the generator's design calls for: everything
// here except Evaluate (which is specific to the internal model's
// symbol-keyed valuations) is leaf-agnostic.
package guard

import "fmt"

// Rel is one of the six binary relations a guard atom can carry.
type Rel int

const (
	Eq Rel = iota
	Neq
	Geq
	Gt
	Leq
	Lt
)

func (r Rel) String() string {
	switch r {
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Geq:
		return ">="
	case Gt:
		return ">"
	case Leq:
		return "<="
	case Lt:
		return "<"
	default:
		return "?"
	}
}

// invertRel flips a relation under De Morgan negation:
// Eq<->Neq, Geq<->Lt, Gt<->Leq, Leq<->Gt, Lt<->Geq.
func invertRel(r Rel) Rel {
	switch r {
	case Eq:
		return Neq
	case Neq:
		return Eq
	case Geq:
		return Lt
	case Lt:
		return Geq
	case Gt:
		return Leq
	case Leq:
		return Gt
	default:
		return r
	}
}

// Leaf is the constraint a guard's atoms must satisfy: comparable (so
// FreeVariables can dedupe leaves in a map) and Stringer (so guards print
// and leaves sort deterministically).
type Leaf interface {
	comparable
	fmt.Stringer
}

// Node is the closed sum type True | And | Or | BinaryRel, generic over
// leaf type L. Every implementation is a distinct concrete type switched on
// by Invert, SimplifyInequalities, ToDisjunctiveNormalForm and FreeVariables.
type Node[L Leaf] interface {
	guardNode()
	String() string
}

// True is the constant guard that always evaluates to true.
type True[L Leaf] struct{}

func (True[L]) guardNode()     {}
func (True[L]) String() string { return "" }

// And is a variadic conjunction. An empty And is equivalent to True by
// convention: every consumer here (Evaluate, DNF, Invert) handles
// len(Children)==0 correctly without special-casing.
type And[L Leaf] struct {
	Children []Node[L]
}

func (And[L]) guardNode() {}
func (a And[L]) String() string {
	return joinNodes(a.Children, " ∧ ")
}

// Or is a variadic disjunction. An empty Or is equivalent to False by
// convention; generators in this module never emit an empty Or.
type Or[L Leaf] struct {
	Children []Node[L]
}

func (Or[L]) guardNode() {}
func (o Or[L]) String() string {
	// NOTE: " ∨ " here, not " ∧ " — the source material's Or.toString used
	// " ∧ " by what is almost certainly a copy-paste mistake; this is the
	// corrected separator (see DESIGN.md).
	return joinNodes(o.Children, " ∨ ")
}

func joinNodes[L Leaf](gs []Node[L], sep string) string {
	out := ""
	for i, g := range gs {
		if i > 0 {
			out += sep
		}
		out += g.String()
	}
	return out
}

// BinaryRel is an atomic relation between two leaves.
type BinaryRel[L Leaf] struct {
	Op    Rel
	Left  L
	Right L
}

func (BinaryRel[L]) guardNode() {}
func (b BinaryRel[L]) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.String(), b.Right.String())
}

// FreeVariables returns the set of leaves appearing in g, as a
// deterministically ordered slice (sorted by String()), so that two calls
// over structurally-equal guards produce identical output.
func FreeVariables[L Leaf](g Node[L]) []L {
	seen := make(map[L]bool)
	var walk func(Node[L])
	walk = func(g Node[L]) {
		switch n := g.(type) {
		case True[L]:
			return
		case BinaryRel[L]:
			seen[n.Left] = true
			seen[n.Right] = true
		case And[L]:
			for _, c := range n.Children {
				walk(c)
			}
		case Or[L]:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(g)
	out := make([]L, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sortLeaves(out)
	return out
}

func sortLeaves[L Leaf](out []L) {
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].String() < out[j-1].String(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
}

// Invert applies De Morgan's laws to push negation to the leaves, flipping
// each binary relation. Fails with ErrTrueNotInvertible if any subterm is
// True, because negation of True is not expressible in this theory.
func Invert[L Leaf](g Node[L]) (Node[L], error) {
	switch n := g.(type) {
	case True[L]:
		return nil, ErrTrueNotInvertible
	case BinaryRel[L]:
		return BinaryRel[L]{Op: invertRel(n.Op), Left: n.Left, Right: n.Right}, nil
	case And[L]:
		// not (a && b && ...) == (not a) || (not b) || ...
		children := make([]Node[L], 0, len(n.Children))
		for _, c := range n.Children {
			ic, err := Invert[L](c)
			if err != nil {
				return nil, err
			}
			children = append(children, ic)
		}
		return Or[L]{Children: children}, nil
	case Or[L]:
		// not (a || b || ...) == (not a) && (not b) && ...
		children := make([]Node[L], 0, len(n.Children))
		for _, c := range n.Children {
			ic, err := Invert[L](c)
			if err != nil {
				return nil, err
			}
			children = append(children, ic)
		}
		return And[L]{Children: children}, nil
	default:
		return nil, fmt.Errorf("guard: unknown guard node %T", g)
	}
}

// SimplifyInequalities rewrites x>=y -> x>y || x==y and x<=y -> x<y || x==y,
// recursively through And/Or. Eq, Neq, Gt, Lt, True are fixed points.
func SimplifyInequalities[L Leaf](g Node[L]) Node[L] {
	switch n := g.(type) {
	case True[L]:
		return n
	case BinaryRel[L]:
		switch n.Op {
		case Geq:
			return Or[L]{Children: []Node[L]{
				BinaryRel[L]{Op: Gt, Left: n.Left, Right: n.Right},
				BinaryRel[L]{Op: Eq, Left: n.Left, Right: n.Right},
			}}
		case Leq:
			return Or[L]{Children: []Node[L]{
				BinaryRel[L]{Op: Lt, Left: n.Left, Right: n.Right},
				BinaryRel[L]{Op: Eq, Left: n.Left, Right: n.Right},
			}}
		default:
			return n
		}
	case And[L]:
		children := make([]Node[L], len(n.Children))
		for i, c := range n.Children {
			children[i] = SimplifyInequalities[L](c)
		}
		return And[L]{Children: children}
	case Or[L]:
		children := make([]Node[L], len(n.Children))
		for i, c := range n.Children {
			children[i] = SimplifyInequalities[L](c)
		}
		return Or[L]{Children: children}
	default:
		return n
	}
}
