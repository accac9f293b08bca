package guard

import "github.com/ra-bench/ra-gen/symbol"

// Guard is the internal model's guard dialect: Node[L] instantiated with
// symbol.Symbol leaves. This is component B of the generator — the
// inequality theory proper, as opposed to the Wiki guard dialect (package
// wiki), whose leaves are expressions that may additionally be integer
// literals.
type Guard = Node[symbol.Symbol]

// TrueGuard is the constant True guard over symbol.Symbol leaves.
func TrueGuard() Guard { return True[symbol.Symbol]{} }

// MakeRel constructs an atomic relation guard over two symbols.
func MakeRel(op Rel, left, right symbol.Symbol) Guard {
	return BinaryRel[symbol.Symbol]{Op: op, Left: left, Right: right}
}

// MakeAnd constructs an And guard over the given children.
func MakeAnd(children ...Guard) Guard { return And[symbol.Symbol]{Children: children} }

// MakeOr constructs an Or guard over the given children.
func MakeOr(children ...Guard) Guard { return Or[symbol.Symbol]{Children: children} }
