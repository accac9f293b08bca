package sampler

import "math/rand"

// Skeleton is the bare transition structure lifted from an extended tree
// (Theorem 6): a set of locations, named by their tree access sequence, and
// for each a target location per alphabet position.
type Skeleton struct {
	// Locations lists every internal node's access name, in the tree's
	// depth-first, ascending-alphabet-index order — which is also the
	// access sequences' lexicographic order, root ("") first.
	Locations []string

	// Edges maps a location's access name to one target access name per
	// alphabet letter, in alphabet order.
	Edges map[string][]string
}

// LiftTree turns an extended tree into a Skeleton: every internal-to-internal
// edge becomes a transition to the child location; every internal-to-leaf
// edge becomes a transition to an internal location drawn uniformly at
// random from the internal nodes visited so far in the traversal — which,
// because traversal order is lexicographic, is exactly the set of internal
// nodes whose access sequence is lexicographically less than the leaf's.
func LiftTree(tree *Tree, alphabet []string, rng *rand.Rand) *Skeleton {
	sk := &Skeleton{Edges: make(map[string][]string)}
	var priorInternal []*Tree

	var visit func(node *Tree) string
	visit = func(node *Tree) string {
		name := node.AccessName()
		sk.Locations = append(sk.Locations, name)
		priorInternal = append(priorInternal, node)

		targets := make([]string, len(alphabet))
		for i, child := range node.Children {
			if child.IsLeaf {
				choice := priorInternal[rng.Intn(len(priorInternal))]
				targets[i] = choice.AccessName()
			} else {
				targets[i] = visit(child)
			}
		}
		sk.Edges[name] = targets
		return name
	}

	visit(tree)
	return sk
}
