package sampler

import "strings"

// Tree is the extended tree decoded from a sampled tuple (phi^-1 in the
// counting bijection): internal nodes are pending DFA locations, leaves are
// unresolved back-edges later redirected onto an earlier internal node by
// LiftTree.
type Tree struct {
	IsLeaf   bool
	Access   []string // alphabet letters from the root to this node
	Children []*Tree  // len(alphabet), in alphabet order; nil for leaves
}

// AccessName joins the access sequence into a human-readable label, e.g.
// []string{"a","a","b"} -> "a.a.b". The root's access sequence is empty.
func (t *Tree) AccessName() string {
	return strings.Join(t.Access, ".")
}

// DecodeTree decodes tuple into its extended tree over alphabet, following
// the walk: prepend a sentinel 1 to the tuple, then scan left to right with
// a single pointer into the combined sequence. For each of a node's
// alphabet-many children, in order: if the pointer is at the sequence's
// last entry, emit a leaf (the saturated case — nothing remains to
// compare); else if the entry at the pointer equals the next one, emit a
// leaf and advance the pointer by one; otherwise increment the entry at the
// pointer (without advancing it) and recurse to decode an internal child.
func DecodeTree(tuple []int, alphabet []string) *Tree {
	seq := make([]int, len(tuple)+1)
	seq[0] = 1
	copy(seq[1:], tuple)

	pos := 0
	var decode func(access []string) *Tree
	decode = func(access []string) *Tree {
		node := &Tree{Access: access, Children: make([]*Tree, 0, len(alphabet))}
		for _, letter := range alphabet {
			childAccess := append(append([]string{}, access...), letter)

			if pos == len(seq)-1 {
				node.Children = append(node.Children, &Tree{IsLeaf: true, Access: childAccess})
				continue
			}
			if seq[pos] == seq[pos+1] {
				node.Children = append(node.Children, &Tree{IsLeaf: true, Access: childAccess})
				pos++
				continue
			}

			seq[pos]++
			node.Children = append(node.Children, decode(childAccess))
		}
		return node
	}

	return decode(nil)
}
