package guard

// DNFAnd is a conjunction of atomic relations — a leaf-level conjunct in a
// disjunctive normal form.
type DNFAnd[L Leaf] struct {
	Terms []BinaryRel[L]
}

// DNFOr is a disjunction of DNFAnds: the normal form produced by
// ToDisjunctiveNormalForm.
type DNFOr[L Leaf] struct {
	Conjuncts []DNFAnd[L]
}

// ToDisjunctiveNormalForm produces a DNFOr whose children are DNFAnds of
// BinaryRels, preserving observable child order:
//
//   - True          -> DNFOr{} (the empty disjunction, deliberately; callers
//     distinguish this from a concrete False by context — downstream
//     printers treat a guard that was literally True specially, see the
//     wiki package's formatters)
//   - BinaryRel r    -> DNFOr{[DNFAnd{[r]}]}
//   - And(c0..cn)    -> pairwise cartesian product of the DNF of each child
//   - Or(d0..dn)     -> concatenation of the DNF conjunct lists
//
// Complexity is exponential in the nesting depth of And-over-Or, which is
// acceptable because guards produced by this generator are shallow.
func ToDisjunctiveNormalForm[L Leaf](g Node[L]) DNFOr[L] {
	switch n := g.(type) {
	case True[L]:
		return DNFOr[L]{}
	case BinaryRel[L]:
		return DNFOr[L]{Conjuncts: []DNFAnd[L]{{Terms: []BinaryRel[L]{n}}}}
	case And[L]:
		acc := DNFOr[L]{Conjuncts: []DNFAnd[L]{{}}} // identity: single empty conjunct
		for _, c := range n.Children {
			acc = cartesianAnd(acc, ToDisjunctiveNormalForm[L](c))
		}
		return acc
	case Or[L]:
		var conjuncts []DNFAnd[L]
		for _, c := range n.Children {
			conjuncts = append(conjuncts, ToDisjunctiveNormalForm[L](c).Conjuncts...)
		}
		return DNFOr[L]{Conjuncts: conjuncts}
	default:
		return DNFOr[L]{}
	}
}

// cartesianAnd combines two DNFs by forming every pairwise concatenation of
// their conjuncts' terms, preserving order: for each conjunct of a (in
// order), for each conjunct of b (in order), emit a ++ b.
func cartesianAnd[L Leaf](a, b DNFOr[L]) DNFOr[L] {
	if len(a.Conjuncts) == 0 || len(b.Conjuncts) == 0 {
		return DNFOr[L]{}
	}
	out := make([]DNFAnd[L], 0, len(a.Conjuncts)*len(b.Conjuncts))
	for _, ca := range a.Conjuncts {
		for _, cb := range b.Conjuncts {
			terms := make([]BinaryRel[L], 0, len(ca.Terms)+len(cb.Terms))
			terms = append(terms, ca.Terms...)
			terms = append(terms, cb.Terms...)
			out = append(out, DNFAnd[L]{Terms: terms})
		}
	}
	return DNFOr[L]{Conjuncts: out}
}

// ToNode converts a DNFOr back into the general Node sum type.
func (d DNFOr[L]) ToNode() Node[L] {
	if len(d.Conjuncts) == 0 {
		return Or[L]{}
	}
	children := make([]Node[L], len(d.Conjuncts))
	for i, c := range d.Conjuncts {
		children[i] = c.ToNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	return Or[L]{Children: children}
}

// ToNode converts a DNFAnd back into the general Node sum type.
func (c DNFAnd[L]) ToNode() Node[L] {
	if len(c.Terms) == 0 {
		return True[L]{}
	}
	children := make([]Node[L], len(c.Terms))
	for i, t := range c.Terms {
		children[i] = t
	}
	if len(children) == 1 {
		return children[0]
	}
	return And[L]{Children: children}
}

// HasNonStrictRelation reports whether any term in the DNF uses <= or >=,
// the relations the RALib-safe dialect cannot express.
func (d DNFOr[L]) HasNonStrictRelation() bool {
	for _, c := range d.Conjuncts {
		for _, t := range c.Terms {
			if t.Op == Geq || t.Op == Leq {
				return true
			}
		}
	}
	return false
}
