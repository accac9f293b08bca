package paramrange

// NamedRange pairs a parameter name with its Range, the unit TaskSpec is
// built from.
type NamedRange struct {
	Name  string
	Range Range
}

// TaskSpec is an ordered list of named ranges: one axis per swept
// parameter.
type TaskSpec struct {
	Params []NamedRange
}

// Product expands the Cartesian product of every parameter's Values() into
// one flat, lexicographically ordered (by index tuple, last axis fastest)
// list of name->value maps — the single combinator spec.md §9 calls for in
// place of one Cartesian loop per call site.
func (t TaskSpec) Product() []map[string]int64 {
	axes := make([][]int64, len(t.Params))
	for i, p := range t.Params {
		axes[i] = p.Range.Values()
	}
	return Product(axes, func(combo []int64) map[string]int64 {
		out := make(map[string]int64, len(combo))
		for i, v := range combo {
			out[t.Params[i].Name] = v
		}
		return out
	})
}

// Product is the generic named-iterables-to-flat-Cartesian-product
// combinator: given k ordered axes, it calls build once per element of the
// Cartesian product, in lexicographic order on the index tuple (the last
// axis varies fastest), and returns the flat ordered list of results.
func Product[T any, R any](axes [][]T, build func(combo []T) R) []R {
	if len(axes) == 0 {
		return nil
	}
	total := 1
	for _, a := range axes {
		if len(a) == 0 {
			return nil
		}
		total *= len(a)
	}

	out := make([]R, 0, total)
	idx := make([]int, len(axes))
	combo := make([]T, len(axes))
	for {
		for i, a := range axes {
			combo[i] = a[idx[i]]
		}
		out = append(out, build(append([]T{}, combo...)))

		pos := len(axes) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(axes[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return out
}
