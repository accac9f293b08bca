package sampler

import (
	"math/big"
	"math/rand"
)

// SampleTuple draws a uniformly random tuple K = (k_1, ..., k_t) counted by
// table at (t, p), following the deterministic decision walk: at state
// (curT, curP) draw d uniformly from [1, C[curT][curP]]; while curP > 1 and
// d falls within the first C[curT][curP-1] outcomes, reduce curP and
// re-draw; otherwise commit curP (prepending it to the suffix built so far)
// and decrement curT. The walk ends at curT == 1, a base case solved by a
// direct cumulative-sum search.
//
// Returns nil (the empty tuple) when p < ceil(t/(m-1)): the table has no
// valid completions from that state.
func SampleTuple(table *Table, m, t, p int, rng *rand.Rand) []int {
	threshold := ceilDiv(t, m-1)
	if p < threshold {
		return nil
	}

	var suffix []int
	curT, curP := t, p
	for {
		if curT == 1 {
			d := drawUniform(rng, table.Get(1, curP))
			x := baseCaseSearch(d)
			out := make([]int, 0, len(suffix)+1)
			out = append(out, x)
			out = append(out, suffix...)
			return out
		}

		d := drawUniform(rng, table.Get(curT, curP))
		if curP > 1 {
			prevCount := table.Get(curT, curP-1)
			if d.Cmp(prevCount) <= 0 {
				curP--
				continue
			}
		}

		next := make([]int, 0, len(suffix)+1)
		next = append(next, curP)
		next = append(next, suffix...)
		suffix = next
		curT--
	}
}

// baseCaseSearch finds the smallest x such that d <= x*(x+1)/2, the
// cumulative sum 1+2+...+x of the base row's weights. Since d is drawn from
// [1, C[1][p]] = [1, p*(p+1)/2], the result always lies in [1, p].
func baseCaseSearch(d *big.Int) int {
	for x := int64(1); ; x++ {
		if d.Cmp(big.NewInt(x*(x+1)/2)) <= 0 {
			return int(x)
		}
	}
}

// drawUniform returns a uniformly random value in [1, n].
func drawUniform(rng *rand.Rand, n *big.Int) *big.Int {
	d := new(big.Int).Rand(rng, n)
	return d.Add(d, big.NewInt(1))
}
