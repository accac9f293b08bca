// Package sampler implements the Champarnaud–Paranthoën uniform-random DFA
// generator: an arbitrary-precision counting table over a Catalan-like
// recurrence, a deterministic decision-walk sampler over that table, a
// tuple-to-extended-tree decoder, and the lift of that tree into a minimal
// DFA and finally a RegisterAutomaton.
package sampler

import (
	"fmt"
	"math/big"
)

// Table holds the counting table C[t][p] for a fixed alphabet size m, with
// t ranging over [1..T] and p over [0..P]. Values are arbitrary-precision:
// row 16 of the m=3 reference table already exceeds 2^55, and larger
// (m, n) pairs grow super-exponentially from there.
type Table struct {
	m    int
	T, P int
	rows [][]*big.Int // rows[t-1][p]
}

// NewTable builds the counting table for alphabet size m and dimensions
// T = n*(m-1), P = n, following the recurrence:
//
//	row t=1: C[1][j] = j*(j+1)/2 for j in [1..P], C[1][0] = 0
//	row t>=2: C[t][j] = 0 if j < ceil(t/(m-1)); else
//	          C[t][j] = C[t][j-1] + j*C[t-1][j]
func NewTable(m, T, P int) (*Table, error) {
	if m < 2 {
		return nil, fmt.Errorf("sampler: alphabet size m must be >= 2, got %d", m)
	}
	if T < 1 || P < 0 {
		return nil, fmt.Errorf("sampler: invalid table dimensions T=%d P=%d", T, P)
	}

	rows := make([][]*big.Int, T)

	row1 := make([]*big.Int, P+1)
	row1[0] = big.NewInt(0)
	for j := 1; j <= P; j++ {
		jj := big.NewInt(int64(j))
		v := new(big.Int).Mul(jj, new(big.Int).Add(jj, big.NewInt(1)))
		v.Quo(v, big.NewInt(2))
		row1[j] = v
	}
	rows[0] = row1

	for t := 2; t <= T; t++ {
		threshold := ceilDiv(t, m-1)
		prev := rows[t-2]
		row := make([]*big.Int, P+1)
		row[0] = big.NewInt(0)
		for j := 1; j <= P; j++ {
			if j < threshold {
				row[j] = big.NewInt(0)
				continue
			}
			term := new(big.Int).Mul(big.NewInt(int64(j)), prev[j])
			row[j] = new(big.Int).Add(row[j-1], term)
		}
		rows[t-1] = row
	}

	return &Table{m: m, T: T, P: P, rows: rows}, nil
}

// Get returns C[t][p], or zero if (t,p) is out of the table's range.
func (tb *Table) Get(t, p int) *big.Int {
	if t < 1 || t > tb.T || p < 0 || p > tb.P {
		return big.NewInt(0)
	}
	return tb.rows[t-1][p]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
