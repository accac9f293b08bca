package sampler

import (
	"fmt"
	"math/rand"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/ra"
	"github.com/ra-bench/ra-gen/symbol"
)

// Options configures a single call to GenerateRA.
type Options struct {
	// NLocations is the exact number of locations the sampled automaton
	// must have (the n of the Champarnaud-Paranthoën counting table).
	NLocations int

	// Alphabet lists the input letters. Each becomes a labeled symbol of
	// arity NParameters.
	Alphabet []string

	// NParameters is the number of parameters carried by every input
	// symbol; parameter names are p0..p(NParameters-1).
	NParameters int

	// DefaultGuard labels every sampled transition. Pass guard.TrueGuard()
	// for an unconstrained automaton.
	DefaultGuard guard.Guard

	// AcceptProbability is the independent Bernoulli probability that any
	// given location is accepting. Zero value defaults to 0.5.
	AcceptProbability float64

	// RootName names the initial location; descendant locations are named
	// RootName + "." + access-sequence. Empty defaults to "q0".
	RootName string

	// Seed drives the random source. Equal Options with equal Seed always
	// produce structurally identical automata.
	Seed int64
}

// GenerateRA samples a uniformly random DFA with exactly opts.NLocations
// locations over opts.Alphabet (via the counting table, tuple walk, tree
// decode and tree lift in this package) and wraps it as a
// RegisterAutomaton: labeled symbols for the alphabet, opts.DefaultGuard
// and an empty assignment on every transition, and no registers.
func GenerateRA(opts Options) (*ra.RegisterAutomaton, error) {
	if opts.NLocations < 1 {
		return nil, ErrInvalidLocationCount
	}
	if len(opts.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	acceptP := opts.AcceptProbability
	if acceptP == 0 {
		acceptP = 0.5
	}
	rootName := opts.RootName
	if rootName == "" {
		rootName = "q0"
	}

	m := len(opts.Alphabet)
	n := opts.NLocations
	rng := rand.New(rand.NewSource(opts.Seed))

	if m == 1 {
		return generateSingletonCycle(opts, rootName, acceptP, rng)
	}

	T := n * (m - 1)

	var tuple []int
	if T > 0 {
		table, err := NewTable(m, T, n)
		if err != nil {
			return nil, err
		}
		tuple = SampleTuple(table, m, T, n, rng)
	}

	tree := DecodeTree(tuple, opts.Alphabet)
	skeleton := LiftTree(tree, opts.Alphabet, rng)

	accessToName := make(map[string]string, len(skeleton.Locations))
	for _, access := range skeleton.Locations {
		if access == "" {
			accessToName[access] = rootName
		} else {
			accessToName[access] = rootName + "." + access
		}
	}

	b := ra.NewBuilder(accessToName[""])
	for _, access := range skeleton.Locations {
		accepting := rng.Float64() < acceptP
		if access == "" {
			b.MarkAccepting(rootName, accepting)
			continue
		}
		if _, err := b.AddLocation(accessToName[access], accepting); err != nil {
			return nil, fmt.Errorf("sampler: %w", err)
		}
	}

	paramNames := symbol.NumberedParameterNames(opts.NParameters)
	syms := make([]symbol.LabeledSymbol, len(opts.Alphabet))
	for i, letter := range opts.Alphabet {
		sym, err := symbol.NewLabeledSymbol(letter, paramNames...)
		if err != nil {
			return nil, fmt.Errorf("sampler: %w", err)
		}
		syms[i] = sym
	}

	for _, access := range skeleton.Locations {
		from := accessToName[access]
		for i, targetAccess := range skeleton.Edges[access] {
			to := accessToName[targetAccess]
			if _, err := b.AddTransition(from, syms[i], opts.DefaultGuard, nil, to); err != nil {
				return nil, fmt.Errorf("sampler: %w", err)
			}
		}
	}

	return b.Done(), nil
}

// generateSingletonCycle handles a single-letter alphabet as a special
// case: NewTable rejects m < 2 (the counting table only makes sense for
// branching structure), and indeed a deterministic automaton over one
// symbol has no branching to count — every location has exactly one
// outgoing transition, so the only connected shape with NLocations
// locations is a single n-cycle. Locations are chained by the one symbol,
// the last wrapping back to the root.
func generateSingletonCycle(opts Options, rootName string, acceptP float64, rng *rand.Rand) (*ra.RegisterAutomaton, error) {
	sym, err := symbol.NewLabeledSymbol(opts.Alphabet[0], symbol.NumberedParameterNames(opts.NParameters)...)
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}

	names := make([]string, opts.NLocations)
	names[0] = rootName
	for i := 1; i < opts.NLocations; i++ {
		names[i] = fmt.Sprintf("%s.%d", rootName, i)
	}

	b := ra.NewBuilder(rootName)
	b.MarkAccepting(rootName, rng.Float64() < acceptP)
	for _, name := range names[1:] {
		accepting := rng.Float64() < acceptP
		if _, err := b.AddLocation(name, accepting); err != nil {
			return nil, fmt.Errorf("sampler: %w", err)
		}
	}

	for i, name := range names {
		to := names[(i+1)%len(names)]
		if _, err := b.AddTransition(name, sym, opts.DefaultGuard, nil, to); err != nil {
			return nil, fmt.Errorf("sampler: %w", err)
		}
	}

	return b.Done(), nil
}
