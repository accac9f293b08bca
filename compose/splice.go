package compose

import (
	"fmt"
	"math/rand"

	"github.com/ra-bench/ra-gen/ra"
)

// spliceBetween copies r into b, aliasing r's initial location onto the
// already-present fromAlias and r's rendezvous location (findFirstTerminal)
// onto the already-present toAlias; every other location gets prefix. r
// must carry no initialised registers (forbidInitial names the error to
// raise otherwise); its other registers merge into known by name.
func spliceBetween(b *ra.Builder, known map[string]bool, r *ra.RegisterAutomaton, prefix, fromAlias, toAlias string, forbidInitial error) error {
	rInit := r.InitialLocation().Name
	rTerm, err := findFirstTerminal(r)
	if err != nil {
		return err
	}

	name := func(n string) string {
		switch n {
		case rInit:
			return fromAlias
		case rTerm:
			return toAlias
		default:
			return prefix + n
		}
	}

	for _, loc := range r.Locations() {
		if loc.Name == rInit || loc.Name == rTerm {
			continue
		}
		if _, err := b.AddLocation(name(loc.Name), loc.IsAccepting); err != nil {
			return err
		}
	}

	if err := mergeRegisters(b, known, r, forbidInitial, ErrRegisterConflict); err != nil {
		return err
	}

	for _, t := range r.Transitions() {
		if _, err := b.AddTransition(name(t.From), t.Symbol, t.Guard, t.Assignment, name(t.To)); err != nil {
			return err
		}
	}
	return nil
}

// PartialReplacement builds a fresh automaton from a with a share (in
// [0, 1]) of a maximal independent edge set of its transitions spliced out
// and replaced by copies of replacements, distributed round-robin in
// as-equal-as-possible buckets. None of replacements may carry an
// initialised register.
func PartialReplacement(a *ra.RegisterAutomaton, share float64, replacements []*ra.RegisterAutomaton, rng *rand.Rand) (*ra.RegisterAutomaton, error) {
	if share < 0 || share > 1 {
		return nil, fmt.Errorf("partialReplacement: %w", ErrInvalidShare)
	}
	if share > 0 && len(replacements) == 0 {
		return nil, fmt.Errorf("partialReplacement: %w", ErrNoReplacements)
	}

	candidates := independentEdgeSet(a, rng)
	count := int(float64(len(candidates)) * share)
	shuffled := shuffleCopy(candidates, rng)
	chosen := shuffled[:count]

	replacedIdx := make(map[*ra.Transition]int, count)
	if len(replacements) > 0 {
		buckets := Bucketed(chosen, len(replacements))
		for ri, bucket := range buckets {
			for _, t := range bucket {
				replacedIdx[t] = ri
			}
		}
	}

	nb := ra.NewBuilder("l_" + a.InitialLocation().Name)
	prefixed := func(n string) string { return "l_" + n }
	if err := addRenamedLocations(nb, a, nil, prefixed); err != nil {
		return nil, fmt.Errorf("partialReplacement: %w", err)
	}
	known := make(map[string]bool)
	if err := mergeRegisters(nb, known, a, nil, ErrRegisterConflict); err != nil {
		return nil, fmt.Errorf("partialReplacement: %w", err)
	}

	spliceCount := 0
	for _, t := range a.Transitions() {
		ri, replaced := replacedIdx[t]
		if !replaced {
			if _, err := nb.AddTransition("l_"+t.From, t.Symbol, t.Guard, t.Assignment, "l_"+t.To); err != nil {
				return nil, fmt.Errorf("partialReplacement: %w", err)
			}
			continue
		}
		prefix := fmt.Sprintf("pr_%d_", spliceCount)
		spliceCount++
		if err := spliceBetween(nb, known, replacements[ri], prefix, "l_"+t.From, "l_"+t.To, ErrInitializedReplacement); err != nil {
			return nil, fmt.Errorf("partialReplacement: %w", err)
		}
	}

	return nb.Done(), nil
}

// independentEdgeSet repeatedly picks a random remaining transition, adds
// it to the candidate set, and discards every other transition touching
// either of its endpoints, until none remain.
func independentEdgeSet(a *ra.RegisterAutomaton, rng *rand.Rand) []*ra.Transition {
	remaining := append([]*ra.Transition{}, a.Transitions()...)
	var candidates []*ra.Transition
	for len(remaining) > 0 {
		i := rng.Intn(len(remaining))
		picked := remaining[i]
		candidates = append(candidates, picked)

		filtered := remaining[:0]
		for _, t := range remaining {
			if t.From != picked.From && t.From != picked.To && t.To != picked.From && t.To != picked.To {
				filtered = append(filtered, t)
			}
		}
		remaining = filtered
	}
	return candidates
}

// shuffleCopy returns a Fisher-Yates shuffled copy of items, leaving items
// untouched.
func shuffleCopy[T any](items []T, rng *rand.Rand) []T {
	out := append([]T{}, items...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
