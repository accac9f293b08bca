package compose

import (
	"fmt"
	"math/rand"

	"github.com/ra-bench/ra-gen/ra"
)

// SplitSingle builds a fresh automaton from a with one eligible location q
// (non-initial, non-accepting, with at least two non-loop incoming and two
// non-loop outgoing transitions) split into four locations (inL, inR, outL,
// outR): q's non-loop incoming edges are shuffled and bucketed in half onto
// inL/inR, its non-loop outgoing edges likewise onto outL/outR, its
// self-loops are dropped, and two independent copies of discriminator are
// spliced in between (inL, outL) and (inR, outR), prefixed "dl_" and "dr_"
// respectively. q itself survives in the output, orphaned (no transition
// refers to it any longer). discriminator must carry no initialised
// registers.
func SplitSingle(a *ra.RegisterAutomaton, discriminator *ra.RegisterAutomaton, rng *rand.Rand) (*ra.RegisterAutomaton, error) {
	q, err := findSplittableLocation(a)
	if err != nil {
		return nil, fmt.Errorf("splitSingle: %w", err)
	}

	nb := ra.NewBuilder("l_" + a.InitialLocation().Name)
	if err := addRenamedLocations(nb, a, nil, func(n string) string { return "l_" + n }); err != nil {
		return nil, fmt.Errorf("splitSingle: %w", err)
	}

	qLoc, _ := a.Location(q)
	inL, inR := "l_"+q+"_inL", "l_"+q+"_inR"
	outL, outR := "l_"+q+"_outL", "l_"+q+"_outR"
	for _, name := range []string{inL, inR, outL, outR} {
		if _, err := nb.AddLocation(name, qLoc.IsAccepting); err != nil {
			return nil, fmt.Errorf("splitSingle: %w", err)
		}
	}

	known := make(map[string]bool)
	if err := mergeRegisters(nb, known, a, nil, ErrRegisterConflict); err != nil {
		return nil, fmt.Errorf("splitSingle: %w", err)
	}

	incoming := shuffleCopy(a.NonLoopIncoming(q), rng)
	incBuckets := Bucketed(incoming, 2)
	outgoing := shuffleCopy(a.NonLoopOutgoing(q), rng)
	outBuckets := Bucketed(outgoing, 2)

	for _, t := range a.Transitions() {
		if t.From == q || t.To == q {
			continue // q's edges are rewired below; self-loops on q are dropped
		}
		if _, err := nb.AddTransition("l_"+t.From, t.Symbol, t.Guard, t.Assignment, "l_"+t.To); err != nil {
			return nil, fmt.Errorf("splitSingle: %w", err)
		}
	}

	inTargets := [2]string{inL, inR}
	for i, bucket := range incBuckets {
		for _, t := range bucket {
			if _, err := nb.AddTransition("l_"+t.From, t.Symbol, t.Guard, t.Assignment, inTargets[i]); err != nil {
				return nil, fmt.Errorf("splitSingle: %w", err)
			}
		}
	}
	outSources := [2]string{outL, outR}
	for i, bucket := range outBuckets {
		for _, t := range bucket {
			if _, err := nb.AddTransition(outSources[i], t.Symbol, t.Guard, t.Assignment, "l_"+t.To); err != nil {
				return nil, fmt.Errorf("splitSingle: %w", err)
			}
		}
	}

	if err := spliceBetween(nb, known, discriminator, "dl_", inL, outL, ErrInitializedDiscriminator); err != nil {
		return nil, fmt.Errorf("splitSingle: %w", err)
	}
	if err := spliceBetween(nb, known, discriminator, "dr_", inR, outR, ErrInitializedDiscriminator); err != nil {
		return nil, fmt.Errorf("splitSingle: %w", err)
	}

	return nb.Done(), nil
}

// findSplittableLocation returns the name of an eligible location, chosen
// deterministically (first match in insertion order) among those that are
// non-initial, non-accepting, and have at least two non-loop incoming and
// two non-loop outgoing transitions.
func findSplittableLocation(a *ra.RegisterAutomaton) (string, error) {
	for _, loc := range a.Locations() {
		if loc.IsInitial || loc.IsAccepting {
			continue
		}
		if len(a.NonLoopIncoming(loc.Name)) >= 2 && len(a.NonLoopOutgoing(loc.Name)) >= 2 {
			return loc.Name, nil
		}
	}
	return "", ErrNoSplittableLocation
}
