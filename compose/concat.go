package compose

import (
	"fmt"

	"github.com/ra-bench/ra-gen/ra"
)

// Concat builds a fresh automaton running a followed by b: b's initial
// location is merged onto a's rendezvous location (findFirstTerminal(a)).
// a's locations are renamed with prefix "l_", b's non-initial locations
// with prefix "r_"; the merged location is named
// "l_<a-rendezvous>+r_<b-initial>". Registers union-merge by name; b may
// not re-initialise a register a already declares. Neither input is
// mutated.
func Concat(a, b *ra.RegisterAutomaton) (*ra.RegisterAutomaton, error) {
	aTerm, err := findFirstTerminal(a)
	if err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}
	bInit := b.InitialLocation().Name
	merged := fmt.Sprintf("l_%s+r_%s", aTerm, bInit)

	aName := func(name string) string {
		if name == aTerm {
			return merged
		}
		return "l_" + name
	}
	bName := func(name string) string {
		if name == bInit {
			return merged
		}
		return "r_" + name
	}

	aInit := a.InitialLocation().Name
	nb := ra.NewBuilder(aName(aInit))

	if err := addRenamedLocations(nb, a, nil, aName); err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}
	if err := addRenamedLocations(nb, b, map[string]bool{bInit: true}, bName); err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}
	// The merged location takes on b's initial location's acceptance: past
	// the splice point, it is b's automaton that is running.
	nb.MarkAccepting(merged, b.InitialLocation().IsAccepting)

	known := make(map[string]bool)
	if err := mergeRegisters(nb, known, a, nil, ErrRegisterConflict); err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}
	if err := mergeRegisters(nb, known, b, nil, ErrRegisterConflict); err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}

	for _, t := range a.Transitions() {
		if _, err := nb.AddTransition(aName(t.From), t.Symbol, t.Guard, t.Assignment, aName(t.To)); err != nil {
			return nil, fmt.Errorf("concat: %w", err)
		}
	}
	for _, t := range b.Transitions() {
		if _, err := nb.AddTransition(bName(t.From), t.Symbol, t.Guard, t.Assignment, bName(t.To)); err != nil {
			return nil, fmt.Errorf("concat: %w", err)
		}
	}

	return nb.Done(), nil
}
