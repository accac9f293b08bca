package sampler

import (
	"testing"

	"github.com/ra-bench/ra-gen/guard"
)

func TestGenerateRAShapeInvariant(t *testing.T) {
	opts := Options{
		NLocations:   3,
		Alphabet:     []string{"a", "b"},
		DefaultGuard: guard.TrueGuard(),
		Seed:         1,
	}
	automaton, err := GenerateRA(opts)
	if err != nil {
		t.Fatalf("GenerateRA: %v", err)
	}
	if got := len(automaton.Locations()); got != 3 {
		t.Fatalf("locations = %d, want 3", got)
	}
	if got := len(automaton.Transitions()); got != 6 {
		t.Fatalf("transitions = %d, want 6 (3 locations * 2 letters)", got)
	}
	for _, loc := range automaton.Locations() {
		out := automaton.Outgoing(loc.Name)
		if len(out) != len(opts.Alphabet) {
			t.Errorf("location %s: %d outgoing transitions, want %d", loc.Name, len(out), len(opts.Alphabet))
		}
		seen := make(map[string]bool)
		for _, tr := range out {
			if seen[tr.Symbol.Label] {
				t.Errorf("location %s: duplicate outgoing letter %s", loc.Name, tr.Symbol.Label)
			}
			seen[tr.Symbol.Label] = true
			if tr.Guard.String() != guard.TrueGuard().String() {
				t.Errorf("location %s: transition guard = %s, want True", loc.Name, tr.Guard)
			}
			if len(tr.Assignment) != 0 {
				t.Errorf("location %s: expected empty assignment, got %v", loc.Name, tr.Assignment)
			}
		}
	}
}

func TestGenerateRASingleLetterAlphabetCycle(t *testing.T) {
	opts := Options{
		NLocations:   5,
		Alphabet:     []string{"a"},
		DefaultGuard: guard.TrueGuard(),
		Seed:         7,
	}
	automaton, err := GenerateRA(opts)
	if err != nil {
		t.Fatalf("GenerateRA: %v", err)
	}
	if got := len(automaton.Locations()); got != 5 {
		t.Fatalf("locations = %d, want 5", got)
	}
	for _, loc := range automaton.Locations() {
		out := automaton.Outgoing(loc.Name)
		if len(out) != 1 {
			t.Errorf("location %s: %d outgoing transitions, want 1", loc.Name, len(out))
		}
	}
}

func TestGenerateRADeterministic(t *testing.T) {
	opts := Options{
		NLocations:   4,
		Alphabet:     []string{"a", "b", "c"},
		DefaultGuard: guard.TrueGuard(),
		Seed:         42,
	}
	first, err := GenerateRA(opts)
	if err != nil {
		t.Fatalf("GenerateRA: %v", err)
	}
	second, err := GenerateRA(opts)
	if err != nil {
		t.Fatalf("GenerateRA: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("two runs with the same seed diverged: %s vs %s", first, second)
	}
	for _, loc := range first.Locations() {
		outA := first.Outgoing(loc.Name)
		outB := second.Outgoing(loc.Name)
		if len(outA) != len(outB) {
			t.Fatalf("location %s: outgoing count differs across identical-seed runs", loc.Name)
		}
		for i := range outA {
			if outA[i].To != outB[i].To {
				t.Errorf("location %s transition %d: target differs (%s vs %s)", loc.Name, i, outA[i].To, outB[i].To)
			}
		}
	}
}
