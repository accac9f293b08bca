package compose

import (
	"math/rand"
	"testing"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/ra"
)

func buildCycleA(t *testing.T) *ra.RegisterAutomaton {
	t.Helper()
	b := ra.NewBuilder("q0")
	if _, err := b.AddLocation("q1", false); err != nil {
		t.Fatal(err)
	}
	letterA := mustSymbol(t, "a")
	if _, err := b.AddTransition("q0", letterA, guard.TrueGuard(), nil, "q1"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddTransition("q1", letterA, guard.TrueGuard(), nil, "q0"); err != nil {
		t.Fatal(err)
	}
	return b.Done()
}

func buildReplacement(t *testing.T) *ra.RegisterAutomaton {
	t.Helper()
	b := ra.NewBuilder("x0")
	if _, err := b.AddLocation("x1", true); err != nil {
		t.Fatal(err)
	}
	letterC := mustSymbol(t, "c")
	if _, err := b.AddTransition("x0", letterC, guard.TrueGuard(), nil, "x1"); err != nil {
		t.Fatal(err)
	}
	return b.Done()
}

func TestPartialReplacementZeroShareIsStructural(t *testing.T) {
	a := buildCycleA(t)
	rng := rand.New(rand.NewSource(1))
	out, err := PartialReplacement(a, 0, []*ra.RegisterAutomaton{buildReplacement(t)}, rng)
	if err != nil {
		t.Fatalf("PartialReplacement: %v", err)
	}
	if got := len(out.Locations()); got != len(a.Locations()) {
		t.Fatalf("locations = %d, want %d", got, len(a.Locations()))
	}
	if got := len(out.Transitions()); got != len(a.Transitions()) {
		t.Fatalf("transitions = %d, want %d", got, len(a.Transitions()))
	}
}

func TestPartialReplacementFullShareSplicesIn(t *testing.T) {
	a := buildCycleA(t)
	rng := rand.New(rand.NewSource(7))
	r := buildReplacement(t)
	out, err := PartialReplacement(a, 1, []*ra.RegisterAutomaton{r}, rng)
	if err != nil {
		t.Fatalf("PartialReplacement: %v", err)
	}
	// A shares both endpoints between its two transitions, so the
	// independent edge set picks exactly one of them; with share=1 that one
	// transition is replaced, so exactly one of the two original letter-"a"
	// transitions should now instead be labeled "c" (the replacement's
	// letter), between the same two (prefixed) endpoints.
	foundC := 0
	for _, tr := range out.Transitions() {
		if tr.Symbol.Label == "c" {
			foundC++
		}
	}
	if foundC != 1 {
		t.Errorf("expected exactly one spliced-in 'c' transition, got %d", foundC)
	}
	if got := len(out.Transitions()); got != 2 {
		t.Errorf("transitions = %d, want 2 (one letter swapped, not added)", got)
	}
}

func TestPartialReplacementRejectsInitializedReplacement(t *testing.T) {
	a := buildCycleA(t)
	rng := rand.New(rand.NewSource(1))

	one, err := guard.NumFromInt64(1)
	if err != nil {
		t.Fatal(err)
	}
	rb := ra.NewBuilder("x0")
	if _, err := rb.AddRegister("y", &one); err != nil {
		t.Fatal(err)
	}
	if _, err := rb.AddLocation("x1", true); err != nil {
		t.Fatal(err)
	}
	letterC := mustSymbol(t, "c")
	if _, err := rb.AddTransition("x0", letterC, guard.TrueGuard(), nil, "x1"); err != nil {
		t.Fatal(err)
	}

	_, err = PartialReplacement(a, 1, []*ra.RegisterAutomaton{rb.Done()}, rng)
	if err == nil {
		t.Fatal("expected an initialised-replacement error")
	}
}

func TestPartialReplacementInvalidShare(t *testing.T) {
	a := buildCycleA(t)
	rng := rand.New(rand.NewSource(1))
	if _, err := PartialReplacement(a, 1.5, []*ra.RegisterAutomaton{buildReplacement(t)}, rng); err == nil {
		t.Fatal("expected an invalid-share error")
	}
}
