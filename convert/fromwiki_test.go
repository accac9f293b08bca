package convert

import (
	"testing"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/wiki"
)

func TestFromWikiRequiresUniqueInitial(t *testing.T) {
	w := &wiki.WikiRA{Locations: []wiki.WikiLocation{{Name: "q0"}, {Name: "q1"}}}
	if _, err := FromWiki(w); err != ErrNoUniqueInitialLocation {
		t.Fatalf("err = %v, want ErrNoUniqueInitialLocation", err)
	}
}

func TestFromWikiBasic(t *testing.T) {
	g, err := wiki.ParseGuard("p0 == x")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	w := &wiki.WikiRA{
		Constants: []wiki.WikiRegister{{Name: "c_1000", Type: wiki.RegisterKindInt, Value: "1000"}},
		Globals:   []wiki.WikiRegister{{Name: "x", Type: wiki.RegisterKindInt, Value: "0"}},
		Locations: []wiki.WikiLocation{{Name: "q0", Initial: true}, {Name: "q1"}},
		Transitions: []wiki.WikiTransition{
			{
				From: "q0", To: "q1", Symbol: "a", Params: []string{"p0"},
				Guard:       g,
				Assignments: []wiki.Assignment{{To: "x", From: wiki.Variable("p0")}},
			},
		},
	}

	a, err := FromWiki(w)
	if err != nil {
		t.Fatalf("FromWiki: %v", err)
	}
	if a.InitialLocation().Name != "q0" {
		t.Fatalf("initial = %q, want q0", a.InitialLocation().Name)
	}
	for _, loc := range a.Locations() {
		if loc.IsAccepting {
			t.Fatalf("location %q is accepting, want false for every converted location", loc.Name)
		}
	}
	if len(a.Registers()) != 2 {
		t.Fatalf("registers = %d, want 2", len(a.Registers()))
	}
	if len(a.Transitions()) != 1 {
		t.Fatalf("transitions = %d, want 1", len(a.Transitions()))
	}
	tr := a.Transitions()[0]
	if _, ok := tr.Assignment["x"]; !ok {
		t.Fatalf("assignment missing target x: %+v", tr.Assignment)
	}
}

func TestFromWikiUnmappedConstantFails(t *testing.T) {
	g, err := wiki.ParseGuard("p0 == 999")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	w := &wiki.WikiRA{
		Locations: []wiki.WikiLocation{{Name: "q0", Initial: true}, {Name: "q1"}},
		Transitions: []wiki.WikiTransition{
			{From: "q0", To: "q1", Symbol: "a", Params: []string{"p0"}, Guard: g},
		},
	}
	if _, err := FromWiki(w); err == nil {
		t.Fatal("expected ErrUnmappedConstant for an unresolvable integer literal")
	}
}

func TestFromWikiNegativeConstantFails(t *testing.T) {
	w := &wiki.WikiRA{
		Constants: []wiki.WikiRegister{{Name: "c_neg", Type: wiki.RegisterKindInt, Value: "-3"}},
		Locations: []wiki.WikiLocation{{Name: "q0", Initial: true}, {Name: "q1"}},
		Transitions: []wiki.WikiTransition{
			{From: "q0", To: "q1", Symbol: "a"},
		},
	}
	if _, err := FromWiki(w); err == nil {
		t.Fatal("expected an error for a negative constant value, not a silent clamp to zero")
	}
}

func TestFromWikiNegativeGlobalFails(t *testing.T) {
	w := &wiki.WikiRA{
		Globals:   []wiki.WikiRegister{{Name: "x", Type: wiki.RegisterKindInt, Value: "-1"}},
		Locations: []wiki.WikiLocation{{Name: "q0", Initial: true}, {Name: "q1"}},
		Transitions: []wiki.WikiTransition{
			{From: "q0", To: "q1", Symbol: "a"},
		},
	}
	if _, err := FromWiki(w); err == nil {
		t.Fatal("expected an error for a negative global initial value, not a silent clamp to zero")
	}
}

func TestFromWikiUnboundIdentifierFails(t *testing.T) {
	w := &wiki.WikiRA{
		Locations: []wiki.WikiLocation{{Name: "q0", Initial: true}, {Name: "q1"}},
		Transitions: []wiki.WikiTransition{
			{From: "q0", To: "q1", Symbol: "a", Guard: guard.BinaryRel[wiki.Expression]{
				Op: guard.Eq, Left: wiki.Variable("nosuch"), Right: wiki.Constant(0),
			}},
		},
	}
	if _, err := FromWiki(w); err == nil {
		t.Fatal("expected ErrUnboundIdentifier")
	}
}
