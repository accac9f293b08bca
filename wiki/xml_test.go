package wiki

import (
	"strings"
	"testing"

	"github.com/ra-bench/ra-gen/guard"
)

func sampleWikiRA(t *testing.T) *WikiRA {
	t.Helper()
	g, err := ParseGuard("a == b && a != 1000 || a >= x_0")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	return &WikiRA{
		Alphabet: Alphabet{
			Inputs:  []WikiSymbol{{Name: "a", Params: []string{"p0", "p1"}}},
			Outputs: []WikiSymbol{{Name: "OAccept"}, {Name: "OReject"}},
		},
		Constants: []WikiRegister{{Name: "c_1000", Type: RegisterKindInt, Value: "1000"}},
		Globals:   []WikiRegister{{Name: "x_0", Type: RegisterKindInt, Value: "0"}},
		Locations: []WikiLocation{
			{Name: "q0", Initial: true},
			{Name: "q1"},
		},
		Transitions: []WikiTransition{
			{
				From:        "q0",
				To:          "q1",
				Symbol:      "a",
				Params:      []string{"p0", "p1"},
				Guard:       g,
				Assignments: []Assignment{{To: "b", From: Variable("p0")}},
			},
			{
				From:   "q1",
				To:     "q1",
				Symbol: "OAccept",
				Guard:  guard.True[Expression]{},
			},
		},
	}
}

func TestMarshalXMLRoundTrip(t *testing.T) {
	orig := sampleWikiRA(t)
	data, err := MarshalXML(orig)
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	got, err := ParseXML(data)
	if err != nil {
		t.Fatalf("ParseXML: %v\n%s", err, data)
	}

	if len(got.Locations) != len(orig.Locations) {
		t.Fatalf("locations = %d, want %d", len(got.Locations), len(orig.Locations))
	}
	init, ok := got.InitialLocation()
	if !ok || init.Name != "q0" {
		t.Fatalf("InitialLocation = %+v, %v, want q0", init, ok)
	}
	if len(got.Transitions) != len(orig.Transitions) {
		t.Fatalf("transitions = %d, want %d", len(got.Transitions), len(orig.Transitions))
	}
	if got.Transitions[0].Guard == nil {
		t.Fatal("first transition guard parsed as nil")
	}
	if _, ok := got.Transitions[1].Guard.(guard.True[Expression]); !ok {
		t.Fatalf("second transition guard = %#v, want True (absent in XML)", got.Transitions[1].Guard)
	}
	if len(got.Transitions[0].Assignments) != 1 || got.Transitions[0].Assignments[0].To != "b" {
		t.Fatalf("assignments = %+v, want one assignment to b", got.Transitions[0].Assignments)
	}
}

func TestMarshalXMLUsesRALibSafeDialect(t *testing.T) {
	orig := sampleWikiRA(t)
	data, err := MarshalXML(orig)
	if err != nil {
		t.Fatalf("MarshalXML: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<guard>") {
		t.Fatal("expected a <guard> element in the emitted document")
	}
}
