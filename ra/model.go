// Package ra implements the register-automaton data model: locations,
// transitions, registers, and a builder that preserves the automaton's
// invariants (single initial location, uniquely named registers/locations,
// correct in/out edge indices) while it is grown.
//
// Transitions reference their endpoint locations by name rather than by
// pointer, and incoming/outgoing edge sets are index sets into a single
// dense transitions slice owned by the automaton — the arena layout the
// design calls for, which sidesteps ownership cycles and makes structural
// copies (as used throughout the composition operators) cheap.
package ra

import (
	"fmt"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/symbol"
)

// Location is a state of the automaton. Outgoing/incoming transitions are
// derived views (see Outgoing, Incoming, SelfLoops on RegisterAutomaton),
// not stored on the Location itself.
type Location struct {
	Name        string
	IsInitial   bool
	IsAccepting bool
}

// Register is a named typed slot of the automaton's valuation. HasInitial
// distinguishes "uninitialised" from "initialised to zero".
type Register struct {
	Name       string
	HasInitial bool
	Initial    guard.Num
}

// Transition is a guarded, assigning edge between two locations, keyed by
// symbol. Assignment maps a target register's name to the symbol (a
// parameter of Symbol, or another register of the owning automaton) whose
// value it receives when the transition fires.
type Transition struct {
	From       string
	Symbol     symbol.LabeledSymbol
	Guard      guard.Guard
	Assignment map[string]symbol.Symbol
	To         string
}

// RegisterAutomaton is grown append-only via Builder; it never shrinks.
type RegisterAutomaton struct {
	initialName string

	locations     map[string]*Location
	locationOrder []string

	registers     map[string]*Register
	registerOrder []string

	transitions []*Transition

	// outgoing/incoming map a location name to indices into transitions,
	// in insertion order — the ordered traversal the concurrency model
	// requires so identical seeds yield identical outputs.
	outgoing map[string][]int
	incoming map[string][]int
}

// New creates an empty automaton with a single named initial location.
func New(initialLocationName string) *RegisterAutomaton {
	ra := &RegisterAutomaton{
		initialName:   initialLocationName,
		locations:     make(map[string]*Location),
		registers:     make(map[string]*Register),
		outgoing:      make(map[string][]int),
		incoming:      make(map[string][]int),
	}
	loc := &Location{Name: initialLocationName, IsInitial: true}
	ra.locations[initialLocationName] = loc
	ra.locationOrder = append(ra.locationOrder, initialLocationName)
	return ra
}

// InitialLocation returns the constructed initial location. (spec.md §9
// flags the documented one-liner "locations.single{it.isAccepting}" as
// stale; this follows the implementation semantics it directs callers to.)
func (r *RegisterAutomaton) InitialLocation() *Location {
	return r.locations[r.initialName]
}

// Locations returns all locations in insertion order.
func (r *RegisterAutomaton) Locations() []*Location {
	out := make([]*Location, 0, len(r.locationOrder))
	for _, name := range r.locationOrder {
		out = append(out, r.locations[name])
	}
	return out
}

// Location looks up a location by name.
func (r *RegisterAutomaton) Location(name string) (*Location, bool) {
	l, ok := r.locations[name]
	return l, ok
}

// Registers returns all registers in insertion order.
func (r *RegisterAutomaton) Registers() []*Register {
	out := make([]*Register, 0, len(r.registerOrder))
	for _, name := range r.registerOrder {
		out = append(out, r.registers[name])
	}
	return out
}

// Register looks up a register by name.
func (r *RegisterAutomaton) Register(name string) (*Register, bool) {
	reg, ok := r.registers[name]
	return reg, ok
}

// Transitions returns all transitions in insertion order.
func (r *RegisterAutomaton) Transitions() []*Transition {
	return r.transitions
}

// AcceptingLocations returns all accepting locations in insertion order.
func (r *RegisterAutomaton) AcceptingLocations() []*Location {
	var out []*Location
	for _, name := range r.locationOrder {
		if l := r.locations[name]; l.IsAccepting {
			out = append(out, l)
		}
	}
	return out
}

// Outgoing returns the transitions leading out of location name, in
// insertion order, including self-loops.
func (r *RegisterAutomaton) Outgoing(name string) []*Transition {
	idxs := r.outgoing[name]
	out := make([]*Transition, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.transitions[i])
	}
	return out
}

// Incoming returns the transitions leading into location name, in
// insertion order, including self-loops.
func (r *RegisterAutomaton) Incoming(name string) []*Transition {
	idxs := r.incoming[name]
	out := make([]*Transition, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.transitions[i])
	}
	return out
}

// SelfLoops returns the transitions from name to itself, in insertion order.
func (r *RegisterAutomaton) SelfLoops(name string) []*Transition {
	var out []*Transition
	for _, t := range r.Outgoing(name) {
		if t.From == t.To {
			out = append(out, t)
		}
	}
	return out
}

// NonLoopIncoming returns the incoming transitions at name excluding
// self-loops, in insertion order.
func (r *RegisterAutomaton) NonLoopIncoming(name string) []*Transition {
	var out []*Transition
	for _, t := range r.Incoming(name) {
		if t.From != t.To {
			out = append(out, t)
		}
	}
	return out
}

// NonLoopOutgoing returns the outgoing transitions at name excluding
// self-loops, in insertion order.
func (r *RegisterAutomaton) NonLoopOutgoing(name string) []*Transition {
	var out []*Transition
	for _, t := range r.Outgoing(name) {
		if t.From != t.To {
			out = append(out, t)
		}
	}
	return out
}

func (r *RegisterAutomaton) String() string {
	return fmt.Sprintf("RegisterAutomaton{locations=%d, registers=%d, transitions=%d}",
		len(r.locationOrder), len(r.registerOrder), len(r.transitions))
}
