package ra

import (
	"fmt"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/symbol"
)

// Builder grows a RegisterAutomaton append-only. Re-adding a location or
// register with identical properties returns the existing entity; re-adding
// with conflicting acceptance or initial valuation is an error.
//
// Example:
//
//	b := ra.NewBuilder("q0")
//	b.AddLocation("q1", true)
//	b.AddRegister("x", nil)
//	b.AddTransition("q0", a, guard.TrueGuard(), nil, "q1")
//	automaton := b.Done()
type Builder struct {
	ra *RegisterAutomaton
}

// NewBuilder creates a Builder over a fresh automaton with the given
// initial location name.
func NewBuilder(initialLocationName string) *Builder {
	return &Builder{ra: New(initialLocationName)}
}

// Done returns the automaton under construction.
func (b *Builder) Done() *RegisterAutomaton { return b.ra }

// AddLocation adds (or looks up) a location. Returns the existing location
// if name is already known and its acceptance matches; fails with
// ErrInconsistentDeclaration on mismatch. The initial location is always
// the one named at NewBuilder time: calling AddLocation with that same name
// only ever validates its acceptance, never changes it or its initial flag.
func (b *Builder) AddLocation(name string, accepting bool) (*Location, error) {
	if existing, ok := b.ra.locations[name]; ok {
		if existing.IsAccepting != accepting {
			return nil, fmt.Errorf("%w: location %q: accepting=%v, got %v",
				ErrInconsistentDeclaration, name, existing.IsAccepting, accepting)
		}
		return existing, nil
	}
	loc := &Location{Name: name, IsAccepting: accepting}
	b.ra.locations[name] = loc
	b.ra.locationOrder = append(b.ra.locationOrder, name)
	return loc, nil
}

// AddRegister adds (or looks up) a register, optionally with an initial
// value. Passing a different initial value (or introducing one where none
// existed, or vice versa) for an already-declared register is an error.
func (b *Builder) AddRegister(name string, initial *guard.Num) (*Register, error) {
	if existing, ok := b.ra.registers[name]; ok {
		hasInitial := initial != nil
		if existing.HasInitial != hasInitial {
			return nil, fmt.Errorf("%w: register %q: initial presence mismatch",
				ErrInconsistentDeclaration, name)
		}
		if hasInitial && existing.Initial.Cmp(*initial) != 0 {
			return nil, fmt.Errorf("%w: register %q: initial value mismatch",
				ErrInconsistentDeclaration, name)
		}
		return existing, nil
	}
	reg := &Register{Name: name}
	if initial != nil {
		reg.HasInitial = true
		reg.Initial = *initial
	}
	b.ra.registers[name] = reg
	b.ra.registerOrder = append(b.ra.registerOrder, name)
	return reg, nil
}

// AddTransition appends a transition; no deduplication is performed even if
// a structurally identical transition already exists. Fails if from/to are
// unknown locations, or if an assignment targets an unknown register.
func (b *Builder) AddTransition(from string, sym symbol.LabeledSymbol, g guard.Guard, assignment map[string]symbol.Symbol, to string) (*Transition, error) {
	if _, ok := b.ra.locations[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, from)
	}
	if _, ok := b.ra.locations[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, to)
	}
	for reg := range assignment {
		if _, ok := b.ra.registers[reg]; !ok {
			return nil, fmt.Errorf("%w: assignment target %q", ErrUnknownRegister, reg)
		}
	}

	t := &Transition{From: from, Symbol: sym, Guard: g, Assignment: assignment, To: to}
	idx := len(b.ra.transitions)
	b.ra.transitions = append(b.ra.transitions, t)
	b.ra.outgoing[from] = append(b.ra.outgoing[from], idx)
	b.ra.incoming[to] = append(b.ra.incoming[to], idx)
	return t, nil
}

// MarkAccepting flips a location's acceptance after creation; used by
// composition operators that need to relabel spliced-in locations without
// going through the idempotent AddLocation path (which would reject the
// flip as inconsistent).
func (b *Builder) MarkAccepting(name string, accepting bool) {
	if l, ok := b.ra.locations[name]; ok {
		l.IsAccepting = accepting
	}
}
