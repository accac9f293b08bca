package ra

import "errors"

var (
	// ErrInconsistentDeclaration is returned when re-adding a location or
	// register whose properties conflict with the already-declared one.
	ErrInconsistentDeclaration = errors.New("ra: inconsistent declaration")

	// ErrUnknownLocation is returned when a transition references a
	// location name the automaton does not know about.
	ErrUnknownLocation = errors.New("ra: unknown location")

	// ErrUnknownRegister is returned when an assignment targets a register
	// the automaton does not know about.
	ErrUnknownRegister = errors.New("ra: unknown register")

	// ErrMultipleInitial is returned if construction would leave the
	// automaton with more than one initial location.
	ErrMultipleInitial = errors.New("ra: automaton must have exactly one initial location")
)
