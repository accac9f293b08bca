// Package convert implements the round-trip between the internal
// RegisterAutomaton model and the Automata-Wiki WikiRA model: substituting
// guard/assignment leaves through a name/value resolution table in one
// direction, and totalising + signal-encoding the automaton in the other.
package convert

import "errors"

var (
	// ErrNoUniqueInitialLocation is returned by FromWiki when the source
	// WikiRA does not have exactly one location marked initial.
	ErrNoUniqueInitialLocation = errors.New("convert: wiki automaton has no unique initial location")

	// ErrUnboundIdentifier is returned by FromWiki when a guard or
	// assignment expression references a variable name that is neither one
	// of the owning transition's parameters nor a declared register.
	ErrUnboundIdentifier = errors.New("convert: unbound identifier in guard or assignment")

	// ErrUnmappedConstant is returned by FromWiki when a guard or
	// assignment expression carries an integer literal that does not match
	// any declared constant's value (the internal guard theory has no raw
	// integer leaf; every literal must resolve to a register reference).
	ErrUnmappedConstant = errors.New("convert: integer literal does not match a declared constant")
)
