// Package compose implements the three structural composition operators
// over register automata — concat, partialReplacement, splitSingle — plus
// the bucketing utility they share.
package compose

import "errors"

var (
	// ErrRegisterConflict is returned when a spliced-in automaton would
	// re-initialise a register already present (by name) in the host.
	ErrRegisterConflict = errors.New("compose: register conflict")

	// ErrInitializedReplacement is returned when a partialReplacement
	// replacement carries an initialised register.
	ErrInitializedReplacement = errors.New("compose: replacement has an initialised register")

	// ErrInitializedDiscriminator is returned when a splitSingle
	// discriminator carries an initialised register.
	ErrInitializedDiscriminator = errors.New("compose: discriminator has an initialised register")

	// ErrNoRendezvousLocation is returned when an automaton has no
	// accepting location reachable from its initial location.
	ErrNoRendezvousLocation = errors.New("compose: no accepting location reachable from the initial location")

	// ErrNoSplittableLocation is returned when splitSingle finds no
	// candidate location.
	ErrNoSplittableLocation = errors.New("compose: no splittable location")

	// ErrInvalidShare is returned when partialReplacement's share is
	// outside [0, 1].
	ErrInvalidShare = errors.New("compose: share must be in [0, 1]")

	// ErrNoReplacements is returned when partialReplacement is called
	// with an empty replacements list but a non-zero share.
	ErrNoReplacements = errors.New("compose: no replacements supplied")
)
