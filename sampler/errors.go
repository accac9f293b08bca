package sampler

import "errors"

var (
	// ErrEmptyAlphabet is returned when GenerateRA is called with no
	// alphabet letters.
	ErrEmptyAlphabet = errors.New("sampler: alphabet must be non-empty")

	// ErrInvalidLocationCount is returned when GenerateRA is asked for
	// fewer than one location.
	ErrInvalidLocationCount = errors.New("sampler: location count must be >= 1")
)
