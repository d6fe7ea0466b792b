package world

import "errors"

var (
	// ErrInvalidShape is returned when the requested area grid cannot fit the map.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrGenerationExhausted is returned when a bounded retry loop gives up.
	ErrGenerationExhausted = errors.New("generation exhausted")
)
