package core

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	// ErrEmptyDataset is returned when normalization leaves no usable midpoint.
	ErrEmptyDataset = errors.New("dataset has no midpoints")
	// ErrUnknownMode is returned for a mode selector outside mean/median/mode.
	ErrUnknownMode = errors.New("unknown calculation mode")
	// ErrTooManyRows is returned when a request exceeds the configured row limit.
	ErrTooManyRows = errors.New("too many rows")
	// ErrFrequencyTooLarge is returned when the expanded frequency total exceeds the configured limit.
	ErrFrequencyTooLarge = errors.New("total frequency too large")
)

// IsInputError reports whether err stems from rejected user input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrUnknownMode) ||
		errors.Is(err, ErrTooManyRows) ||
		errors.Is(err, ErrFrequencyTooLarge)
}
