package stats

import (
	"fmt"

	"groupstat/domain/core"
	"groupstat/domain/grouped"
)

// Compute runs the measure selected by mode over ds.
func Compute(mode Mode, ds grouped.Dataset) (Result, error) {
	switch mode {
	case ModeMean:
		return Mean(ds), nil
	case ModeMedian:
		return Median(ds), nil
	case ModeMode:
		return ModeOf(ds), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownMode, string(mode))
	}
}
