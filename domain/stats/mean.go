package stats

import (
	mstats "github.com/montanaflynn/stats"

	"groupstat/domain/grouped"
)

// Mean returns the equally weighted mean of the midpoints. Frequencies are
// ignored: every midpoint counts once.
func Mean(ds grouped.Dataset) MeanResult {
	if ds.IsEmpty() {
		return MeanResult{Value: None()}
	}
	mean, err := mstats.Mean(ds.Midpoints())
	if err != nil {
		return MeanResult{Value: None()}
	}
	return MeanResult{Value: Some(mean), Count: ds.Len()}
}
