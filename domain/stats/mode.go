package stats

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"groupstat/domain/grouped"
)

// ModeOf sums the frequencies of equal midpoints and returns every midpoint
// whose sum equals the maximum. Grouping and the tie check use exact float
// equality. Modes are listed in first-encounter order.
func ModeOf(ds grouped.Dataset) ModeResult {
	if ds.IsEmpty() {
		return ModeResult{MaxFrequency: None()}
	}

	groups := orderedmap.New[float64, float64]()
	for _, p := range ds {
		sum, _ := groups.Get(p.Midpoint)
		groups.Set(p.Midpoint, sum+p.Frequency)
	}

	maxFreq := math.Inf(-1)
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value > maxFreq {
			maxFreq = pair.Value
		}
	}

	var modes []ModeEntry
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == maxFreq {
			modes = append(modes, ModeEntry{Midpoint: pair.Key, Frequency: pair.Value})
		}
	}

	return ModeResult{MaxFrequency: Some(maxFreq), Modes: modes}
}
