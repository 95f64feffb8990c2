package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"groupstat/domain/grouped"
)

// expansionLimit is the largest expanded count materialized in memory.
// Larger totals are answered from cumulative weights.
const expansionLimit = 1 << 16

// exactTotalLimit is the largest expanded count whose cumulative weights
// stay exact in float64. Beyond it the median is undefined.
const exactTotalLimit = 1 << 53

// Weight returns how many copies of a point the median expansion uses:
// round(frequency), but never fewer than one.
func Weight(p grouped.DataPoint) float64 {
	return math.Max(1, math.Round(p.Frequency))
}

// TotalFrequency returns the expanded observation count of ds.
func TotalFrequency(ds grouped.Dataset) float64 {
	total := 0.0
	for _, p := range ds {
		total += Weight(p)
	}
	return total
}

// Median returns the median of ds after repeating each midpoint Weight
// times. With an even expanded count the two middle values are averaged.
// A total beyond exactTotalLimit has no defined median.
func Median(ds grouped.Dataset) MedianResult {
	if ds.IsEmpty() {
		return MedianResult{Value: None()}
	}
	total := TotalFrequency(ds)
	if math.IsInf(total, 0) || math.IsNaN(total) || total > exactTotalLimit {
		return MedianResult{Value: None()}
	}

	var median NullFloat
	if total <= expansionLimit {
		median = medianByExpansion(ds)
	} else {
		median = medianByCumulative(ds)
	}
	return MedianResult{Value: median, TotalFrequency: int64(total)}
}

func medianByExpansion(ds grouped.Dataset) NullFloat {
	values := Expand(ds)
	median, err := mstats.Median(values)
	if err != nil {
		return None()
	}
	return Some(median)
}

// medianByCumulative finds the middle order statistics by binary search
// over cumulative weights of the points sorted by midpoint.
func medianByCumulative(ds grouped.Dataset) NullFloat {
	points := make(grouped.Dataset, len(ds))
	copy(points, ds)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Midpoint < points[j].Midpoint })

	weights := make([]float64, len(points))
	for i, p := range points {
		weights[i] = Weight(p)
	}
	cum := floats.CumSum(make([]float64, len(weights)), weights)
	n := cum[len(cum)-1]

	// at returns the k-th (0-based) value of the expanded sorted sequence.
	at := func(k float64) float64 {
		i := sort.Search(len(cum), func(i int) bool { return cum[i] > k })
		return points[min(i, len(points)-1)].Midpoint
	}

	if math.Mod(n, 2) == 1 {
		return Some(at((n - 1) / 2))
	}
	return Some((at(n/2-1) + at(n/2)) / 2)
}

// Expand repeats every midpoint Weight times, in input order.
func Expand(ds grouped.Dataset) []float64 {
	size := TotalFrequency(ds)
	if !(size <= expansionLimit) {
		size = float64(len(ds))
	}
	values := make([]float64, 0, int(size))
	for _, p := range ds {
		for i := 0; i < int(Weight(p)); i++ {
			values = append(values, p.Midpoint)
		}
	}
	return values
}
