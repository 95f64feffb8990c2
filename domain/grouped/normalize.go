package grouped

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFrequency replaces any frequency that is missing, unparsable,
// non-finite, or not positive.
const DefaultFrequency = 1.0

// Normalize converts raw rows into a Dataset.
//
// Rows whose midpoint does not parse to a finite number are dropped. A
// frequency that does not parse, is not finite, or is <= 0 becomes
// DefaultFrequency. Normalize never fails; an empty result is for the
// caller to report.
func Normalize(rows []RawRow) Dataset {
	ds := make(Dataset, 0, len(rows))
	for _, row := range rows {
		mid, ok := parseFinite(row.Midpoint)
		if !ok {
			continue
		}
		freq, ok := parseFinite(row.Frequency)
		if !ok || freq <= 0 {
			freq = DefaultFrequency
		}
		ds = append(ds, DataPoint{Midpoint: mid, Frequency: freq})
	}
	return ds
}

// Dropped returns how many rows Normalize would discard.
func Dropped(rows []RawRow) int {
	n := 0
	for _, row := range rows {
		if _, ok := parseFinite(row.Midpoint); !ok {
			n++
		}
	}
	return n
}

// Defaulted returns how many kept rows had their frequency replaced by
// DefaultFrequency.
func Defaulted(rows []RawRow) int {
	n := 0
	for _, row := range rows {
		if _, ok := parseFinite(row.Midpoint); !ok {
			continue
		}
		if f, ok := parseFinite(row.Frequency); !ok || f <= 0 {
			n++
		}
	}
	return n
}

func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
