package format

import (
	"math"
	"strconv"
	"strings"

	"groupstat/domain/stats"
)

// Undefined is shown in place of an absent or non-finite value.
const Undefined = "—"

// Precision is the fixed number of decimals before trailing zeros are cut.
const Precision = 4

// Number renders x with four decimals, then strips trailing zeros and a
// dangling decimal point: 5.0000 -> "5", 5.2500 -> "5.25".
func Number(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Undefined
	}
	s := strconv.FormatFloat(x, 'f', Precision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Optional renders v, or Undefined when v is absent.
func Optional(v stats.NullFloat) string {
	if !v.Valid {
		return Undefined
	}
	return Number(v.Float64)
}
