package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"groupstat/domain/core"
)

// ============================================================================
// MODE SELECTOR
// ============================================================================

// Mode selects which central-tendency measure to compute
type Mode string

const (
	ModeMean   Mode = "mean"
	ModeMedian Mode = "median"
	ModeMode   Mode = "mode"
)

// Modes returns every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeMean, ModeMedian, ModeMode}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeMean, ModeMedian, ModeMode:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownMode, s)
}

func (m Mode) String() string { return string(m) }

// ============================================================================
// OPTIONAL VALUES
// ============================================================================

// NullFloat is a float64 that may be absent, in the manner of sql.NullFloat64.
// It encodes to JSON null when absent or not finite.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Some wraps a present value.
func Some(v float64) NullFloat { return NullFloat{Float64: v, Valid: true} }

// None is the absent value.
func None() NullFloat { return NullFloat{} }

// Finite reports whether the value is present and neither NaN nor infinite.
func (n NullFloat) Finite() bool {
	return n.Valid && !math.IsNaN(n.Float64) && !math.IsInf(n.Float64, 0)
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Finite() {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// ============================================================================
// RESULTS
// ============================================================================

// Result is the outcome of one computation. It is one of MeanResult,
// MedianResult or ModeResult.
type Result interface {
	Kind() Mode
	isResult()
}

// MeanResult is the unweighted mean of the midpoints.
type MeanResult struct {
	Value NullFloat `json:"value"`
	// Count is the number of midpoints averaged.
	Count int `json:"count"`
}

// MedianResult is the median of the frequency-expanded midpoints.
type MedianResult struct {
	Value NullFloat `json:"value"`
	// TotalFrequency is the expanded observation count, Σ max(1, round(f)).
	TotalFrequency int64 `json:"total_frequency"`
}

// ModeEntry is one modal midpoint with its aggregated frequency.
type ModeEntry struct {
	Midpoint  float64 `json:"midpoint"`
	Frequency float64 `json:"frequency"`
}

// ModeResult lists every midpoint tied for the highest aggregated
// frequency, in the order the midpoints first appeared in the input.
type ModeResult struct {
	MaxFrequency NullFloat   `json:"max_frequency"`
	Modes        []ModeEntry `json:"modes"`
}

// Multimodal reports whether more than one midpoint is tied for the maximum.
func (r ModeResult) Multimodal() bool { return len(r.Modes) > 1 }

func (MeanResult) Kind() Mode   { return ModeMean }
func (MedianResult) Kind() Mode { return ModeMedian }
func (ModeResult) Kind() Mode   { return ModeMode }

func (MeanResult) isResult()   {}
func (MedianResult) isResult() {}
func (ModeResult) isResult()   {}
