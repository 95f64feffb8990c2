package grouped

// RawRow is one row of free-text input as typed by the user, before any
// parsing. Rows come from the API, the CLI, or a spreadsheet.
type RawRow struct {
	Midpoint  string `json:"midpoint"`
	Frequency string `json:"frequency"`
}

// DataPoint is a validated (midpoint, frequency) pair.
//
// Midpoint is always finite and Frequency is always positive: values the
// user left blank, mistyped, or entered as zero or negative are stored as 1.
type DataPoint struct {
	Midpoint  float64 `json:"midpoint"`
	Frequency float64 `json:"frequency"`
}

// Dataset is an ordered sequence of data points in input order.
type Dataset []DataPoint

// Len returns the number of data points.
func (d Dataset) Len() int { return len(d) }

// IsEmpty reports whether the dataset holds no points.
func (d Dataset) IsEmpty() bool { return len(d) == 0 }

// Midpoints returns the midpoints in input order.
func (d Dataset) Midpoints() []float64 {
	out := make([]float64, len(d))
	for i, p := range d {
		out[i] = p.Midpoint
	}
	return out
}
