package grouped

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rows(pairs ...string) []RawRow {
	out := make([]RawRow, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, RawRow{Midpoint: pairs[i], Frequency: pairs[i+1]})
	}
	return out
}

func TestNormalize_ParsesRowsInOrder(t *testing.T) {
	ds := Normalize(rows("10.5", "4", "20", "2", "-3", "1.5"))

	assert.Equal(t, Dataset{
		{Midpoint: 10.5, Frequency: 4},
		{Midpoint: 20, Frequency: 2},
		{Midpoint: -3, Frequency: 1.5},
	}, ds)
}

func TestNormalize_DropsUnparsableMidpoints(t *testing.T) {
	ds := Normalize(rows("", "3", "abc", "2", "NaN", "1", "Inf", "1", "-Infinity", "1", "7", "5"))

	assert.Equal(t, Dataset{{Midpoint: 7, Frequency: 5}}, ds)
}

func TestNormalize_DefaultsFrequency(t *testing.T) {
	tests := []struct {
		name string
		freq string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"negative", "-5"},
		{"non-numeric", "lots"},
		{"nan", "NaN"},
		{"infinite", "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Normalize([]RawRow{{Midpoint: "3", Frequency: tt.freq}})
			if assert.Len(t, ds, 1) {
				assert.Equal(t, 1.0, ds[0].Frequency)
			}
		})
	}
}

func TestNormalize_KeepsFractionalFrequency(t *testing.T) {
	ds := Normalize(rows("7", "0.4"))
	assert.Equal(t, Dataset{{Midpoint: 7, Frequency: 0.4}}, ds)
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	ds := Normalize(rows("  12 ", "\t3\n"))
	assert.Equal(t, Dataset{{Midpoint: 12, Frequency: 3}}, ds)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.True(t, Normalize(nil).IsEmpty())
	assert.True(t, Normalize(rows("x", "1", "", "")).IsEmpty())
}

func TestDroppedAndDefaulted(t *testing.T) {
	in := rows("1", "2", "bad", "3", "4", "0", "", "", "5", "oops")

	assert.Equal(t, 2, Dropped(in))
	assert.Equal(t, 2, Defaulted(in))
	assert.Equal(t, 3, Normalize(in).Len())
}

func TestDataset_Midpoints(t *testing.T) {
	ds := Dataset{{Midpoint: 3, Frequency: 9}, {Midpoint: 1, Frequency: 1}}
	assert.Equal(t, []float64{3, 1}, ds.Midpoints())
}
