package stats

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupstat/domain/core"
	"groupstat/domain/grouped"
)

func points(pairs ...float64) grouped.Dataset {
	ds := make(grouped.Dataset, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		ds = append(ds, grouped.DataPoint{Midpoint: pairs[i], Frequency: pairs[i+1]})
	}
	return ds
}

func TestMean_IgnoresFrequency(t *testing.T) {
	res := Mean(points(10, 1, 20, 7, 30, 100))

	require.True(t, res.Value.Valid)
	assert.Equal(t, 20.0, res.Value.Float64)
	assert.Equal(t, 3, res.Count)

	changed := Mean(points(10, 3, 20, 1, 30, 1))
	assert.Equal(t, res.Value, changed.Value)
}

func TestMean_Empty(t *testing.T) {
	res := Mean(nil)
	assert.False(t, res.Value.Valid)
	assert.Zero(t, res.Count)
}

func TestMedian_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		ds    grouped.Dataset
		want  float64
		total int64
	}{
		{"even expansion", points(5, 1, 10, 2, 15, 1), 10, 4},
		{"odd count", points(1, 1, 2, 1, 3, 1), 2, 3},
		{"frequency below one still counts", points(7, 0.4), 7, 1},
		{"even averages middle values", points(1, 1, 2, 1, 3, 1, 4, 1), 2.5, 4},
		{"rounding half up", points(1, 2.5, 9, 2), 1, 5},
		{"unsorted input", points(30, 1, 10, 1, 20, 1), 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Median(tt.ds)
			require.True(t, res.Value.Valid)
			assert.Equal(t, tt.want, res.Value.Float64)
			assert.Equal(t, tt.total, res.TotalFrequency)
		})
	}
}

func TestMedian_Empty(t *testing.T) {
	res := Median(grouped.Dataset{})
	assert.False(t, res.Value.Valid)
	assert.Zero(t, res.TotalFrequency)
}

func TestMedian_OrderIndependent(t *testing.T) {
	ds := points(4, 3, 9, 3, 6, 2, 1, 5)
	want := Median(ds)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make(grouped.Dataset, len(ds))
		copy(shuffled, ds)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Median(shuffled))
	}
}

func TestMedian_CumulativeMatchesExpansion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(12)
		ds := make(grouped.Dataset, n)
		for j := range ds {
			ds[j] = grouped.DataPoint{
				Midpoint:  float64(rng.Intn(20)) / 2,
				Frequency: 0.1 + rng.Float64()*6,
			}
		}
		assert.Equal(t, medianByExpansion(ds), medianByCumulative(ds), "dataset %v", ds)
	}
}

func TestMedian_LargeFrequenciesUseCumulativeWeights(t *testing.T) {
	ds := points(1, 100000, 2, 100000, 3, 1)
	res := Median(ds)

	require.True(t, res.Value.Valid)
	assert.Equal(t, 2.0, res.Value.Float64)
	assert.Equal(t, int64(200001), res.TotalFrequency)

	even := Median(points(1, 100000, 2, 100000))
	assert.Equal(t, 1.5, even.Value.Float64)
}

func TestMedian_UnrepresentableTotal(t *testing.T) {
	overflow := grouped.Normalize([]grouped.RawRow{
		{Midpoint: "1", Frequency: "1e308"},
		{Midpoint: "2", Frequency: "1e308"},
	})
	require.Len(t, overflow, 2)

	var res MedianResult
	require.NotPanics(t, func() { res = Median(overflow) })
	assert.False(t, res.Value.Valid)
	assert.Zero(t, res.TotalFrequency)

	res = Median(points(1, 1e19))
	assert.False(t, res.Value.Valid)
	assert.Zero(t, res.TotalFrequency)

	_, err := Compute(ModeMedian, overflow)
	assert.NoError(t, err)
}

func TestMedian_AtExactTotalLimit(t *testing.T) {
	res := Median(points(3, exactTotalLimit/2, 8, exactTotalLimit/2))

	require.True(t, res.Value.Valid)
	assert.Equal(t, 5.5, res.Value.Float64)
	assert.Equal(t, int64(exactTotalLimit), res.TotalFrequency)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, []float64{5, 10, 10, 15}, Expand(points(5, 1, 10, 2, 15, 1)))
	assert.Equal(t, []float64{7}, Expand(points(7, 0.4)))
	assert.Empty(t, Expand(nil))
}

func TestModeOf_Multimodal(t *testing.T) {
	res := ModeOf(points(4, 3, 9, 3, 6, 2))

	require.True(t, res.MaxFrequency.Valid)
	assert.Equal(t, 3.0, res.MaxFrequency.Float64)
	assert.Equal(t, []ModeEntry{{Midpoint: 4, Frequency: 3}, {Midpoint: 9, Frequency: 3}}, res.Modes)
	assert.True(t, res.Multimodal())
}

func TestModeOf_AggregatesEqualMidpoints(t *testing.T) {
	res := ModeOf(points(2, 1, 5, 2, 2, 1.5, 5, 0.5))

	assert.Equal(t, 2.5, res.MaxFrequency.Float64)
	assert.Equal(t, []ModeEntry{{Midpoint: 2, Frequency: 2.5}, {Midpoint: 5, Frequency: 2.5}}, res.Modes)
}

func TestModeOf_EncounterOrder(t *testing.T) {
	res := ModeOf(points(9, 1, 4, 1, 6, 1))

	assert.Equal(t, []ModeEntry{{9, 1}, {4, 1}, {6, 1}}, res.Modes)
}

func TestModeOf_SingleMode(t *testing.T) {
	res := ModeOf(points(1, 1, 2, 5, 3, 1))

	assert.Equal(t, []ModeEntry{{Midpoint: 2, Frequency: 5}}, res.Modes)
	assert.False(t, res.Multimodal())
}

func TestModeOf_ExactEquality(t *testing.T) {
	// 0.1+0.2 != 0.3 in float64, so the groups tie only by exact sums.
	res := ModeOf(points(1, 0.1, 1, 0.2, 2, 0.3))

	assert.Len(t, res.Modes, 1)
	assert.Equal(t, 1.0, res.Modes[0].Midpoint)
}

func TestModeOf_Empty(t *testing.T) {
	res := ModeOf(nil)
	assert.False(t, res.MaxFrequency.Valid)
	assert.Nil(t, res.Modes)
}

func TestCompute_Dispatch(t *testing.T) {
	ds := points(1, 1, 2, 2, 3, 1)

	for _, mode := range Modes() {
		res, err := Compute(mode, ds)
		require.NoError(t, err)
		assert.Equal(t, mode, res.Kind())

		again, err := Compute(mode, ds)
		require.NoError(t, err)
		assert.Equal(t, res, again)
	}

	_, err := Compute(Mode("range"), ds)
	assert.True(t, errors.Is(err, core.ErrUnknownMode))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		hasError bool
	}{
		{"mean", ModeMean, false},
		{" MEDIAN ", ModeMedian, false},
		{"Mode", ModeMode, false},
		{"", "", true},
		{"average", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.hasError {
			assert.ErrorIs(t, err, core.ErrUnknownMode)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestNullFloat_JSON(t *testing.T) {
	out, err := json.Marshal(MedianResult{Value: Some(2.5), TotalFrequency: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":2.5,"total_frequency":4}`, string(out))

	out, err = json.Marshal(MeanResult{Value: None()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":null,"count":0}`, string(out))

	out, err = json.Marshal(MeanResult{Value: Some(math.Inf(1)), Count: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":null,"count":1}`, string(out))
}
