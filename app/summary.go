package app

import (
	"fmt"
	"strings"

	"groupstat/domain/stats"
	"groupstat/internal/format"
)

// Summary is the display-ready form of a result. Every number in it has
// gone through format.Number.
type Summary struct {
	Label   string   `json:"label"`
	Main    string   `json:"main"`
	Details []string `json:"details"`
	Note    string   `json:"note,omitempty"`
	Pills   []string `json:"pills,omitempty"`
}

// Summarize renders a result for display.
func Summarize(r stats.Result) Summary {
	switch v := r.(type) {
	case stats.MeanResult:
		return Summary{
			Label: "Mean (Midpoints only)",
			Main:  format.Optional(v.Value),
			Details: []string{
				fmt.Sprintf("Number of midpoints used: %d", v.Count),
				"All midpoints are assumed to have equal weight (frequency = 1).",
			},
			Note: "For grouped data mean with class & frequency, weight each midpoint by its frequency instead.",
		}

	case stats.MedianResult:
		return Summary{
			Label: "Median (From midpoint & frequency)",
			Main:  format.Optional(v.Value),
			Details: []string{
				fmt.Sprintf("Total frequency (Σf): %d", v.TotalFrequency),
				"Conceptually, data is expanded by repeating each midpoint according to its frequency, then median is found.",
			},
			Note: "This is equivalent to median of discrete distribution on midpoints.",
		}

	case stats.ModeResult:
		values := make([]string, len(v.Modes))
		pills := make([]string, len(v.Modes))
		for i, m := range v.Modes {
			values[i] = format.Number(m.Midpoint)
			pills[i] = fmt.Sprintf("Midpoint %s (f = %s)", format.Number(m.Midpoint), format.Number(m.Frequency))
		}
		shape := "Single modal midpoint found."
		if v.Multimodal() {
			shape = "There are multiple modes (multimodal distribution)."
		}
		main := strings.Join(values, ", ")
		if main == "" {
			main = format.Undefined
		}
		return Summary{
			Label: "Mode (From midpoint & frequency)",
			Main:  main,
			Details: []string{
				fmt.Sprintf("Highest frequency: %s", format.Optional(v.MaxFrequency)),
				shape,
			},
			Pills: pills,
		}
	}

	return Summary{Main: format.Undefined}
}
