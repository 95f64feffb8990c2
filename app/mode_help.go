package app

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"

	"groupstat/domain/stats"
	"groupstat/internal/errors"
)

// ModeHelp explains what a mode does with the two input columns
type ModeHelp struct {
	Mode          stats.Mode `json:"mode"`
	Title         string     `json:"title"`
	UsesFrequency bool       `json:"uses_frequency"`
	Markdown      string     `json:"markdown"`
	HTML          string     `json:"html"`
}

var modeHelpText = map[stats.Mode]struct {
	title         string
	usesFrequency bool
	markdown      string
}{
	stats.ModeMean: {
		title:         "Mean",
		usesFrequency: false,
		markdown:      "For **Mean**, only midpoint values are used (frequency is ignored). Each midpoint is equally weighted.",
	},
	stats.ModeMedian: {
		title:         "Median",
		usesFrequency: true,
		markdown:      "For **Median**, enter midpoint and frequency. The calculator expands data conceptually and finds the median.",
	},
	stats.ModeMode: {
		title:         "Mode",
		usesFrequency: true,
		markdown:      "For **Mode**, enter midpoint and frequency. The midpoint with highest frequency is the mode (ties supported).",
	},
}

// Help returns the helper text for a mode, with an HTML rendering of its
// Markdown.
func (s *CalculatorService) Help(mode string) (*ModeHelp, error) {
	m, err := stats.ParseMode(mode)
	if err != nil {
		notFound := errors.NotFound(fmt.Sprintf("mode %q", mode))
		notFound.Cause = err
		return nil, notFound
	}
	text := modeHelpText[m]
	html := markdown.ToHTML([]byte(text.markdown), nil, nil)
	return &ModeHelp{
		Mode:          m,
		Title:         text.title,
		UsesFrequency: text.usesFrequency,
		Markdown:      text.markdown,
		HTML:          strings.TrimSpace(string(html)),
	}, nil
}

// Modes returns the help for every supported mode in display order.
func (s *CalculatorService) Modes() []ModeHelp {
	out := make([]ModeHelp, 0, len(stats.Modes()))
	for _, m := range stats.Modes() {
		h, err := s.Help(string(m))
		if err != nil {
			continue
		}
		out = append(out, *h)
	}
	return out
}
