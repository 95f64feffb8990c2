package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"groupstat/app"
)

var (
	labelStyle  = lipgloss.NewStyle().Faint(true)
	mainStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	detailStyle = lipgloss.NewStyle().PaddingLeft(2)
	pillStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	noteStyle   = lipgloss.NewStyle().Italic(true).Faint(true)
)

func renderCalculation(calc *app.Calculation) string {
	s := calc.Summary
	var b strings.Builder

	b.WriteString(labelStyle.Render(s.Label))
	b.WriteString("\n")
	b.WriteString(mainStyle.Render(s.Main))
	b.WriteString("\n")
	for _, d := range s.Details {
		b.WriteString(detailStyle.Render("• " + d))
		b.WriteString("\n")
	}
	if len(s.Pills) > 0 {
		pills := make([]string, len(s.Pills))
		for i, p := range s.Pills {
			pills[i] = pillStyle.Render(p)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pills...))
		b.WriteString("\n")
	}
	if s.Note != "" {
		b.WriteString(noteStyle.Render(s.Note))
		b.WriteString("\n")
	}
	if calc.RowsDropped > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d row(s) without a numeric midpoint were skipped", calc.RowsDropped)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderModes(modes []app.ModeHelp, defaultMode string) string {
	var b strings.Builder
	for _, m := range modes {
		name := string(m.Mode)
		if name == defaultMode {
			name += " (default)"
		}
		b.WriteString(mainStyle.Render(name))
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(strings.ReplaceAll(m.Markdown, "**", "")))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
