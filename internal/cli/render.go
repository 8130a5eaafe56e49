package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	colorHeader = lipgloss.Color("45")
	colorMuted  = lipgloss.Color("245")
	colorWarn   = lipgloss.Color("214")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
)

// Table is an aligned text table for terminal output.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a bold section title.
func RenderTitle(title string) string {
	return "  " + titleStyle.Render(title)
}

// Muted renders dim helper text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Warn renders attention text, used for projected figures.
func Warn(s string) string {
	return warnStyle.Render(s)
}

// RenderTable renders a table with a styled header row and aligned columns.
// Cells may contain styled text; widths are measured ANSI-aware.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	b.WriteString("  ")
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < numCols-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	total := 2 * (numCols - 1)
	for _, w := range widths {
		total += w
	}
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString("  ")
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(pad(cell, widths[i]))
			if i < numCols-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if d := width - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
