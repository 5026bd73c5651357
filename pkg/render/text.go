package render

import (
	"fmt"
	"strings"

	"github.com/askoeller/menuboard/pkg/layout"
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// TEXT ARTIFACT
// =============================================================================

var (
	textHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	textPriceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	textTitleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	textUnitStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderText renders the board as a fixed-width terminal grid. Columns match
// the computed layout so the preview shows the same flow as the screen.
func RenderText(content layout.Content, result layout.Result, opts ...Option) []byte {
	o := newOptions(opts...)
	cols := FlowColumns(content, result.Columns, o.currency)

	blocks := make([]string, 0, len(cols))
	colStyle := lipgloss.NewStyle().Width(o.columnWidth).MarginRight(2)
	for _, col := range cols {
		blocks = append(blocks, colStyle.Render(textColumn(col, o.columnWidth)))
	}

	var b strings.Builder
	if o.title != "" {
		b.WriteString(textTitleStyle.Render(o.title))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n")
	return []byte(b.String())
}

// textColumn lays out one column as plain lines, name left and price right.
func textColumn(col Column, width int) string {
	lines := make([]string, 0, len(col.Rows))
	for _, row := range col.Rows {
		if row.Header {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, textHeaderStyle.Render(truncate(strings.ToUpper(row.Text), width)))
			continue
		}
		name := row.Text
		if row.Unit != "" {
			name += " " + textUnitStyle.Render(row.Unit)
		}
		price := row.Price
		gap := width - lipgloss.Width(name) - lipgloss.Width(price)
		if gap < 1 {
			name = truncate(row.Text, width-lipgloss.Width(price)-2)
			gap = width - lipgloss.Width(name) - lipgloss.Width(price)
		}
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, fmt.Sprintf("%s%s%s", name, strings.Repeat(" ", gap), textPriceStyle.Render(price)))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
