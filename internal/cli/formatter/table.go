package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxCellWidth caps a column so that one long value (a full question or
// an observation) does not push the table off screen.
const maxCellWidth = 48

const colGap = 2

// RenderTable renders an aligned table with a header separator line. Plain
// cells longer than maxCellWidth are cut with "…"; styled cells are left as
// they are.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			cell := row[i]
			if lipgloss.Width(cell) == len([]rune(cell)) {
				cell = Truncate(cell, maxCellWidth)
			}
			cells[r][i] = cell
		}
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string, style func(string) string) {
		for i, cell := range row {
			b.WriteString(style(cell))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range cells {
		writeRow(row, func(s string) string { return s })
	}

	return b.String()
}
