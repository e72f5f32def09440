package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the number of spaces between columns.
const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum visible width found in each column across headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableWidth(headers, rows, 0)
}

// RenderTableWidth is RenderTable with every cell truncated to maxCell
// visible columns. Checklist texts run past 100 characters, so the summary
// caps them to keep a row on one line. maxCell <= 0 disables the cap.
func RenderTableWidth(headers []string, rows [][]string, maxCell int) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	clip := func(s string) string {
		if maxCell > 0 {
			return Truncate(s, maxCell)
		}
		return s
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			cells[r][i] = clip(row[i])
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
				pad := max(widths[i]-lipgloss.Width(cell), 0)
				b.WriteString(strings.Repeat(" ", pad+colGap))
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
