package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows with column widths measured per cell.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a Table with the given title and headers.
func NewTable(title string, headers ...string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render draws the table, or nothing when there are no rows.
func (t *Table) Render(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	// Width includes the cell padding below.
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
