package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows aligned on column widths without borders. Widths are
// measured with lipgloss so styled cells align correctly.
type Table struct {
	header     []string
	rows       [][]string
	colWidths  []int
	colPadding int
}

// NewTable creates a new table with the specified number of columns
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// SetHeader sets a bold header row.
func (t *Table) SetHeader(cells ...string) {
	t.header = t.normalize(cells)
	for i, cell := range t.header {
		t.track(i, cell)
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := t.normalize(cells)
	for i, cell := range row {
		t.track(i, cell)
	}
	t.rows = append(t.rows, row)
}

func (t *Table) normalize(cells []string) []string {
	row := make([]string, len(t.colWidths))
	copy(row, cells)
	return row
}

func (t *Table) track(col int, cell string) {
	if w := lipgloss.Width(cell); w > t.colWidths[col] {
		t.colWidths[col] = w
	}
}

// String renders the table as a string
func (t *Table) String() string {
	if len(t.rows) == 0 && t.header == nil {
		return ""
	}

	var sb strings.Builder
	if t.header != nil {
		t.writeRow(&sb, t.header, true)
	}
	for _, row := range t.rows {
		t.writeRow(&sb, row, false)
	}
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, row []string, header bool) {
	padding := strings.Repeat(" ", t.colPadding)
	for i, cell := range row {
		if i > 0 {
			sb.WriteString(padding)
		}
		if header {
			sb.WriteString(Bold.Render(cell))
		} else {
			sb.WriteString(cell)
		}
		// Last column is not padded.
		if i < len(row)-1 {
			sb.WriteString(strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell)))
		}
	}
	sb.WriteString("\n")
}
