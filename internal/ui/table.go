package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// listCursor tracks selection and scroll offset for the list screens.
type listCursor struct {
	cursor int
	offset int
}

func (c *listCursor) clamp(length, visible int) {
	if length == 0 {
		c.cursor = 0
		c.offset = 0
		return
	}
	if c.cursor >= length {
		c.cursor = length - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.offset > c.cursor {
		c.offset = c.cursor
	}
	if visible > 0 && c.cursor >= c.offset+visible {
		c.offset = c.cursor - visible + 1
	}
}

func (c *listCursor) MoveDown(length, visible int) {
	c.cursor++
	c.clamp(length, visible)
}

func (c *listCursor) MoveUp(length, visible int) {
	c.cursor--
	c.clamp(length, visible)
}

func (c *listCursor) JumpToTop() {
	c.cursor = 0
	c.offset = 0
}

func (c *listCursor) JumpToBottom(length, visible int) {
	c.cursor = length - 1
	c.clamp(length, visible)
}

func (c *listCursor) HalfPageDown(length, visible int) {
	c.cursor += visible / 2
	c.clamp(length, visible)
}

func (c *listCursor) HalfPageUp(length, visible int) {
	c.cursor -= visible / 2
	c.clamp(length, visible)
}

// renderTableRow renders one row of fixed-width cells.
func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

// renderTableHeader renders the header row, marking the sort column.
func renderTableHeader(labels []string, widths []int, sortIdx int, sortDesc bool) string {
	cells := make([]string, 0, len(labels))
	for i, label := range labels {
		label = strings.ToUpper(label)
		if i == sortIdx {
			if sortDesc {
				label += " ↓"
			} else {
				label += " ↑"
			}
		}
		cells = append(cells, label)
	}
	return renderTableRow(cells, widths, TableHeaderStyle.Bold(true))
}

// stretchLastColumn grows the final column to fill the screen width.
func stretchLastColumn(widths []int, width int) []int {
	total := 0
	for _, w := range widths {
		total += w
	}
	extra := width - total - 4
	if extra > 0 && len(widths) > 0 {
		widths[len(widths)-1] += extra
	}
	return widths
}

// renderField renders a "Label: value" detail line.
func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}

// rowStyle picks the style for a list row: selected, or zebra striping.
func rowStyle(index, cursor int) lipgloss.Style {
	style := NormalRowStyle
	if index%2 == 1 {
		style = style.Background(lipgloss.Color("#2B2623"))
	}
	if index == cursor {
		style = SelectedRowStyle
	}
	return style
}
