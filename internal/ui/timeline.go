package ui

import (
	"fmt"
	"strings"

	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// TimelineModel represents the unified feed of cooked dishes and restaurant
// visits, most recent first.
type TimelineModel struct {
	events []model.TimelineEvent
	cur    listCursor
}

// NewTimelineModel creates the timeline screen.
func NewTimelineModel(events []model.TimelineEvent) *TimelineModel {
	return &TimelineModel{events: append([]model.TimelineEvent(nil), events...)}
}

// Selected returns the prefixed event ID under the cursor.
func (m *TimelineModel) Selected() (string, bool) {
	if len(m.events) == 0 {
		return "", false
	}
	return m.events[m.cur.cursor].ID, true
}

// View renders the timeline.
func (m *TimelineModel) View(width, height int) string {
	if len(m.events) == 0 {
		return EmptyStateStyle.Width(width).Height(height).Render(
			"    Nothing logged yet.\n    Cook something, or go out to eat.")
	}

	widths := stretchLastColumn([]int{14, 6, 28, 9, 26}, width)
	header := renderTableHeader([]string{"date", "", "what", "rating", "where"}, widths, 0, true)

	visible := height - 3
	var rows []string
	for i := m.cur.offset; i < len(m.events) && i < m.cur.offset+visible; i++ {
		e := m.events[i]
		style := rowStyle(i, m.cur.cursor)

		icon := "🍳"
		where := e.Country
		if e.Kind == model.EventRestaurant {
			icon = "🍽"
			where = e.Location
		}

		ratingCell := util.FormatRatingWithStar(e.Rating)
		if i != m.cur.cursor {
			ratingCell = lipgloss.NewStyle().Foreground(ColorYellow).Render(ratingCell)
		}

		cells := []string{
			util.FormatDate(e.Start),
			icon,
			util.TruncateString(e.Content, widths[2]-2),
			ratingCell,
			util.TruncateString(where, widths[4]-2),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	dishCount := 0
	for _, e := range m.events {
		if e.Kind == model.EventDish {
			dishCount++
		}
	}
	status := StatusBarStyle.Render(fmt.Sprintf(
		"%d events  ·  %d dishes cooked, %d restaurants visited",
		len(m.events), dishCount, len(m.events)-dishCount))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
		"",
		status,
	)
}
