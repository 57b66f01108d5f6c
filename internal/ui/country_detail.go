package ui

import (
	"fmt"
	"strings"

	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// CountryDetailModel represents one country's dish list.
type CountryDetailModel struct {
	code   string
	name   string
	flag   string
	dishes []model.Dish
	cur    listCursor
}

// NewCountryDetailModel creates a new country detail model.
func NewCountryDetailModel(msg model.CountryDetailLoadedMsg) *CountryDetailModel {
	return &CountryDetailModel{
		code:   msg.Code,
		name:   msg.Name,
		flag:   msg.Flag,
		dishes: msg.Dishes,
	}
}

// Name returns the country display name for the breadcrumb.
func (m *CountryDetailModel) Name() string {
	return m.name
}

// Selected returns the dish ID under the cursor.
func (m *CountryDetailModel) Selected() (string, bool) {
	if len(m.dishes) == 0 {
		return "", false
	}
	return m.dishes[m.cur.cursor].ID, true
}

// View renders the country's dishes.
func (m *CountryDetailModel) View(width, height int) string {
	noun := "dishes"
	if len(m.dishes) == 1 {
		noun = "dish"
	}
	title := LabelStyle.Render(fmt.Sprintf("%s %s", m.flag, m.name)) +
		HelpDescStyle.Render(fmt.Sprintf("  ·  %d %s cooked", len(m.dishes), noun))

	widths := stretchLastColumn([]int{26, 12, 9, 10, 24}, width)
	header := renderTableHeader([]string{"name", "cooked", "rating", "level", "tags"}, widths, -1, false)

	visible := height - 5
	var rows []string
	for i := m.cur.offset; i < len(m.dishes) && i < m.cur.offset+visible; i++ {
		d := m.dishes[i]
		style := rowStyle(i, m.cur.cursor)

		ratingCell := util.FormatRatingWithStar(d.Rating)
		if i != m.cur.cursor {
			ratingCell = lipgloss.NewStyle().Foreground(ColorYellow).Render(ratingCell)
		}

		cells := []string{
			util.TruncateString(d.Name, widths[0]-2),
			util.FormatDateHuman(d.DateCooked),
			ratingCell,
			string(d.Difficulty),
			util.TruncateString(strings.Join(d.Tags, ", "), widths[4]-2),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		header,
		strings.Join(rows, "\n"),
	)
}
