package ui

import (
	"fmt"
	"sort"
	"strings"

	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// RestaurantsModel represents the restaurant visits screen, with a
// client-side city filter over the full list.
type RestaurantsModel struct {
	all  []model.Restaurant
	rows []model.Restaurant
	cur  listCursor

	cities   []string // distinct, in insertion order
	cityIdx  int      // -1 = off
	sortDesc bool
}

// NewRestaurantsModel creates the restaurants screen.
func NewRestaurantsModel(restaurants []model.Restaurant) *RestaurantsModel {
	m := &RestaurantsModel{
		all:      append([]model.Restaurant(nil), restaurants...),
		cityIdx:  -1,
		sortDesc: true,
	}
	seen := make(map[string]bool)
	for _, r := range restaurants {
		if r.Location.City != "" && !seen[r.Location.City] {
			seen[r.Location.City] = true
			m.cities = append(m.cities, r.Location.City)
		}
	}
	m.rebuild()
	return m
}

func (m *RestaurantsModel) rebuild() {
	rows := make([]model.Restaurant, 0, len(m.all))
	city := m.selectedCity()
	for _, r := range m.all {
		if city != "" && r.Location.City != city {
			continue
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if m.sortDesc {
			return rows[i].VisitDate > rows[j].VisitDate
		}
		return rows[i].VisitDate < rows[j].VisitDate
	})
	m.rows = rows
	m.cur.clamp(len(m.rows), 0)
}

func (m *RestaurantsModel) selectedCity() string {
	if m.cityIdx < 0 || m.cityIdx >= len(m.cities) {
		return ""
	}
	return m.cities[m.cityIdx]
}

// CycleCity advances the city filter: off, then each city in turn.
func (m *RestaurantsModel) CycleCity() {
	m.cityIdx++
	if m.cityIdx >= len(m.cities) {
		m.cityIdx = -1
	}
	m.rebuild()
}

// ClearCity turns the city filter off.
func (m *RestaurantsModel) ClearCity() {
	m.cityIdx = -1
	m.rebuild()
}

// ToggleSort flips the visit-date sort direction.
func (m *RestaurantsModel) ToggleSort() {
	m.sortDesc = !m.sortDesc
	m.rebuild()
}

// Selected returns the restaurant ID under the cursor.
func (m *RestaurantsModel) Selected() (string, bool) {
	if len(m.rows) == 0 {
		return "", false
	}
	return m.rows[m.cur.cursor].ID, true
}

// View renders the restaurants list.
func (m *RestaurantsModel) View(width, height int) string {
	if len(m.rows) == 0 && m.selectedCity() == "" {
		return EmptyStateStyle.Width(width).Height(height).Render(
			"    No restaurant visits yet.\n    Press  a  to log your first visit.")
	}

	widths := stretchLastColumn([]int{12, 24, 14, 14, 8, 9, 20}, width)
	header := renderTableHeader([]string{"visited", "name", "city", "cuisine", "price", "rating", "address"}, widths, 0, m.sortDesc)

	visible := height - 3
	var rows []string
	for i := m.cur.offset; i < len(m.rows) && i < m.cur.offset+visible; i++ {
		r := m.rows[i]
		style := rowStyle(i, m.cur.cursor)

		priceCell := r.PriceRange
		if priceCell == "" {
			priceCell = "—"
		}
		ratingCell := util.FormatRatingWithStar(r.Rating)
		if i != m.cur.cursor {
			ratingCell = lipgloss.NewStyle().Foreground(ColorYellow).Render(ratingCell)
		}

		cells := []string{
			util.FormatDateHuman(r.VisitDate),
			util.TruncateString(r.Name, widths[1]-2),
			util.TruncateString(r.Location.City, widths[2]-2),
			util.TruncateString(r.Cuisine, widths[3]-2),
			priceCell,
			ratingCell,
			util.TruncateString(r.Location.Address, widths[6]-2),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	cityInfo := ""
	if city := m.selectedCity(); city != "" {
		cityInfo = fmt.Sprintf("  ·  city %q (%d/%d)", city, len(m.rows), len(m.all))
	}
	status := StatusBarStyle.Render(fmt.Sprintf("Total visits: %d%s", len(m.rows), cityInfo))

	body := EmptyStateStyle.Width(width).Render("    No visits in this city.")
	if len(m.rows) > 0 {
		body = strings.Join(rows, "\n")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		"",
		status,
	)
}
