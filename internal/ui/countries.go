package ui

import (
	"fmt"
	"sort"
	"strings"

	"morsel/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// countryRow is one country with its aggregate, flattened for display.
type countryRow struct {
	Code      string
	Name      string
	Flag      string
	DishCount int
}

// CountriesModel represents the world-map screen: one row per country,
// colored by how much cooking happened there.
type CountriesModel struct {
	rows     []countryRow
	maxCount int
	cur      listCursor
	sortDesc bool
}

// NewCountriesModel builds the screen from the per-country aggregates.
func NewCountriesModel(countries map[string]model.CountryData) *CountriesModel {
	m := &CountriesModel{sortDesc: true}
	for code, c := range countries {
		name := c.Dishes[0].CountryName
		if name == "" {
			name = code
		}
		m.rows = append(m.rows, countryRow{
			Code:      code,
			Name:      name,
			Flag:      c.FlagEmoji,
			DishCount: c.DishCount,
		})
		if c.DishCount > m.maxCount {
			m.maxCount = c.DishCount
		}
	}
	m.sortRows()
	return m
}

func (m *CountriesModel) sortRows() {
	sort.SliceStable(m.rows, func(i, j int) bool {
		if m.rows[i].DishCount != m.rows[j].DishCount {
			if m.sortDesc {
				return m.rows[i].DishCount > m.rows[j].DishCount
			}
			return m.rows[i].DishCount < m.rows[j].DishCount
		}
		return m.rows[i].Code < m.rows[j].Code
	})
}

// ToggleSort flips between most-cooked-first and least-cooked-first.
func (m *CountriesModel) ToggleSort() {
	m.sortDesc = !m.sortDesc
	m.sortRows()
	m.cur.JumpToTop()
}

// Selected returns the country code under the cursor.
func (m *CountriesModel) Selected() (string, bool) {
	if len(m.rows) == 0 {
		return "", false
	}
	return m.rows[m.cur.cursor].Code, true
}

// View renders the countries list.
func (m *CountriesModel) View(width, height int) string {
	if len(m.rows) == 0 {
		return EmptyStateStyle.Width(width).Height(height).Render(
			"    No dishes cooked yet.\n    Press  2  then  a  to log your first dish.")
	}

	widths := stretchLastColumn([]int{8, 28, 10, 24}, width)
	header := renderTableHeader([]string{"flag", "country", "dishes", ""}, widths, 2, m.sortDesc)

	visible := height - 3
	var rows []string
	for i := m.cur.offset; i < len(m.rows) && i < m.cur.offset+visible; i++ {
		row := m.rows[i]
		style := rowStyle(i, m.cur.cursor)

		countCell := fmt.Sprintf("%d", row.DishCount)
		barCell := strings.Repeat("█", row.DishCount)
		if i != m.cur.cursor {
			heat := lipgloss.NewStyle().Foreground(HeatColor(row.DishCount, m.maxCount))
			countCell = heat.Render(countCell)
			barCell = heat.Render(barCell)
		}

		cells := []string{row.Flag, row.Name, countCell, barCell}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	status := StatusBarStyle.Render(fmt.Sprintf("Cooked in %d countries", len(m.rows)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
		"",
		status,
	)
}
