package ui

import (
	"fmt"
	"sort"
	"strings"

	"morsel/internal/data"
	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GalleryModel represents the dish gallery: the full dish list narrowed by
// free-text search, a country filter, and a tag filter, all ANDed.
type GalleryModel struct {
	all  []model.Dish
	rows []model.Dish
	cur  listCursor

	search    textinput.Model
	searching bool

	countries  []string // distinct codes, insertion order
	countryIdx int      // index into countries, -1 = off
	tags       []string // distinct tags, sorted
	tagIdx     int      // index into tags, -1 = off
}

// NewGalleryModel creates the gallery over the given dishes.
func NewGalleryModel(dishes []model.Dish) *GalleryModel {
	search := textinput.New()
	search.Placeholder = "Search name, recipe, or tags"
	search.CharLimit = 80
	search.Width = 36

	m := &GalleryModel{
		all:        append([]model.Dish(nil), dishes...),
		search:     search,
		countryIdx: -1,
		tagIdx:     -1,
	}

	seen := make(map[string]bool)
	tagSeen := make(map[string]bool)
	for _, d := range dishes {
		if !seen[d.Country] {
			seen[d.Country] = true
			m.countries = append(m.countries, d.Country)
		}
		for _, t := range d.Tags {
			if !tagSeen[t] {
				tagSeen[t] = true
				m.tags = append(m.tags, t)
			}
		}
	}
	sort.Strings(m.tags)

	m.rebuild()
	return m
}

func (m *GalleryModel) rebuild() {
	m.rows = data.FilterDishes(m.all, m.search.Value(), m.selectedCountry(), m.selectedTags())
	m.cur.clamp(len(m.rows), 0)
}

func (m *GalleryModel) selectedCountry() string {
	if m.countryIdx < 0 || m.countryIdx >= len(m.countries) {
		return ""
	}
	return m.countries[m.countryIdx]
}

func (m *GalleryModel) selectedTags() []string {
	if m.tagIdx < 0 || m.tagIdx >= len(m.tags) {
		return nil
	}
	return []string{m.tags[m.tagIdx]}
}

// StartSearch focuses the search input.
func (m *GalleryModel) StartSearch() tea.Cmd {
	m.searching = true
	return m.search.Focus()
}

// StopSearch blurs the search input, keeping the query applied.
func (m *GalleryModel) StopSearch() {
	m.searching = false
	m.search.Blur()
}

// Searching reports whether keystrokes should go to the search input.
func (m *GalleryModel) Searching() bool {
	return m.searching
}

// UpdateSearch feeds a key to the search input and reapplies the filters.
func (m *GalleryModel) UpdateSearch(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.rebuild()
	return cmd
}

// CycleCountry advances the country filter: off, then each country in turn.
func (m *GalleryModel) CycleCountry() {
	m.countryIdx++
	if m.countryIdx >= len(m.countries) {
		m.countryIdx = -1
	}
	m.rebuild()
}

// ClearCountry turns the country filter off.
func (m *GalleryModel) ClearCountry() {
	m.countryIdx = -1
	m.rebuild()
}

// CycleTag advances the tag filter: off, then each known tag in turn.
func (m *GalleryModel) CycleTag() {
	m.tagIdx++
	if m.tagIdx >= len(m.tags) {
		m.tagIdx = -1
	}
	m.rebuild()
}

// ClearTag turns the tag filter off.
func (m *GalleryModel) ClearTag() {
	m.tagIdx = -1
	m.rebuild()
}

// ClearFilters resets search, country, and tag at once.
func (m *GalleryModel) ClearFilters() {
	m.search.SetValue("")
	m.countryIdx = -1
	m.tagIdx = -1
	m.rebuild()
}

// Selected returns the dish ID under the cursor.
func (m *GalleryModel) Selected() (string, bool) {
	if len(m.rows) == 0 {
		return "", false
	}
	return m.rows[m.cur.cursor].ID, true
}

// View renders the gallery.
func (m *GalleryModel) View(width, height int) string {
	searchLine := LabelStyle.Render("Search: ") + m.search.View()
	var filters []string
	if c := m.selectedCountry(); c != "" {
		filters = append(filters, fmt.Sprintf("country %s %s", data.FlagEmoji(c), c))
	}
	if tags := m.selectedTags(); len(tags) > 0 {
		filters = append(filters, "tag "+tags[0])
	}
	if len(filters) > 0 {
		searchLine += "   " + BreadcrumbActiveStyle.Render(strings.Join(filters, "  ·  "))
	}

	if len(m.rows) == 0 {
		empty := EmptyStateStyle.Width(width).Render(
			"    No dishes found matching your filters.\n    Try adjusting your search, or press  x  to clear them.")
		return lipgloss.JoinVertical(lipgloss.Left, searchLine, "", empty)
	}

	widths := stretchLastColumn([]int{26, 14, 12, 9, 10, 24}, width)
	header := renderTableHeader([]string{"name", "country", "cooked", "rating", "level", "tags"}, widths, -1, false)

	visible := height - 5
	var rows []string
	for i := m.cur.offset; i < len(m.rows) && i < m.cur.offset+visible; i++ {
		d := m.rows[i]
		style := rowStyle(i, m.cur.cursor)

		ratingCell := util.FormatRatingWithStar(d.Rating)
		if i != m.cur.cursor {
			ratingCell = lipgloss.NewStyle().Foreground(ColorYellow).Render(ratingCell)
		}

		cells := []string{
			util.TruncateString(d.Name, widths[0]-2),
			data.FlagEmoji(d.Country) + " " + d.Country,
			util.FormatDateHuman(d.DateCooked),
			ratingCell,
			string(d.Difficulty),
			util.TruncateString(strings.Join(d.Tags, ", "), widths[5]-2),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	noun := "dishes"
	if len(m.rows) == 1 {
		noun = "dish"
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d %s found  ·  %d total", len(m.rows), noun, len(m.all)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		searchLine,
		"",
		header,
		strings.Join(rows, "\n"),
		"",
		status,
	)
}
