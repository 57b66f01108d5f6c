package ui

import (
	"fmt"
	"strconv"
	"strings"

	"morsel/internal/data"
	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field order in the restaurant form.
const (
	restFieldName = iota
	restFieldAddress
	restFieldCity
	restFieldCountry
	restFieldLat
	restFieldLng
	restFieldCuisine
	restFieldPrice
	restFieldDate
	restFieldRating
	restFieldReview
	restFieldTags
	restFieldCount
)

// RestaurantFormModel represents the add-restaurant form.
type RestaurantFormModel struct {
	store        *data.Store
	focusedField int
	inputs       []textinput.Model
}

// NewRestaurantFormModel creates a new restaurant form.
func NewRestaurantFormModel(store *data.Store) *RestaurantFormModel {
	inputs := make([]textinput.Model, restFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
	}

	inputs[restFieldName].Placeholder = "Restaurant name"
	inputs[restFieldName].Focus()
	inputs[restFieldAddress].Placeholder = "Street address"
	inputs[restFieldCity].Placeholder = "City"
	inputs[restFieldCountry].Placeholder = "Country"
	inputs[restFieldLat].Placeholder = "Latitude (optional)"
	inputs[restFieldLat].CharLimit = 20
	inputs[restFieldLng].Placeholder = "Longitude (optional)"
	inputs[restFieldLng].CharLimit = 20
	inputs[restFieldCuisine].Placeholder = "Cuisine"
	inputs[restFieldPrice].Placeholder = "$ to $$$$"
	inputs[restFieldPrice].CharLimit = 4
	inputs[restFieldDate].Placeholder = "YYYY-MM-DD (default today)"
	inputs[restFieldRating].Placeholder = "0-5"
	inputs[restFieldRating].CharLimit = 4
	inputs[restFieldReview].Placeholder = "What did you think"
	inputs[restFieldReview].CharLimit = 2000
	inputs[restFieldTags].Placeholder = "Comma-separated tags"

	return &RestaurantFormModel{
		store:  store,
		inputs: inputs,
	}
}

// Update handles input.
func (m *RestaurantFormModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg {
			return model.FormCancelledMsg{}
		}
	case "ctrl+s":
		return m.save()
	case "tab":
		m.nextField()
		return nil
	case "shift+tab":
		m.prevField()
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return cmd
}

// View renders the form.
func (m *RestaurantFormModel) View(width, height int) string {
	labels := []string{
		"Name *",
		"Address",
		"City",
		"Country",
		"Latitude",
		"Longitude",
		"Cuisine",
		"Price Range",
		"Visit Date",
		"Rating (0-5)",
		"Review",
		"Tags",
	}

	var fields []string
	for i, label := range labels {
		fields = append(fields, renderFormField(label, m.inputs[i], m.focusedField == i))
	}

	content := PanelStyle.
		Width(width - 4).
		Render(strings.Join(fields, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Padding(0, 2).Render("Log a restaurant"), content)
}

func (m *RestaurantFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *RestaurantFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *RestaurantFormModel) save() tea.Cmd {
	return func() tea.Msg {
		name := strings.TrimSpace(m.inputs[restFieldName].Value())
		if name == "" {
			return model.ErrorMsg{Err: fmt.Errorf("name is required")}
		}

		date, err := util.ParseDateInput(m.inputs[restFieldDate].Value())
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("visit date: %w", err)}
		}
		if date == "" {
			date = util.TodayISO()
		}

		rating, ok, err := util.ParseRatingInput(m.inputs[restFieldRating].Value())
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		if !ok {
			return model.ErrorMsg{Err: fmt.Errorf("rating is required")}
		}

		lat, err := parseCoordinate(m.inputs[restFieldLat].Value(), 90)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("latitude: %w", err)}
		}
		lng, err := parseCoordinate(m.inputs[restFieldLng].Value(), 180)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("longitude: %w", err)}
		}

		address := strings.TrimSpace(m.inputs[restFieldAddress].Value())
		restaurant := model.Restaurant{
			ID:   nextRestaurantID(m.store),
			Name: name,
			Location: model.Location{
				Lat:     lat,
				Lng:     lng,
				Address: address,
				City:    strings.TrimSpace(m.inputs[restFieldCity].Value()),
				Country: strings.TrimSpace(m.inputs[restFieldCountry].Value()),
			},
			Rating:     rating,
			VisitDate:  date,
			Review:     strings.TrimSpace(m.inputs[restFieldReview].Value()),
			Cuisine:    strings.TrimSpace(m.inputs[restFieldCuisine].Value()),
			PriceRange: strings.TrimSpace(m.inputs[restFieldPrice].Value()),
			Tags:       util.SplitList(m.inputs[restFieldTags].Value()),
		}
		if address != "" {
			restaurant.Location.GoogleMapsURL = data.GoogleMapsURL(address)
		}

		if err := m.store.AddRestaurant(restaurant); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.RestaurantSavedMsg{Restaurant: restaurant}
	}
}

func parseCoordinate(input string, limit float64) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("out of range")
	}
	return v, nil
}

// nextRestaurantID picks the first free r<n> identifier.
func nextRestaurantID(s *data.Store) string {
	for n := 1; ; n++ {
		id := fmt.Sprintf("r%d", n)
		if _, ok := s.RestaurantByID(id); !ok {
			return id
		}
	}
}
