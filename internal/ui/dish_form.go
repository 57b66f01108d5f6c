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

// Field order in the dish form.
const (
	dishFieldName = iota
	dishFieldCountry
	dishFieldDate
	dishFieldRating
	dishFieldDifficulty
	dishFieldDetails
	dishFieldIngredients
	dishFieldTags
	dishFieldPrepTime
	dishFieldCookTime
	dishFieldServings
	dishFieldNotes
	dishFieldCount
)

// DishFormModel represents the add-dish form.
type DishFormModel struct {
	store        *data.Store
	focusedField int
	inputs       []textinput.Model
}

// NewDishFormModel creates a new dish form.
func NewDishFormModel(store *data.Store) *DishFormModel {
	inputs := make([]textinput.Model, dishFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
	}

	inputs[dishFieldName].Placeholder = "Dish name"
	inputs[dishFieldName].Focus()
	inputs[dishFieldCountry].Placeholder = "2-letter country code (IT, JP, ...)"
	inputs[dishFieldCountry].CharLimit = 2
	inputs[dishFieldDate].Placeholder = "YYYY-MM-DD (default today)"
	inputs[dishFieldRating].Placeholder = "0-5"
	inputs[dishFieldRating].CharLimit = 4
	inputs[dishFieldDifficulty].Placeholder = "Easy, Medium, or Hard"
	inputs[dishFieldDifficulty].CharLimit = 6
	inputs[dishFieldDetails].Placeholder = "What was it, how did it go"
	inputs[dishFieldDetails].CharLimit = 2000
	inputs[dishFieldIngredients].Placeholder = "Comma-separated ingredients"
	inputs[dishFieldIngredients].CharLimit = 2000
	inputs[dishFieldTags].Placeholder = "Comma-separated tags"
	inputs[dishFieldPrepTime].Placeholder = "e.g. 15 minutes"
	inputs[dishFieldCookTime].Placeholder = "e.g. 30 minutes"
	inputs[dishFieldServings].Placeholder = "Number of servings"
	inputs[dishFieldServings].CharLimit = 3
	inputs[dishFieldNotes].Placeholder = "Substitutions, ideas for next time"
	inputs[dishFieldNotes].CharLimit = 2000

	return &DishFormModel{
		store:  store,
		inputs: inputs,
	}
}

// Update handles input.
func (m *DishFormModel) Update(msg tea.KeyMsg) tea.Cmd {
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
func (m *DishFormModel) View(width, height int) string {
	labels := []string{
		"Name *",
		"Country *",
		"Date Cooked",
		"Rating (0-5)",
		"Difficulty",
		"Description",
		"Ingredients",
		"Tags",
		"Prep Time",
		"Cook Time",
		"Servings",
		"Notes",
	}

	var fields []string
	for i, label := range labels {
		fields = append(fields, renderFormField(label, m.inputs[i], m.focusedField == i))
	}

	content := PanelStyle.
		Width(width - 4).
		Render(strings.Join(fields, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Padding(0, 2).Render("Log a dish"), content)
}

func (m *DishFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *DishFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *DishFormModel) save() tea.Cmd {
	return func() tea.Msg {
		name := strings.TrimSpace(m.inputs[dishFieldName].Value())
		if name == "" {
			return model.ErrorMsg{Err: fmt.Errorf("name is required")}
		}

		country := strings.ToUpper(strings.TrimSpace(m.inputs[dishFieldCountry].Value()))

		date, err := util.ParseDateInput(m.inputs[dishFieldDate].Value())
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("date cooked: %w", err)}
		}
		if date == "" {
			date = util.TodayISO()
		}

		rating, ok, err := util.ParseRatingInput(m.inputs[dishFieldRating].Value())
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		if !ok {
			return model.ErrorMsg{Err: fmt.Errorf("rating is required")}
		}

		difficulty, err := parseDifficulty(m.inputs[dishFieldDifficulty].Value())
		if err != nil {
			return model.ErrorMsg{Err: err}
		}

		servings := 0
		if v := strings.TrimSpace(m.inputs[dishFieldServings].Value()); v != "" {
			servings, err = strconv.Atoi(v)
			if err != nil || servings < 0 {
				return model.ErrorMsg{Err: fmt.Errorf("servings must be a whole number")}
			}
		}

		dish := model.Dish{
			ID:            nextDishID(m.store, country),
			Name:          name,
			Country:       country,
			CountryName:   data.CountryName(country),
			DateCooked:    date,
			Rating:        rating,
			Difficulty:    difficulty,
			RecipeDetails: strings.TrimSpace(m.inputs[dishFieldDetails].Value()),
			Ingredients:   util.SplitList(m.inputs[dishFieldIngredients].Value()),
			Tags:          util.SplitList(m.inputs[dishFieldTags].Value()),
			PrepTime:      strings.TrimSpace(m.inputs[dishFieldPrepTime].Value()),
			CookTime:      strings.TrimSpace(m.inputs[dishFieldCookTime].Value()),
			Servings:      servings,
			Notes:         strings.TrimSpace(m.inputs[dishFieldNotes].Value()),
		}

		if err := m.store.AddDish(dish); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.DishSavedMsg{Dish: dish}
	}
}

func parseDifficulty(input string) (model.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "easy":
		return model.DifficultyEasy, nil
	case "medium":
		return model.DifficultyMedium, nil
	case "hard":
		return model.DifficultyHard, nil
	}
	return "", fmt.Errorf("difficulty must be Easy, Medium, or Hard")
}

// nextDishID picks the first free <country>-<n> identifier.
func nextDishID(s *data.Store, country string) string {
	base := strings.ToLower(country)
	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-%d", base, n)
		if _, ok := s.DishByID(id); !ok {
			return id
		}
	}
}

// renderFormField renders a label and its input, highlighting focus.
func renderFormField(label string, input textinput.Model, focused bool) string {
	style := HelpDescStyle
	if focused {
		style = LabelStyle
	}
	return style.Render(label) + "\n" + input.View()
}
