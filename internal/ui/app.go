package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"morsel/internal/data"
	"morsel/internal/model"
	"morsel/internal/places"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model.
type Model struct {
	store        *data.Store
	placesClient *places.Client
	screen       model.Screen
	mode         model.Mode
	gState       GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	// Screen models
	countries        *CountriesModel
	gallery          *GalleryModel
	restaurants      *RestaurantsModel
	timeline         *TimelineModel
	countryDetail    *CountryDetailModel
	dishDetail       *DishDetailModel
	restaurantDetail *RestaurantDetailModel
	dishForm         *DishFormModel
	restaurantForm   *RestaurantFormModel

	// Where backing out of a detail screen should land.
	returnScreen model.Screen
	notFound     model.NotFoundMsg

	keys     KeyMap
	formKeys FormKeyMap
	prefs    UIPreferences
}

// New creates a new root model.
func New(store *data.Store, placesClient *places.Client) Model {
	prefs := loadUIPreferences()
	return Model{
		store:        store,
		placesClient: placesClient,
		screen:       startScreen(prefs),
		mode:         model.ModeNav,
		gState:       GStateIdle,
		keys:         DefaultKeyMap(),
		formKeys:     DefaultFormKeyMap(),
		prefs:        prefs,
	}
}

func startScreen(prefs UIPreferences) model.Screen {
	switch prefs.StartScreen {
	case "dishes":
		return model.ScreenDishes
	case "restaurants":
		return model.ScreenRestaurants
	case "timeline":
		return model.ScreenTimeline
	default:
		return model.ScreenCountries
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCountriesCmd(m.store),
		loadDishesCmd(m.store),
		loadRestaurantsCmd(m.store),
		loadTimelineCmd(m.store),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}

		// Search steals keystrokes until closed
		if m.screen == model.ScreenDishes && m.gallery != nil && m.gallery.Searching() {
			switch msg.String() {
			case "esc", "enter":
				m.gallery.StopSearch()
				return m, nil
			}
			return m, m.gallery.UpdateSearch(msg)
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = true
			return m, nil
		}

		return m.handleNavMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.CountriesLoadedMsg:
		m.countries = NewCountriesModel(msg.Countries)
		if !m.prefs.CountriesSortDesc {
			m.countries.ToggleSort()
		}
		m.error = ""
		return m, nil

	case model.DishesLoadedMsg:
		m.gallery = NewGalleryModel(msg.Dishes)
		m.error = ""
		return m, nil

	case model.RestaurantsLoadedMsg:
		m.restaurants = NewRestaurantsModel(msg.Restaurants)
		if !m.prefs.RestaurantsSortDesc {
			m.restaurants.ToggleSort()
		}
		m.error = ""
		return m, nil

	case model.TimelineLoadedMsg:
		m.timeline = NewTimelineModel(msg.Events)
		m.error = ""
		return m, nil

	case model.CountryDetailLoadedMsg:
		m.countryDetail = NewCountryDetailModel(msg)
		m.screen = model.ScreenCountryDetail
		m.error = ""
		return m, nil

	case model.DishDetailLoadedMsg:
		m.dishDetail = NewDishDetailModel(msg.Dish)
		m.screen = model.ScreenDishDetail
		m.error = ""
		return m, nil

	case model.RestaurantDetailLoadedMsg:
		m.restaurantDetail = NewRestaurantDetailModel(msg.Restaurant)
		m.screen = model.ScreenRestaurantDetail
		m.error = ""
		return m, nil

	case model.NotFoundMsg:
		m.notFound = msg
		m.screen = model.ScreenNotFound
		m.error = ""
		return m, nil

	case model.DishSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenDishes
		m.dishForm = nil
		m.info = fmt.Sprintf("Dish saved as %s", msg.Dish.ID)
		return m, tea.Batch(
			loadDishesCmd(m.store),
			loadCountriesCmd(m.store),
			loadTimelineCmd(m.store),
		)

	case model.RestaurantSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenRestaurants
		m.restaurantForm = nil
		m.info = fmt.Sprintf("Restaurant saved as %s", msg.Restaurant.ID)
		return m, tea.Batch(
			loadRestaurantsCmd(m.store),
			loadTimelineCmd(m.store),
		)

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.dishForm = nil
		m.restaurantForm = nil
		if m.screen == model.ScreenDishForm {
			m.screen = model.ScreenDishes
		} else if m.screen == model.ScreenRestaurantForm {
			m.screen = model.ScreenRestaurants
		}
		return m, nil

	case model.PlaceDetailsLoadedMsg:
		if m.restaurantDetail != nil && m.restaurantDetail.ID() == msg.RestaurantID {
			m.restaurantDetail.ApplyPlaceDetails(msg)
		}
		m.error = ""
		return m, nil
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var content string
	var breadcrumbParts []string

	showTabs := m.screen == model.ScreenCountries ||
		m.screen == model.ScreenDishes ||
		m.screen == model.ScreenRestaurants ||
		m.screen == model.ScreenTimeline

	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}

	switch m.screen {
	case model.ScreenCountries:
		breadcrumbParts = []string{"Map"}
		if m.countries != nil {
			content = m.countries.View(m.width, contentHeight)
		}
	case model.ScreenDishes:
		breadcrumbParts = []string{"Dishes"}
		if m.gallery != nil {
			content = m.gallery.View(m.width, contentHeight)
		}
	case model.ScreenRestaurants:
		breadcrumbParts = []string{"Restaurants"}
		if m.restaurants != nil {
			content = m.restaurants.View(m.width, contentHeight)
		}
	case model.ScreenTimeline:
		breadcrumbParts = []string{"Timeline"}
		if m.timeline != nil {
			content = m.timeline.View(m.width, contentHeight)
		}
	case model.ScreenCountryDetail:
		breadcrumbParts = []string{"Map", "Country"}
		if m.countryDetail != nil {
			breadcrumbParts = []string{"Map", m.countryDetail.Name()}
			content = m.countryDetail.View(m.width, contentHeight)
		}
	case model.ScreenDishDetail:
		breadcrumbParts = []string{"Dishes", "Detail"}
		if m.dishDetail != nil {
			breadcrumbParts = []string{"Dishes", m.dishDetail.dish.Name}
			content = m.dishDetail.View(m.width, contentHeight)
		}
	case model.ScreenRestaurantDetail:
		breadcrumbParts = []string{"Restaurants", "Detail"}
		if m.restaurantDetail != nil {
			breadcrumbParts = []string{"Restaurants", m.restaurantDetail.restaurant.Name}
			content = m.restaurantDetail.View(m.width, contentHeight)
		}
	case model.ScreenDishForm:
		breadcrumbParts = []string{"Dishes", "New"}
		if m.dishForm != nil {
			content = m.dishForm.View(m.width, contentHeight)
		}
	case model.ScreenRestaurantForm:
		breadcrumbParts = []string{"Restaurants", "New"}
		if m.restaurantForm != nil {
			content = m.restaurantForm.View(m.width, contentHeight)
		}
	case model.ScreenNotFound:
		breadcrumbParts = []string{"Not Found"}
		content = m.renderNotFound()
	}

	header := renderHeader(breadcrumbParts, m.width)
	footer := RenderHelp(m.screen, m.mode, m.width)

	contentStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight)
	content = contentStyle.Render(content)

	sections := []string{header}
	if showTabs {
		sections = append(sections, renderTabs(m.screen, m.width))
	}
	if m.error != "" {
		sections = append(sections, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		sections = append(sections, SuccessStyle.Width(m.width).Render(m.info))
	}
	sections = append(sections, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderNotFound() string {
	noun := "Dish"
	if m.notFound.Kind == model.EventRestaurant {
		noun = "Restaurant"
	}
	return EmptyStateStyle.Render(fmt.Sprintf(
		"%s %q was not found.\nPress  esc  to go back.", noun, m.notFound.ID))
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Map", model.ScreenCountries},
		{"Dishes", model.ScreenDishes},
		{"Restaurants", model.ScreenRestaurants},
		{"Timeline", model.ScreenTimeline},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("morsel")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	now := time.Now()
	dateStr := now.Format("Mon 02 Jan")
	right := BreadcrumbStyle.Render(dateStr) + "  "

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := width - leftLen - rightLen
	if padding < 0 {
		padding = 0
	}

	headerContent := left + strings.Repeat(" ", padding) + right
	return TitleStyle.Width(width).Render(headerContent)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.info = ""

	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		m.currentCursorTop()
		return m, nil
	}
	if m.gState == GStateFirstG {
		m.gState = GStateIdle
	}

	// Tab switching from the top-level screens
	if m.isTopLevel() {
		switch {
		case key.Matches(msg, m.keys.TabCountries):
			m.screen = model.ScreenCountries
			return m, nil
		case key.Matches(msg, m.keys.TabDishes):
			m.screen = model.ScreenDishes
			return m, nil
		case key.Matches(msg, m.keys.TabRestaurant):
			m.screen = model.ScreenRestaurants
			return m, nil
		case key.Matches(msg, m.keys.TabTimeline):
			m.screen = model.ScreenTimeline
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			_ = saveUIPreferences(m.prefs)
			return m, tea.Quit
		}
	}

	switch m.screen {
	case model.ScreenCountries:
		return m.handleCountriesNav(msg)
	case model.ScreenDishes:
		return m.handleDishesNav(msg)
	case model.ScreenRestaurants:
		return m.handleRestaurantsNav(msg)
	case model.ScreenTimeline:
		return m.handleTimelineNav(msg)
	case model.ScreenCountryDetail:
		return m.handleCountryDetailNav(msg)
	case model.ScreenDishDetail:
		return m.handleDishDetailNav(msg)
	case model.ScreenRestaurantDetail:
		return m.handleRestaurantDetailNav(msg)
	case model.ScreenNotFound:
		if key.Matches(msg, m.keys.Back) {
			m.screen = m.returnScreen
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) isTopLevel() bool {
	return m.screen == model.ScreenCountries ||
		m.screen == model.ScreenDishes ||
		m.screen == model.ScreenRestaurants ||
		m.screen == model.ScreenTimeline
}

func (m *Model) visibleRows() int {
	v := m.height - 9
	if v < 1 {
		v = 1
	}
	return v
}

func (m *Model) currentCursorTop() {
	switch m.screen {
	case model.ScreenCountries:
		if m.countries != nil {
			m.countries.cur.JumpToTop()
		}
	case model.ScreenDishes:
		if m.gallery != nil {
			m.gallery.cur.JumpToTop()
		}
	case model.ScreenRestaurants:
		if m.restaurants != nil {
			m.restaurants.cur.JumpToTop()
		}
	case model.ScreenTimeline:
		if m.timeline != nil {
			m.timeline.cur.JumpToTop()
		}
	case model.ScreenCountryDetail:
		if m.countryDetail != nil {
			m.countryDetail.cur.JumpToTop()
		}
	}
}

// moveCursor applies the shared list-movement keys. It reports whether the
// key was a movement key.
func (m *Model) moveCursor(msg tea.KeyMsg, cur *listCursor, length int) bool {
	visible := m.visibleRows()
	switch {
	case key.Matches(msg, m.keys.Down):
		cur.MoveDown(length, visible)
	case key.Matches(msg, m.keys.Up):
		cur.MoveUp(length, visible)
	case key.Matches(msg, m.keys.Bottom):
		cur.JumpToBottom(length, visible)
	case key.Matches(msg, m.keys.HalfPageDown):
		cur.HalfPageDown(length, visible)
	case key.Matches(msg, m.keys.HalfPageUp):
		cur.HalfPageUp(length, visible)
	default:
		return false
	}
	return true
}

func (m Model) handleCountriesNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.countries == nil {
		return m, nil
	}
	if m.moveCursor(msg, &m.countries.cur, len(m.countries.rows)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Sort), key.Matches(msg, m.keys.SortReverse):
		m.countries.ToggleSort()
		m.prefs.CountriesSortDesc = m.countries.sortDesc
		_ = saveUIPreferences(m.prefs)
		return m, nil
	case key.Matches(msg, m.keys.Select) || msg.String() == "l":
		if code, ok := m.countries.Selected(); ok {
			m.returnScreen = model.ScreenCountries
			return m, loadCountryDetailCmd(m.store, code)
		}
	}
	return m, nil
}

func (m Model) handleDishesNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gallery == nil {
		return m, nil
	}
	if m.moveCursor(msg, &m.gallery.cur, len(m.gallery.rows)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.gallery.StartSearch()
	case key.Matches(msg, m.keys.CycleCountry):
		m.gallery.CycleCountry()
		return m, nil
	case key.Matches(msg, m.keys.ClearCountry):
		m.gallery.ClearCountry()
		return m, nil
	case key.Matches(msg, m.keys.CycleTag):
		m.gallery.CycleTag()
		return m, nil
	case key.Matches(msg, m.keys.ClearTag):
		m.gallery.ClearTag()
		return m, nil
	case key.Matches(msg, m.keys.ClearFilters):
		m.gallery.ClearFilters()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.mode = model.ModeInsert
		m.screen = model.ScreenDishForm
		m.dishForm = NewDishFormModel(m.store)
		return m, nil
	case key.Matches(msg, m.keys.Select) || msg.String() == "l":
		if id, ok := m.gallery.Selected(); ok {
			m.returnScreen = model.ScreenDishes
			return m, loadDishDetailCmd(m.store, id)
		}
	}
	return m, nil
}

func (m Model) handleRestaurantsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.restaurants == nil {
		return m, nil
	}
	if m.moveCursor(msg, &m.restaurants.cur, len(m.restaurants.rows)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CycleCity):
		m.restaurants.CycleCity()
		return m, nil
	case key.Matches(msg, m.keys.ClearCity):
		m.restaurants.ClearCity()
		return m, nil
	case key.Matches(msg, m.keys.Sort), key.Matches(msg, m.keys.SortReverse):
		m.restaurants.ToggleSort()
		m.prefs.RestaurantsSortDesc = m.restaurants.sortDesc
		_ = saveUIPreferences(m.prefs)
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.mode = model.ModeInsert
		m.screen = model.ScreenRestaurantForm
		m.restaurantForm = NewRestaurantFormModel(m.store)
		return m, nil
	case key.Matches(msg, m.keys.Select) || msg.String() == "l":
		if id, ok := m.restaurants.Selected(); ok {
			m.returnScreen = model.ScreenRestaurants
			return m, loadRestaurantDetailCmd(m.store, id)
		}
	}
	return m, nil
}

func (m Model) handleTimelineNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.timeline == nil {
		return m, nil
	}
	if m.moveCursor(msg, &m.timeline.cur, len(m.timeline.events)) {
		return m, nil
	}

	if key.Matches(msg, m.keys.Select) || msg.String() == "l" {
		if eventID, ok := m.timeline.Selected(); ok {
			kind, recordID, ok := data.SplitEventID(eventID)
			if !ok {
				m.error = fmt.Sprintf("unrecognized event id %q", eventID)
				return m, nil
			}
			m.returnScreen = model.ScreenTimeline
			if kind == model.EventRestaurant {
				return m, loadRestaurantDetailCmd(m.store, recordID)
			}
			return m, loadDishDetailCmd(m.store, recordID)
		}
	}
	return m, nil
}

func (m Model) handleCountryDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.countryDetail == nil {
		return m, nil
	}
	if m.moveCursor(msg, &m.countryDetail.cur, len(m.countryDetail.dishes)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenCountries
		m.countryDetail = nil
		return m, nil
	case key.Matches(msg, m.keys.Select) || msg.String() == "l":
		if id, ok := m.countryDetail.Selected(); ok {
			m.returnScreen = model.ScreenCountryDetail
			return m, loadDishDetailCmd(m.store, id)
		}
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleDishDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = m.returnScreen
		m.dishDetail = nil
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleRestaurantDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = m.returnScreen
		m.restaurantDetail = nil
		return m, nil
	case key.Matches(msg, m.keys.PlaceDetails):
		if m.restaurantDetail != nil {
			return m, placeDetailsCmd(m.placesClient, m.restaurantDetail.ID(), m.restaurantDetail.PlaceID())
		}
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleInsertMode routes keystrokes to the active form.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenDishForm:
		if m.dishForm != nil {
			return m, m.dishForm.Update(msg)
		}
	case model.ScreenRestaurantForm:
		if m.restaurantForm != nil {
			return m, m.restaurantForm.Update(msg)
		}
	}
	return m, nil
}

// Commands

func loadCountriesCmd(store *data.Store) tea.Cmd {
	return func() tea.Msg {
		return model.CountriesLoadedMsg{Countries: store.CountriesData()}
	}
}

func loadDishesCmd(store *data.Store) tea.Cmd {
	return func() tea.Msg {
		return model.DishesLoadedMsg{Dishes: store.Dishes()}
	}
}

func loadRestaurantsCmd(store *data.Store) tea.Cmd {
	return func() tea.Msg {
		return model.RestaurantsLoadedMsg{Restaurants: store.Restaurants()}
	}
}

func loadTimelineCmd(store *data.Store) tea.Cmd {
	return func() tea.Msg {
		return model.TimelineLoadedMsg{Events: store.TimelineEvents()}
	}
}

func loadDishDetailCmd(store *data.Store, id string) tea.Cmd {
	return func() tea.Msg {
		dish, ok := store.DishByID(id)
		if !ok {
			return model.NotFoundMsg{Kind: model.EventDish, ID: id}
		}
		return model.DishDetailLoadedMsg{Dish: dish}
	}
}

func loadRestaurantDetailCmd(store *data.Store, id string) tea.Cmd {
	return func() tea.Msg {
		restaurant, ok := store.RestaurantByID(id)
		if !ok {
			return model.NotFoundMsg{Kind: model.EventRestaurant, ID: id}
		}
		return model.RestaurantDetailLoadedMsg{Restaurant: restaurant}
	}
}

func loadCountryDetailCmd(store *data.Store, code string) tea.Cmd {
	return func() tea.Msg {
		countries := store.CountriesData()
		c, ok := countries[code]
		if !ok {
			return model.ErrorMsg{Err: fmt.Errorf("no dishes recorded for %s", code)}
		}
		name := data.CountryName(code)
		return model.CountryDetailLoadedMsg{
			Code:   code,
			Name:   name,
			Flag:   c.FlagEmoji,
			Dishes: c.Dishes,
		}
	}
}

func placeDetailsCmd(client *places.Client, restaurantID, placeID string) tea.Cmd {
	return func() tea.Msg {
		details, err := client.Details(context.Background(), placeID)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load place details: %w", err)}
		}
		return model.PlaceDetailsLoadedMsg{
			RestaurantID: restaurantID,
			GoogleRating: details.GoogleRating,
			PhoneNumber:  details.PhoneNumber,
			Website:      details.Website,
			OpeningHours: details.OpeningHours,
		}
	}
}
