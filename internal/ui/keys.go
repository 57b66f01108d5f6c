package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines all keybindings for nav mode.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Back          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	HalfPageDown  key.Binding
	HalfPageUp    key.Binding
	Quit          key.Binding
	Help          key.Binding
	Add           key.Binding
	Search        key.Binding
	CycleCountry  key.Binding
	ClearCountry  key.Binding
	CycleTag      key.Binding
	ClearTag      key.Binding
	CycleCity     key.Binding
	ClearCity     key.Binding
	ClearFilters  key.Binding
	Sort          key.Binding
	SortReverse   key.Binding
	PlaceDetails  key.Binding
	TabCountries  key.Binding
	TabDishes     key.Binding
	TabRestaurant key.Binding
	TabTimeline   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc", "h"),
			key.WithHelp("b/esc", "back"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CycleCountry: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "country filter"),
		),
		ClearCountry: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear country"),
		),
		CycleTag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tag filter"),
		),
		ClearTag: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "clear tag"),
		),
		CycleCity: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "city filter"),
		),
		ClearCity: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear city"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),
		SortReverse: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "reverse sort"),
		),
		PlaceDetails: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "place details"),
		),
		TabCountries: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "map"),
		),
		TabDishes: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "dishes"),
		),
		TabRestaurant: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "restaurants"),
		),
		TabTimeline: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "timeline"),
		),
	}
}

// FormKeyMap defines keybindings for insert/edit mode.
type FormKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Cancel    key.Binding
}

// DefaultFormKeyMap returns the default form keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
