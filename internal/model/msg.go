package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// DishesLoadedMsg is sent when the dish gallery data is loaded.
type DishesLoadedMsg struct {
	Dishes []Dish
}

// RestaurantsLoadedMsg is sent when restaurants are loaded.
type RestaurantsLoadedMsg struct {
	Restaurants []Restaurant
}

// CountriesLoadedMsg is sent when the per-country aggregates are built.
type CountriesLoadedMsg struct {
	Countries map[string]CountryData
}

// TimelineLoadedMsg is sent when the unified timeline is built.
type TimelineLoadedMsg struct {
	Events []TimelineEvent
}

// DishDetailLoadedMsg is sent when a dish detail is loaded.
type DishDetailLoadedMsg struct {
	Dish Dish
}

// RestaurantDetailLoadedMsg is sent when a restaurant detail is loaded.
type RestaurantDetailLoadedMsg struct {
	Restaurant Restaurant
}

// CountryDetailLoadedMsg is sent when a country's dish list is loaded.
type CountryDetailLoadedMsg struct {
	Code   string
	Name   string
	Flag   string
	Dishes []Dish
}

// NotFoundMsg is sent when a lookup by ID finds nothing. The UI renders a
// not-found state with a way back to the listing screens.
type NotFoundMsg struct {
	Kind EventKind
	ID   string
}

// DishSavedMsg is sent when a dish is successfully appended.
type DishSavedMsg struct {
	Dish Dish
}

// RestaurantSavedMsg is sent when a restaurant is successfully appended.
type RestaurantSavedMsg struct {
	Restaurant Restaurant
}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// PlaceDetailsLoadedMsg is sent when Google place details resolve.
type PlaceDetailsLoadedMsg struct {
	RestaurantID string
	GoogleRating float64
	PhoneNumber  string
	Website      string
	OpeningHours []string
}

// Screen represents different app screens.
type Screen int

const (
	ScreenCountries Screen = iota
	ScreenDishes
	ScreenRestaurants
	ScreenTimeline
	ScreenCountryDetail
	ScreenDishDetail
	ScreenRestaurantDetail
	ScreenDishForm
	ScreenRestaurantForm
	ScreenNotFound
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
