package model

// Difficulty describes how hard a dish was to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// SourceLink is a labeled outbound link attached to a dish (recipe source,
// video, blog post).
type SourceLink struct {
	URL         string
	Type        string
	Description string
}

// Dish represents a single home-cooked meal.
type Dish struct {
	ID            string
	Name          string
	Country       string // ISO-3166 alpha-2 code, e.g. "IT"
	CountryName   string
	DateCooked    string  // ISO 8601 date (YYYY-MM-DD)
	Rating        float64 // 0-5
	Difficulty    Difficulty
	RecipeDetails string
	Ingredients   []string
	MainImage     string
	Photos        []string
	PrepTime      string
	CookTime      string
	TotalTime     string
	Servings      int
	Notes         string
	Tags          []string
	Recipe        string // step-by-step instructions
	SourceLinks   []SourceLink
	VideoURL      string
}

// Clone returns a deep copy of the dish. Nested slices are copied so the
// caller cannot reach back into the store's record.
func (d Dish) Clone() Dish {
	c := d
	c.Ingredients = append([]string(nil), d.Ingredients...)
	c.Photos = append([]string(nil), d.Photos...)
	c.Tags = append([]string(nil), d.Tags...)
	c.SourceLinks = append([]SourceLink(nil), d.SourceLinks...)
	return c
}

// Location is where a restaurant sits.
type Location struct {
	Lat           float64
	Lng           float64
	Address       string
	City          string
	Country       string
	GoogleMapsURL string
}

// Restaurant represents a single dining-out visit.
type Restaurant struct {
	ID            string
	Name          string
	Location      Location
	Rating        float64 // 0-5
	VisitDate     string  // ISO 8601 date (YYYY-MM-DD)
	Review        string
	Cuisine       string
	PriceRange    string
	Photos        []string
	GooglePlaceID string
	GoogleRating  float64
	PhoneNumber   string
	Website       string
	OpeningHours  []string
	Tags          []string
}

// Clone returns a deep copy of the restaurant.
func (r Restaurant) Clone() Restaurant {
	c := r
	c.Photos = append([]string(nil), r.Photos...)
	c.OpeningHours = append([]string(nil), r.OpeningHours...)
	c.Tags = append([]string(nil), r.Tags...)
	return c
}

// CountryData is the per-country aggregate of cooked dishes. It is derived
// on demand and never stored.
type CountryData struct {
	DishCount int
	Dishes    []Dish
	FlagEmoji string
}

// EventKind tells which collection a timeline event came from.
type EventKind string

const (
	EventDish       EventKind = "dish"
	EventRestaurant EventKind = "restaurant"
)

// TimelineEvent is a dish or restaurant projected into the unified feed.
// The ID carries a "dish-"/"rest-" prefix so the two collections cannot
// collide; strip it before looking up the underlying record.
type TimelineEvent struct {
	ID       string
	Kind     EventKind
	Content  string
	Start    string // ISO 8601 date
	Country  string // dish events: country display name
	Location string // restaurant events: "City, Country"
	Rating   float64
}
