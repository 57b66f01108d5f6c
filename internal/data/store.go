// Package data owns the journal's two backing collections and answers every
// read query and derived-view request over them. The collections are
// append-only: records are authored in seed.go or appended at runtime, never
// mutated in place and never deleted. Derived views (country aggregates, the
// unified timeline) are recomputed on every call; at tens of entries that is
// cheaper than keeping caches honest.
package data

import (
	"fmt"
	"regexp"

	"morsel/internal/model"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// Store holds the dish and restaurant collections. It is constructed once at
// startup and passed by reference to every consumer; nothing else holds a
// mutable handle on the backing slices.
type Store struct {
	dishes      []model.Dish
	restaurants []model.Restaurant
}

// New returns a store seeded with the journal's built-in entries.
func New() *Store {
	return NewFrom(seedDishes, seedRestaurants)
}

// NewFrom returns a store holding copies of the given records.
func NewFrom(dishes []model.Dish, restaurants []model.Restaurant) *Store {
	s := &Store{
		dishes:      make([]model.Dish, 0, len(dishes)),
		restaurants: make([]model.Restaurant, 0, len(restaurants)),
	}
	for _, d := range dishes {
		s.dishes = append(s.dishes, d.Clone())
	}
	for _, r := range restaurants {
		s.restaurants = append(s.restaurants, r.Clone())
	}
	return s
}

// Dishes returns all dishes in insertion order. The returned records are
// deep copies; mutating them does not touch the store.
func (s *Store) Dishes() []model.Dish {
	out := make([]model.Dish, 0, len(s.dishes))
	for _, d := range s.dishes {
		out = append(out, d.Clone())
	}
	return out
}

// DishByID returns the dish with the given ID, or false if none matches.
// Lookup is a linear scan; the collection stays small by design.
func (s *Store) DishByID(id string) (model.Dish, bool) {
	for _, d := range s.dishes {
		if d.ID == id {
			return d.Clone(), true
		}
	}
	return model.Dish{}, false
}

// Restaurants returns all restaurants in insertion order, as deep copies.
func (s *Store) Restaurants() []model.Restaurant {
	out := make([]model.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r.Clone())
	}
	return out
}

// RestaurantByID returns the restaurant with the given ID, or false if none
// matches.
func (s *Store) RestaurantByID(id string) (model.Restaurant, bool) {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return model.Restaurant{}, false
}

// CountriesData groups the live dish collection by country code. The map is
// rebuilt on every call, so it is always consistent with the collection.
// Dish lists keep the order dishes were added in.
func (s *Store) CountriesData() map[string]model.CountryData {
	countries := make(map[string]model.CountryData)
	for _, d := range s.dishes {
		c, ok := countries[d.Country]
		if !ok {
			c = model.CountryData{FlagEmoji: FlagEmoji(d.Country)}
		}
		c.Dishes = append(c.Dishes, d.Clone())
		c.DishCount = len(c.Dishes)
		countries[d.Country] = c
	}
	return countries
}

// AddDish appends a dish to the collection. The ID must be unique and the
// record must pass entry validation.
func (s *Store) AddDish(d model.Dish) error {
	if err := validateDish(d); err != nil {
		return err
	}
	for _, existing := range s.dishes {
		if existing.ID == d.ID {
			return fmt.Errorf("dish %q already exists", d.ID)
		}
	}
	s.dishes = append(s.dishes, d.Clone())
	return nil
}

// AddRestaurant appends a restaurant to the collection. The ID must be
// unique and the record must pass entry validation.
func (s *Store) AddRestaurant(r model.Restaurant) error {
	if err := validateRestaurant(r); err != nil {
		return err
	}
	for _, existing := range s.restaurants {
		if existing.ID == r.ID {
			return fmt.Errorf("restaurant %q already exists", r.ID)
		}
	}
	s.restaurants = append(s.restaurants, r.Clone())
	return nil
}

func validateDish(d model.Dish) error {
	if d.ID == "" {
		return fmt.Errorf("dish id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("dish name is required")
	}
	if !countryCodeRe.MatchString(d.Country) {
		return fmt.Errorf("country code %q must be two uppercase letters", d.Country)
	}
	if d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("rating %.1f out of range 0-5", d.Rating)
	}
	return nil
}

func validateRestaurant(r model.Restaurant) error {
	if r.ID == "" {
		return fmt.Errorf("restaurant id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("rating %.1f out of range 0-5", r.Rating)
	}
	return nil
}
