package data_test

import (
	"reflect"
	"testing"

	"morsel/internal/data"
	"morsel/internal/model"
)

func testDish(id, country, name string) model.Dish {
	return model.Dish{
		ID:            id,
		Name:          name,
		Country:       country,
		CountryName:   data.CountryName(country),
		DateCooked:    "2024-05-01",
		Rating:        4.0,
		Difficulty:    model.DifficultyEasy,
		RecipeDetails: "test dish",
		Ingredients:   []string{"salt", "pepper"},
		Tags:          []string{"Test"},
	}
}

func testRestaurant(id, city, country string) model.Restaurant {
	return model.Restaurant{
		ID:   id,
		Name: "Place " + id,
		Location: model.Location{
			Lat:     1.0,
			Lng:     2.0,
			Address: "1 Test St",
			City:    city,
			Country: country,
		},
		Rating:    3.5,
		VisitDate: "2024-05-02",
		Cuisine:   "Test",
	}
}

func TestDishRoundTrip(t *testing.T) {
	s := data.New()
	for _, d := range s.Dishes() {
		got, ok := s.DishByID(d.ID)
		if !ok {
			t.Fatalf("DishByID(%q) not found", d.ID)
		}
		if !reflect.DeepEqual(got, d) {
			t.Errorf("DishByID(%q) differs from Dishes() record", d.ID)
		}
	}
}

func TestRestaurantRoundTrip(t *testing.T) {
	s := data.New()
	for _, r := range s.Restaurants() {
		got, ok := s.RestaurantByID(r.ID)
		if !ok {
			t.Fatalf("RestaurantByID(%q) not found", r.ID)
		}
		if !reflect.DeepEqual(got, r) {
			t.Errorf("RestaurantByID(%q) differs from Restaurants() record", r.ID)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	s := data.New()
	if _, ok := s.DishByID("does-not-exist"); ok {
		t.Error("expected dish lookup miss")
	}
	if _, ok := s.RestaurantByID("does-not-exist"); ok {
		t.Error("expected restaurant lookup miss")
	}
}

func TestCountriesDataCounts(t *testing.T) {
	s := data.NewFrom([]model.Dish{
		testDish("us-1", "US", "Burger"),
		testDish("it-1", "IT", "Carbonara"),
	}, nil)

	countries := s.CountriesData()
	if len(countries) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(countries))
	}
	for _, code := range []string{"US", "IT"} {
		c, ok := countries[code]
		if !ok {
			t.Fatalf("missing country %s", code)
		}
		if c.DishCount != 1 || len(c.Dishes) != 1 {
			t.Errorf("%s: count %d, dishes %d, want 1/1", code, c.DishCount, len(c.Dishes))
		}
	}
}

func TestCountriesDataConsistentWithCollection(t *testing.T) {
	s := data.New()
	countries := s.CountriesData()

	total := 0
	for code, c := range countries {
		if c.DishCount != len(c.Dishes) {
			t.Errorf("%s: DishCount=%d but %d dishes", code, c.DishCount, len(c.Dishes))
		}
		if c.FlagEmoji != data.FlagEmoji(code) {
			t.Errorf("%s: unexpected flag %q", code, c.FlagEmoji)
		}
		total += c.DishCount
	}
	if got := len(s.Dishes()); total != got {
		t.Errorf("dish counts sum to %d, collection has %d", total, got)
	}
}

func TestAddDishThenObserve(t *testing.T) {
	s := data.New()
	if err := s.AddDish(testDish("new-1", "FR", "Crêpes")); err != nil {
		t.Fatalf("AddDish: %v", err)
	}

	got, ok := s.DishByID("new-1")
	if !ok {
		t.Fatal("appended dish not found")
	}
	if got.Name != "Crêpes" {
		t.Errorf("got name %q", got.Name)
	}

	c, ok := s.CountriesData()["FR"]
	if !ok {
		t.Fatal("FR missing from countries data after append")
	}
	if c.DishCount != 1 {
		t.Errorf("FR dish count %d, want 1", c.DishCount)
	}
}

func TestAddRestaurantThenObserve(t *testing.T) {
	s := data.New()
	if err := s.AddRestaurant(testRestaurant("r99", "Lisbon", "Portugal")); err != nil {
		t.Fatalf("AddRestaurant: %v", err)
	}
	if _, ok := s.RestaurantByID("r99"); !ok {
		t.Fatal("appended restaurant not found")
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s := data.NewFrom([]model.Dish{testDish("us-1", "US", "Burger")},
		[]model.Restaurant{testRestaurant("r1", "Austin", "United States")})

	if err := s.AddDish(testDish("us-1", "US", "Other")); err == nil {
		t.Error("expected duplicate dish ID to be rejected")
	}
	if err := s.AddRestaurant(testRestaurant("r1", "Austin", "United States")); err == nil {
		t.Error("expected duplicate restaurant ID to be rejected")
	}
	if len(s.Dishes()) != 1 || len(s.Restaurants()) != 1 {
		t.Error("rejected append must not grow the collection")
	}
}

func TestAddValidation(t *testing.T) {
	s := data.NewFrom(nil, nil)

	cases := []struct {
		name string
		dish model.Dish
	}{
		{"missing id", model.Dish{Name: "x", Country: "US", Rating: 3}},
		{"missing name", model.Dish{ID: "x-1", Country: "US", Rating: 3}},
		{"lowercase country", func() model.Dish { d := testDish("x-1", "US", "x"); d.Country = "us"; return d }()},
		{"three letter country", func() model.Dish { d := testDish("x-2", "US", "x"); d.Country = "USA"; return d }()},
		{"rating too high", func() model.Dish { d := testDish("x-3", "US", "x"); d.Rating = 5.5; return d }()},
		{"rating negative", func() model.Dish { d := testDish("x-4", "US", "x"); d.Rating = -1; return d }()},
	}
	for _, tc := range cases {
		if err := s.AddDish(tc.dish); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	bad := testRestaurant("r1", "Austin", "United States")
	bad.Rating = 9
	if err := s.AddRestaurant(bad); err == nil {
		t.Error("expected restaurant rating validation error")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := data.NewFrom([]model.Dish{testDish("us-1", "US", "Burger")}, nil)

	dishes := s.Dishes()
	dishes[0].Name = "mutated"
	dishes[0].Ingredients[0] = "mutated"

	got, _ := s.DishByID("us-1")
	if got.Name != "Burger" {
		t.Error("mutating the returned slice reached the store")
	}
	if got.Ingredients[0] != "salt" {
		t.Error("mutating a nested slice reached the store")
	}

	// Derived views must not alias the backing records either.
	c := s.CountriesData()["US"]
	c.Dishes[0].Tags[0] = "mutated"
	got, _ = s.DishByID("us-1")
	if got.Tags[0] != "Test" {
		t.Error("mutating a derived view reached the store")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := data.NewFrom(nil, nil)
	ids := []string{"a-1", "b-1", "c-1"}
	for _, id := range ids {
		if err := s.AddDish(testDish(id, "US", id)); err != nil {
			t.Fatalf("AddDish(%s): %v", id, err)
		}
	}
	for i, d := range s.Dishes() {
		if d.ID != ids[i] {
			t.Fatalf("position %d: got %s, want %s", i, d.ID, ids[i])
		}
	}
}
