package data_test

import (
	"strings"
	"testing"

	"morsel/internal/data"
	"morsel/internal/model"
)

func TestTimelineSortedDescending(t *testing.T) {
	s := data.New()
	events := s.TimelineEvents()
	for i := 1; i < len(events); i++ {
		if events[i-1].Start < events[i].Start {
			t.Fatalf("events out of order at %d: %s < %s", i, events[i-1].Start, events[i].Start)
		}
	}
}

func TestTimelineCoversBothCollections(t *testing.T) {
	s := data.New()
	events := s.TimelineEvents()

	wantLen := len(s.Dishes()) + len(s.Restaurants())
	if len(events) != wantLen {
		t.Fatalf("got %d events, want %d", len(events), wantLen)
	}

	for _, e := range events {
		kind, id, ok := data.SplitEventID(e.ID)
		if !ok {
			t.Fatalf("event ID %q has no known prefix", e.ID)
		}
		if kind != e.Kind {
			t.Errorf("event %q: prefix kind %s but Kind field %s", e.ID, kind, e.Kind)
		}
		switch kind {
		case model.EventDish:
			if _, found := s.DishByID(id); !found {
				t.Errorf("event %q does not map back to a dish", e.ID)
			}
		case model.EventRestaurant:
			if _, found := s.RestaurantByID(id); !found {
				t.Errorf("event %q does not map back to a restaurant", e.ID)
			}
		}
	}
}

func TestTimelineProjection(t *testing.T) {
	dish := testDish("jp-9", "JP", "Ramen")
	dish.DateCooked = "2024-01-10"
	rest := testRestaurant("r9", "Osaka", "Japan")
	rest.VisitDate = "2024-01-20"

	s := data.NewFrom([]model.Dish{dish}, []model.Restaurant{rest})
	events := s.TimelineEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}

	if events[0].Kind != model.EventRestaurant || events[0].Start != "2024-01-20" {
		t.Errorf("newest event wrong: %+v", events[0])
	}
	if events[0].Location != "Osaka, Japan" {
		t.Errorf("restaurant location %q", events[0].Location)
	}
	if events[1].Country != "Japan" {
		t.Errorf("dish country %q", events[1].Country)
	}
}

// Same-date events keep concatenation order: restaurants before dishes.
func TestTimelineTieBreak(t *testing.T) {
	dish := testDish("us-9", "US", "Chili")
	dish.DateCooked = "2024-03-03"
	rest := testRestaurant("r9", "Austin", "United States")
	rest.VisitDate = "2024-03-03"

	s := data.NewFrom([]model.Dish{dish}, []model.Restaurant{rest})
	events := s.TimelineEvents()
	if events[0].Kind != model.EventRestaurant || events[1].Kind != model.EventDish {
		t.Errorf("tie-break order changed: %s then %s", events[0].Kind, events[1].Kind)
	}
}

func TestSplitEventID(t *testing.T) {
	cases := []struct {
		in     string
		kind   model.EventKind
		id     string
		wantOK bool
	}{
		{"dish-us-1", model.EventDish, "us-1", true},
		{"rest-r1", model.EventRestaurant, "r1", true},
		{"dish-", "", "", false},
		{"x-us-1", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		kind, id, ok := data.SplitEventID(tc.in)
		if ok != tc.wantOK || kind != tc.kind || id != tc.id {
			t.Errorf("SplitEventID(%q) = %v %q %v", tc.in, kind, id, ok)
		}
	}
}

func TestTimelineIDPrefixes(t *testing.T) {
	s := data.New()
	for _, e := range s.TimelineEvents() {
		if !strings.HasPrefix(e.ID, "dish-") && !strings.HasPrefix(e.ID, "rest-") {
			t.Errorf("event ID %q missing kind prefix", e.ID)
		}
	}
}
