package data

import (
	"sort"

	"morsel/internal/model"
)

// ID prefixes keep dish and restaurant events from colliding in the feed.
const (
	dishEventPrefix       = "dish-"
	restaurantEventPrefix = "rest-"
)

// TimelineEvents projects every restaurant and every dish into the unified
// feed, most recent first. Restaurants are projected before dishes and the
// sort is stable, so same-date events keep that order.
func (s *Store) TimelineEvents() []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, len(s.restaurants)+len(s.dishes))

	for _, r := range s.restaurants {
		events = append(events, model.TimelineEvent{
			ID:       restaurantEventPrefix + r.ID,
			Kind:     model.EventRestaurant,
			Content:  r.Name,
			Start:    r.VisitDate,
			Location: r.Location.City + ", " + r.Location.Country,
			Rating:   r.Rating,
		})
	}
	for _, d := range s.dishes {
		events = append(events, model.TimelineEvent{
			ID:      dishEventPrefix + d.ID,
			Kind:    model.EventDish,
			Content: d.Name,
			Start:   d.DateCooked,
			Country: d.CountryName,
			Rating:  d.Rating,
		})
	}

	// ISO dates order lexicographically, so string comparison is enough.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start > events[j].Start
	})
	return events
}

// SplitEventID strips the kind prefix from a timeline event ID, returning
// the kind and the underlying record's ID. ok is false for IDs that carry
// neither prefix.
func SplitEventID(id string) (kind model.EventKind, recordID string, ok bool) {
	switch {
	case len(id) > len(dishEventPrefix) && id[:len(dishEventPrefix)] == dishEventPrefix:
		return model.EventDish, id[len(dishEventPrefix):], true
	case len(id) > len(restaurantEventPrefix) && id[:len(restaurantEventPrefix)] == restaurantEventPrefix:
		return model.EventRestaurant, id[len(restaurantEventPrefix):], true
	}
	return "", "", false
}
