package data

import (
	"strings"

	"morsel/internal/model"
)

// FilterDishes applies the gallery's three filter criteria to a dish list.
// A dish passes when all set criteria match:
//
//   - query (case-insensitive) is a substring of the name, the recipe
//     details, or any tag
//   - the dish's country equals country
//   - every tag in tags is present on the dish
//
// Unset criteria (empty query/country, no tags) always pass. The result
// preserves the input order; no re-sorting.
func FilterDishes(dishes []model.Dish, query, country string, tags []string) []model.Dish {
	result := make([]model.Dish, 0, len(dishes))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, d := range dishes {
		if q != "" && !matchesQuery(d, q) {
			continue
		}
		if country != "" && d.Country != country {
			continue
		}
		if !hasAllTags(d, tags) {
			continue
		}
		result = append(result, d)
	}
	return result
}

func matchesQuery(d model.Dish, q string) bool {
	if strings.Contains(strings.ToLower(d.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(d.RecipeDetails), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func hasAllTags(d model.Dish, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, tag := range d.Tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
