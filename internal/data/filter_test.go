package data_test

import (
	"reflect"
	"testing"

	"morsel/internal/data"
	"morsel/internal/model"
)

func galleryFixture() []model.Dish {
	pasta := testDish("us-1", "US", "Cajun Pasta")
	pasta.RecipeDetails = "A spicy pasta dish with shrimp"
	pasta.Tags = []string{"Pasta", "Spicy", "Seafood"}

	bread := testDish("it-1", "IT", "Garlic Bread")
	bread.RecipeDetails = "Crusty bread with garlic butter"
	bread.Tags = []string{"Bread", "Vegetarian"}

	curry := testDish("in-1", "IN", "Butter Chicken")
	curry.RecipeDetails = "Tomato-cream gravy, quite spicy"
	curry.Tags = []string{"Curry", "Spicy"}

	return []model.Dish{pasta, bread, curry}
}

func ids(dishes []model.Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.ID)
	}
	return out
}

func TestFilterUnsetCriteriaReturnAll(t *testing.T) {
	all := galleryFixture()
	got := data.FilterDishes(all, "", "", nil)
	if !reflect.DeepEqual(ids(got), ids(all)) {
		t.Errorf("unset filters changed the list: %v", ids(got))
	}
}

func TestFilterQueryMatchesNameDetailsAndTags(t *testing.T) {
	all := galleryFixture()

	cases := []struct {
		query string
		want  []string
	}{
		{"pasta", []string{"us-1"}},           // name and tag
		{"GARLIC", []string{"it-1"}},          // case-insensitive, details
		{"spicy", []string{"us-1", "in-1"}},   // details on one, tag on other
		{"vegetarian", []string{"it-1"}},      // tag only
		{"nothing-matches", []string{}},
	}
	for _, tc := range cases {
		got := ids(data.FilterDishes(all, tc.query, "", nil))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("query %q: got %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestFilterCountry(t *testing.T) {
	all := galleryFixture()
	got := ids(data.FilterDishes(all, "", "IT", nil))
	if !reflect.DeepEqual(got, []string{"it-1"}) {
		t.Errorf("got %v", got)
	}
}

func TestFilterTagsRequireAll(t *testing.T) {
	all := galleryFixture()

	got := ids(data.FilterDishes(all, "", "", []string{"Spicy"}))
	if !reflect.DeepEqual(got, []string{"us-1", "in-1"}) {
		t.Errorf("single tag: got %v", got)
	}

	got = ids(data.FilterDishes(all, "", "", []string{"Spicy", "Seafood"}))
	if !reflect.DeepEqual(got, []string{"us-1"}) {
		t.Errorf("two tags: got %v", got)
	}
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	all := galleryFixture()
	got := ids(data.FilterDishes(all, "spicy", "IN", []string{"Curry"}))
	if !reflect.DeepEqual(got, []string{"in-1"}) {
		t.Errorf("got %v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	all := galleryFixture()
	once := data.FilterDishes(all, "spicy", "", []string{"Spicy"})
	twice := data.FilterDishes(once, "spicy", "", []string{"Spicy"})
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterOrderCommutes(t *testing.T) {
	all := galleryFixture()
	countryFirst := data.FilterDishes(data.FilterDishes(all, "", "IN", nil), "", "", []string{"Spicy"})
	tagFirst := data.FilterDishes(data.FilterDishes(all, "", "", []string{"Spicy"}), "", "IN", nil)
	if !reflect.DeepEqual(ids(countryFirst), ids(tagFirst)) {
		t.Errorf("filters do not commute: %v vs %v", ids(countryFirst), ids(tagFirst))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	all := galleryFixture()
	got := ids(data.FilterDishes(all, "", "", []string{"Spicy"}))
	// us-1 was added before in-1 and must stay first.
	if !reflect.DeepEqual(got, []string{"us-1", "in-1"}) {
		t.Errorf("order changed: %v", got)
	}
}
