package data_test

import (
	"testing"

	"morsel/internal/data"
)

func TestGoogleSearchURL(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"pizza margherita", "https://www.google.com/search?q=pizza%20margherita"},
		{"fish & chips", "https://www.google.com/search?q=fish%20%26%20chips"},
		{"pho", "https://www.google.com/search?q=pho"},
	}
	for _, tc := range cases {
		if got := data.GoogleSearchURL(tc.query); got != tc.want {
			t.Errorf("GoogleSearchURL(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestGoogleMapsURL(t *testing.T) {
	got := data.GoogleMapsURL("123 Rue de Paris, Paris, France")
	want := "https://www.google.com/maps/search/?api=1&query=123%20Rue%20de%20Paris%2C%20Paris%2C%20France"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
