package data_test

import (
	"testing"

	"morsel/internal/data"
)

func TestFlagEmoji(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"US", "\U0001F1FA\U0001F1F8"},
		{"IT", "\U0001F1EE\U0001F1F9"},
		{"jp", "\U0001F1EF\U0001F1F5"}, // lowercase accepted
		{"", ""},
		{"U", ""},
		{"USA", ""},
		{"1T", ""},
		{"É", ""},
	}
	for _, tc := range cases {
		if got := data.FlagEmoji(tc.code); got != tc.want {
			t.Errorf("FlagEmoji(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestCountryName(t *testing.T) {
	if got := data.CountryName("IT"); got != "Italy" {
		t.Errorf("got %q", got)
	}
	if got := data.CountryName("it"); got != "Italy" {
		t.Errorf("lowercase lookup: got %q", got)
	}
	// Unknown codes fall back to the raw input.
	if got := data.CountryName("ZZ"); got != "ZZ" {
		t.Errorf("fallback: got %q", got)
	}
}
