package util

import (
	"reflect"
	"testing"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-15"); got != "Mar 15, 2024" {
		t.Errorf("got %q", got)
	}
	if got := FormatDate(""); got != "Unknown" {
		t.Errorf("empty: got %q", got)
	}
	// Unparseable input passes through untouched.
	if got := FormatDate("soonish"); got != "soonish" {
		t.Errorf("passthrough: got %q", got)
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(4.5); got != "4.5/5" {
		t.Errorf("got %q", got)
	}
	if got := FormatRating(4.0); got != "4/5" {
		t.Errorf("whole value: got %q", got)
	}
	if got := FormatRatingWithStar(3.5); got != "3.5 ★" {
		t.Errorf("got %q", got)
	}
}

func TestFormatRatingStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{5, "★★★★★"},
		{4.4, "★★★★☆"},
		{4.5, "★★★★★"},
		{0, "☆☆☆☆☆"},
		{2.1, "★★☆☆☆"},
	}
	for _, tc := range cases {
		if got := FormatRatingStars(tc.rating); got != tc.want {
			t.Errorf("FormatRatingStars(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestParseDateInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-15", "2024-03-15"},
		{"March 15, 2024", "2024-03-15"},
		{"Mar 15, 2024", "2024-03-15"},
		{"3/15/2024", "2024-03-15"},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := ParseDateInput(tc.in)
		if err != nil {
			t.Errorf("ParseDateInput(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDateInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDateInput("not a date"); err == nil {
		t.Error("expected error for junk input")
	}
}

func TestParseRatingInput(t *testing.T) {
	v, ok, err := ParseRatingInput("4.5")
	if err != nil || !ok || v != 4.5 {
		t.Errorf("got %v %v %v", v, ok, err)
	}
	if _, ok, err := ParseRatingInput(""); ok || err != nil {
		t.Error("empty input should be ok=false, no error")
	}
	if _, _, err := ParseRatingInput("11"); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, _, err := ParseRatingInput("great"); err == nil {
		t.Error("expected parse error")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Pasta, Spicy ,,Seafood ")
	want := []string{"Pasta", "Spicy", "Seafood"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v", got)
	}
	if SplitList("   ") != nil {
		t.Error("blank input should return nil")
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := TruncateString("a longer string", 9); got != "a long..." {
		t.Errorf("got %q", got)
	}
	if got := TruncateString("héllo wörld", 8); got != "héllo..." {
		t.Errorf("unicode: got %q", got)
	}
}
