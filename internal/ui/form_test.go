package ui

import (
	"testing"

	"morsel/internal/data"
	"morsel/internal/model"
)

func TestNextDishID(t *testing.T) {
	store := data.NewFrom([]model.Dish{
		{ID: "us-1", Name: "Gumbo", Country: "US"},
		{ID: "us-2", Name: "Jambalaya", Country: "US"},
	}, nil)

	if got := nextDishID(store, "US"); got != "us-3" {
		t.Errorf("nextDishID(US) = %q, want us-3", got)
	}
	if got := nextDishID(store, "FR"); got != "fr-1" {
		t.Errorf("nextDishID(FR) = %q, want fr-1", got)
	}
}

func TestNextRestaurantID(t *testing.T) {
	store := data.NewFrom(nil, []model.Restaurant{
		{ID: "r1", Name: "A"},
		{ID: "r3", Name: "B"},
	})

	// r2 is free even though r3 exists.
	if got := nextRestaurantID(store); got != "r2" {
		t.Errorf("nextRestaurantID = %q, want r2", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Difficulty
		wantErr bool
	}{
		{"", model.DifficultyEasy, false},
		{"easy", model.DifficultyEasy, false},
		{"Medium", model.DifficultyMedium, false},
		{"  HARD  ", model.DifficultyHard, false},
		{"impossible", "", true},
	}
	for _, tt := range tests {
		got, err := parseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	if v, err := parseCoordinate("48.8566", 90); err != nil || v != 48.8566 {
		t.Errorf("parseCoordinate(48.8566) = %v, %v", v, err)
	}
	if v, err := parseCoordinate("", 90); err != nil || v != 0 {
		t.Errorf("parseCoordinate empty = %v, %v", v, err)
	}
	if _, err := parseCoordinate("91", 90); err == nil {
		t.Error("parseCoordinate(91) out of range should fail")
	}
	if _, err := parseCoordinate("north", 90); err == nil {
		t.Error("parseCoordinate(north) should fail")
	}
}

func TestListCursorMovement(t *testing.T) {
	var c listCursor

	c.MoveDown(3, 2)
	c.MoveDown(3, 2)
	if c.cursor != 2 {
		t.Errorf("cursor = %d, want 2", c.cursor)
	}
	if c.offset != 1 {
		t.Errorf("offset = %d, want 1 after scrolling past the window", c.offset)
	}

	c.MoveDown(3, 2)
	if c.cursor != 2 {
		t.Errorf("cursor = %d, want to stay clamped at 2", c.cursor)
	}

	c.JumpToTop()
	if c.cursor != 0 || c.offset != 0 {
		t.Errorf("JumpToTop left cursor=%d offset=%d", c.cursor, c.offset)
	}

	c.JumpToBottom(10, 4)
	if c.cursor != 9 {
		t.Errorf("JumpToBottom cursor = %d, want 9", c.cursor)
	}

	c.HalfPageUp(10, 4)
	if c.cursor != 7 {
		t.Errorf("HalfPageUp cursor = %d, want 7", c.cursor)
	}

	c.clamp(0, 4)
	if c.cursor != 0 || c.offset != 0 {
		t.Errorf("clamp on empty list left cursor=%d offset=%d", c.cursor, c.offset)
	}
}
