package places

import (
	"context"
	"reflect"
	"testing"
)

// The stub's whole contract: any ID, always succeeds, always the same data.
func TestDetailsStub(t *testing.T) {
	c := NewClient("")
	ctx := context.Background()

	first, err := c.Details(ctx, "ChIJR3122p9v5kcRRIUyZYQRmX8")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	second, err := c.Details(ctx, "")
	if err != nil {
		t.Fatalf("Details with empty ID: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("stub returned different payloads for different IDs")
	}
	if first.GoogleRating != 4.5 || len(first.OpeningHours) != 2 {
		t.Errorf("unexpected canned payload: %+v", first)
	}
}
