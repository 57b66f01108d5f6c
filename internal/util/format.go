package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatDate formats a date string (YYYY-MM-DD) for display.
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "Unknown"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02, 2006")
}

// FormatDateHuman formats a date with humanized relative display.
// "Today", "Yesterday", "3d ago", "Jan 15", "Jan 15 '24"
func FormatDateHuman(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "Unknown"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	diff := today.Sub(dateDay)
	days := int(diff.Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%dd ago", days)
	case t.Year() == now.Year():
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 02 '06")
	}
}

// FormatRating formats a 0-5 rating as "4.5/5".
func FormatRating(rating float64) string {
	return formatRatingNumber(rating) + "/5"
}

// FormatRatingWithStar formats a rating as "4.5 ★" for display.
func FormatRatingWithStar(rating float64) string {
	return formatRatingNumber(rating) + " ★"
}

// FormatRatingStars formats a 0-5 rating as stars (e.g., "★★★★☆"),
// rounded to the nearest whole star.
func FormatRatingStars(rating float64) string {
	stars := int(math.Round(rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	result := ""
	for i := 0; i < 5; i++ {
		if i < stars {
			result += "★"
		} else {
			result += "☆"
		}
	}
	return result
}

// TodayISO returns today's date in ISO 8601 format (YYYY-MM-DD).
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// ValidateDate validates a date string in YYYY-MM-DD format.
func ValidateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	return err
}

func formatRatingNumber(v float64) string {
	// Keep one decimal at most, but avoid trailing .0 for whole values.
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// ParseDateInput parses flexible user input and normalizes to ISO
// (YYYY-MM-DD). Empty input is allowed and returns "".
func ParseDateInput(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", nil
	}

	layouts := []string{
		"2006-01-02",
		"January 2, 2006",
		"Jan 2, 2006",
		"1/2/2006",
		"01/02/2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	return "", fmt.Errorf("invalid date format")
}

// ParseRatingInput parses a 0-5 rating from user input. Empty input
// returns 0 with ok=false.
func ParseRatingInput(input string) (float64, bool, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("rating must be a number")
	}
	if v < 0 || v > 5 {
		return 0, false, fmt.Errorf("rating must be between 0 and 5")
	}
	return v, true, nil
}

// SplitList splits comma-separated user input into trimmed, non-empty items.
func SplitList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
