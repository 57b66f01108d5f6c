package data

import "strings"

// Offset from 'A' to the Unicode regional indicator block (U+1F1E6).
const regionalIndicatorOffset = 127397

// FlagEmoji derives the flag emoji for a 2-letter country code by shifting
// each letter into the regional indicator block. Lowercase input is
// accepted. Anything that is not exactly two ASCII letters yields "".
func FlagEmoji(code string) string {
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(regionalIndicatorOffset + c)
	}
	return b.String()
}

// countryNames maps the codes used by the journal to display names. Seeded
// and appended dishes carry their own CountryName, so this table only backs
// places where just a code is available.
var countryNames = map[string]string{
	"BR": "Brazil",
	"CN": "China",
	"DE": "Germany",
	"ES": "Spain",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"IN": "India",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"LB": "Lebanon",
	"MA": "Morocco",
	"MX": "Mexico",
	"PE": "Peru",
	"TH": "Thailand",
	"TR": "Turkey",
	"US": "United States",
	"VN": "Vietnam",
}

// CountryName returns the display name for a country code, falling back to
// the raw code when the table has no entry.
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}
