package data

import (
	"net/url"
	"strings"
)

// GoogleMapsURL builds a Google Maps search link for an address.
func GoogleMapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + encodeQuery(address)
}

// GoogleSearchURL builds a Google web search link for a query.
func GoogleSearchURL(query string) string {
	return "https://www.google.com/search?q=" + encodeQuery(query)
}

// encodeQuery percent-encodes a query component, using %20 for spaces
// rather than the form-encoding plus sign.
func encodeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
