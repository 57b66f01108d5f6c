// Package places is the journal's Google Places integration point. Today it
// is a deliberate stub: Details accepts any place ID, never fails, and
// always resolves to the same canned payload without touching the network.
// Consumers are written against the real call shape so the canned data can
// be swapped for live lookups later.
package places

import "context"

// Details is the subset of a Google Places result the journal displays.
type Details struct {
	GoogleRating float64
	PhoneNumber  string
	Website      string
	OpeningHours []string
}

// Client resolves place details. The API key is carried but unused until
// the live lookup lands; see Details.
type Client struct {
	apiKey string
}

// NewClient creates a places client.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// Details returns the canned payload for any place ID.
// TODO: call the real Places API once an API key and billing are set up.
func (c *Client) Details(ctx context.Context, placeID string) (Details, error) {
	_ = placeID
	return Details{
		GoogleRating: 4.5,
		PhoneNumber:  "+1 234 567 890",
		Website:      "https://example.com",
		OpeningHours: []string{
			"Monday: 9:00 AM - 10:00 PM",
			"Tuesday: 9:00 AM - 10:00 PM",
		},
	}, nil
}
