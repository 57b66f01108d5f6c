package ui

import (
	"fmt"
	"strings"

	"morsel/internal/data"
	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// RestaurantDetailModel represents the restaurant detail screen.
type RestaurantDetailModel struct {
	restaurant model.Restaurant

	// Filled in when the place-details lookup resolves.
	placeLoaded  bool
	googleRating float64
	phoneNumber  string
	website      string
	openingHours []string
}

// NewRestaurantDetailModel creates a new restaurant detail model.
func NewRestaurantDetailModel(r model.Restaurant) *RestaurantDetailModel {
	m := &RestaurantDetailModel{restaurant: r}
	// The record itself may already carry Google data.
	if r.GoogleRating > 0 || r.PhoneNumber != "" || r.Website != "" || len(r.OpeningHours) > 0 {
		m.placeLoaded = true
		m.googleRating = r.GoogleRating
		m.phoneNumber = r.PhoneNumber
		m.website = r.Website
		m.openingHours = r.OpeningHours
	}
	return m
}

// ApplyPlaceDetails merges a resolved place-details payload into the view.
func (m *RestaurantDetailModel) ApplyPlaceDetails(msg model.PlaceDetailsLoadedMsg) {
	m.placeLoaded = true
	m.googleRating = msg.GoogleRating
	m.phoneNumber = msg.PhoneNumber
	m.website = msg.Website
	m.openingHours = msg.OpeningHours
}

// PlaceID returns the restaurant's external place identifier, if any.
func (m *RestaurantDetailModel) PlaceID() string {
	return m.restaurant.GooglePlaceID
}

// ID returns the restaurant's identifier.
func (m *RestaurantDetailModel) ID() string {
	return m.restaurant.ID
}

// View renders the restaurant detail.
func (m *RestaurantDetailModel) View(width, height int) string {
	r := m.restaurant

	shortcuts := HelpDescStyle.Render("p place details  h back")
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(shortcuts)

	var sections []string

	var fields []string
	fields = append(fields, renderField("Name", r.Name))
	fields = append(fields, renderField("Cuisine", r.Cuisine))
	fields = append(fields, renderField("Price Range", r.PriceRange))
	fields = append(fields, renderField("Visited", util.FormatDate(r.VisitDate)))
	fields = append(fields, renderField("Rating", util.FormatRatingStars(r.Rating)+"  "+util.FormatRating(r.Rating)))
	if len(r.Tags) > 0 {
		fields = append(fields, renderField("Tags", strings.Join(r.Tags, ", ")))
	}
	sections = append(sections, strings.Join(fields, "\n"))

	var loc []string
	loc = append(loc, renderField("Address", r.Location.Address))
	loc = append(loc, renderField("City", fmt.Sprintf("%s, %s", r.Location.City, r.Location.Country)))
	loc = append(loc, renderField("Coordinates", fmt.Sprintf("%.4f, %.4f", r.Location.Lat, r.Location.Lng)))
	mapsURL := r.Location.GoogleMapsURL
	if mapsURL == "" {
		mapsURL = data.GoogleMapsURL(r.Location.Address)
	}
	loc = append(loc, LabelStyle.Render("Map:")+" "+LinkStyle.Render(mapsURL))
	sections = append(sections, strings.Join(loc, "\n"))

	if r.Review != "" {
		sections = append(sections, LabelStyle.Render("Review:")+"\n"+
			NormalRowStyle.Width(width-12).Render(r.Review))
	}

	if m.placeLoaded {
		var place []string
		if m.googleRating > 0 {
			place = append(place, renderField("Google Rating", util.FormatRatingWithStar(m.googleRating)))
		}
		place = append(place, renderField("Phone", m.phoneNumber))
		place = append(place, renderField("Website", m.website))
		if len(m.openingHours) > 0 {
			place = append(place, LabelStyle.Render("Hours:")+"\n  "+
				NormalRowStyle.Render(strings.Join(m.openingHours, "\n  ")))
		}
		sections = append(sections, LabelStyle.Render("Place Details:")+"\n"+strings.Join(place, "\n"))
	} else if r.GooglePlaceID != "" {
		sections = append(sections, HelpDescStyle.Render("Press 'p' to load place details"))
	}

	if len(r.Photos) > 0 {
		sections = append(sections, HelpDescStyle.Render(fmt.Sprintf("%d photos", len(r.Photos))))
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}
