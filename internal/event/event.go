// Package event defines the output record produced by a scrape.
package event

import "time"

// Event is one extracted event. Title is always present on a returned
// Event; Time, when present, is an absolute instant. Venue and image
// fields are best-effort.
type Event struct {
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Time         *time.Time `json:"time,omitempty"`
	VenueName    string     `json:"venue_name,omitempty"`
	VenueAddress string     `json:"venue_address,omitempty"`
	VenueURL     string     `json:"venue_url,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
}
