package scrape

import (
	"net/url"
	"strings"
	"time"

	"eventscrape/internal/browser"
	"eventscrape/internal/event"
)

func isByuCSURL(u *url.URL) bool {
	return strings.HasPrefix(u.String(), "https://cs.byu.edu/events")
}

// campusVenue treats the matched text as the venue name and appends the
// campus suffix to form the address, the department-page convention.
func campusVenue(campus string) venueFunc {
	return func(_ Page, text string) (string, string) {
		return text, text + ", " + campus
	}
}

var byuCSSite = &site{
	name:       "BYU CS Department",
	baseOrigin: "https://cs.byu.edu",
	eventsRoot: "https://cs.byu.edu/events",
	linkOK: func(abs string) bool {
		return strings.Contains(abs, "/events/")
	},
	waitTimeout: 10 * time.Second,
	waitSel:     []string{`.event-item, .event-card, .event`},
	linkSel: []string{
		`.event-item a`,
		`.event-card a`,
		`.event a`,
		`a[href*="/events/"]`,
		`.upcoming-events a`,
	},
	titleSel: []string{
		`h1.event-title`,
		`h1`,
		`.event-header h1`,
		`.page-title`,
	},
	descSel: []string{
		`.event-description`,
		`.event-content`,
		`.content`,
		`main p`,
		`.event-details`,
	},
	timeSel: []string{
		`.event-date`,
		`.event-time`,
		`.date-time`,
		`time[datetime]`,
		`.event-meta .date`,
	},
	locationSel: []string{
		`.event-location`,
		`.location`,
		`.venue`,
		`.event-meta .location`,
	},
	imageSel: []string{
		`.event-image img`,
		`.hero-image img`,
		`main img`,
	},
	timePatterns:     monthDayPatterns,
	venue:            campusVenue("Brigham Young University, Provo, UT"),
	defaultVenueName: "BYU Computer Science Department",
	defaultVenueAddr: "Brigham Young University, Provo, UT 84602",
}

func scrapeByuCS(b *browser.Browser, rawURL string, max int) ([]event.Event, error) {
	return scrapeSite(b, byuCSSite, rawURL, max)
}
