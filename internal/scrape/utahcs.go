package scrape

import (
	"net/url"
	"strings"
	"time"

	"eventscrape/internal/browser"
	"eventscrape/internal/event"
)

func isUtahCSURL(u *url.URL) bool {
	return strings.HasPrefix(u.String(), "https://www.cs.utah.edu/events")
}

// The Utah CS listing mixes event and news items; both detail shapes carry
// the same fields.
var utahCSSite = &site{
	name:       "University of Utah CS",
	baseOrigin: "https://www.cs.utah.edu",
	eventsRoot: "https://www.cs.utah.edu/events",
	linkOK: func(abs string) bool {
		return strings.Contains(abs, "/events/") || strings.Contains(abs, "/news/")
	},
	waitTimeout: 10 * time.Second,
	waitSel:     []string{`.event-item, .event-card, .event, .news-item`},
	linkSel: []string{
		`.event-item a`,
		`.event-card a`,
		`.event a`,
		`a[href*="/events/"]`,
		`.upcoming-events a`,
		`.news-item a`,
		`.calendar-event a`,
	},
	titleSel: []string{
		`h1.event-title`,
		`h1`,
		`.event-header h1`,
		`.page-title`,
		`.news-title`,
		`article h1`,
	},
	descSel: []string{
		`.event-description`,
		`.event-content`,
		`.content`,
		`main p`,
		`.event-details`,
		`article .content`,
		`.news-content`,
	},
	timeSel: []string{
		`.event-date`,
		`.event-time`,
		`.date-time`,
		`time[datetime]`,
		`.event-meta .date`,
		`.news-date`,
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
		`article img`,
	},
	timePatterns:     monthDayPatterns,
	venue:            campusVenue("University of Utah, Salt Lake City, UT"),
	defaultVenueName: "University of Utah Computer Science Department",
	defaultVenueAddr: "University of Utah, Salt Lake City, UT 84112",
}

func scrapeUtahCS(b *browser.Browser, rawURL string, max int) ([]event.Event, error) {
	return scrapeSite(b, utahCSSite, rawURL, max)
}
