package scrape

import (
	"net/url"
	"regexp"
	"time"

	"eventscrape/internal/browser"
	"eventscrape/internal/event"
)

var meetupHost = regexp.MustCompile(`(?i)^(.*\.)?meetup\.com$`)

func isMeetupURL(u *url.URL) bool {
	return meetupHost.MatchString(u.Hostname())
}

var meetupSite = &site{
	name:        "Meetup.com",
	baseOrigin:  "https://www.meetup.com",
	eventsRoot:  "https://www.meetup.com",
	waitTimeout: 10 * time.Second,
	waitSel: []string{
		`[data-testid="event-card"]`,
		`.eventCard`,
	},
	linkSel: []string{
		`[data-testid="event-card"] a[href*="/events/"]`,
		`.eventCard a[href*="/events/"]`,
		`a[href*="/events/"]`,
	},
	titleSel: []string{
		`h1[data-testid="event-title"]`,
		`h1`,
	},
	descSel: []string{
		`[data-testid="event-description"]`,
		`#event-details`,
		`.event-description`,
	},
	timeSel: []string{
		`time[datetime]`,
		`[data-testid="event-date-time"]`,
		`.event-time`,
	},
	locationSel: []string{
		`[data-testid="event-location"]`,
		`[data-testid="venue-name"]`,
		`.venue-info`,
	},
	imageSel: []string{
		`[data-testid="event-image"] img`,
		`picture img`,
	},
	timePatterns:     weekdayPatterns,
	venue:            splitVenue,
	defaultVenueName: "Meetup.com",
}

func scrapeMeetup(b *browser.Browser, rawURL string, max int) ([]event.Event, error) {
	return scrapeSite(b, meetupSite, rawURL, max)
}
