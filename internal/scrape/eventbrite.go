package scrape

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"eventscrape/internal/browser"
	"eventscrape/internal/event"
)

var eventbriteHost = regexp.MustCompile(`(?i)^(.*\.)?eventbrite\.(com|ca|co\.uk)$`)

func isEventbriteURL(u *url.URL) bool {
	return eventbriteHost.MatchString(u.Hostname())
}

// splitVenue separates a multi-line location block into venue name and
// address: first line is the name, the rest joined is the address. A
// single line is an address only.
func splitVenue(_ Page, text string) (string, string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) >= 2 {
		return lines[0], strings.Join(lines[1:], " ")
	}
	return "", strings.TrimSpace(text)
}

var eventbriteSite = &site{
	name:        "Eventbrite",
	baseOrigin:  "https://www.eventbrite.com",
	eventsRoot:  "https://www.eventbrite.com",
	waitTimeout: 10 * time.Second,
	waitSel: []string{
		`[data-testid="organizer-profile-events"]`,
		`.event-card`,
	},
	linkSel: []string{
		`[data-testid="organizer-profile-events"] a[href*="/e/"]`,
		`.event-card a[href*="/e/"]`,
		`a[href*="/e/"][href*="eventbrite"]`,
	},
	titleSel: []string{
		`[data-testid="event-title"]`,
		`h1.event-title`,
		`h1[data-automation="event-title"]`,
		`.event-details h1`,
	},
	descSel: []string{
		`[data-testid="event-description"]`,
		`.event-description`,
		`.event-details .description`,
	},
	timeSel: []string{
		`[data-testid="event-datetime"]`,
		`.event-date-time`,
		`.event-details time[datetime]`,
	},
	locationSel: []string{
		`[data-testid="event-location"]`,
		`.event-location`,
		`.venue-details`,
	},
	imageSel: []string{
		`[data-testid="event-image"] img`,
		`.event-hero-image img`,
		`.event-details img[src*="eventbrite"]`,
	},
	timePatterns:     weekdayPatterns,
	venue:            splitVenue,
	defaultVenueName: "Eventbrite",
}

func scrapeEventbrite(b *browser.Browser, rawURL string, max int) ([]event.Event, error) {
	return scrapeSite(b, eventbriteSite, rawURL, max)
}
