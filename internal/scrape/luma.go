package scrape

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"eventscrape/internal/browser"
	"eventscrape/internal/event"
)

var lumaHost = regexp.MustCompile(`(?i)^(.*\.)?lu\.ma$`)

func isLumaURL(u *url.URL) bool {
	return lumaHost.MatchString(u.Hostname())
}

// lumaVenue uses the matched text as the address and probes a dedicated
// venue-name element for a distinct name.
func lumaVenue(p Page, text string) (string, string) {
	address := strings.TrimSpace(text)
	name := ""
	if count, err := p.Count(`[data-testid="venue-name"]`); err == nil && count > 0 {
		if v, err := p.Text(`[data-testid="venue-name"]`, 0); err == nil {
			name = strings.TrimSpace(v)
		} else {
			log.Warn("venue name probe failed", "err", err)
		}
	}
	return name, address
}

var lumaSite = &site{
	name:        "Luma Events",
	baseOrigin:  "https://lu.ma",
	eventsRoot:  "https://lu.ma",
	waitTimeout: 10 * time.Second,
	waitSel:     []string{`[data-testid="event-card"]`},
	linkSel: []string{
		`[data-testid="event-card"] a`,
	},
	titleSel: []string{
		`h1[data-testid="event-title"]`,
		`h1`,
	},
	descSel: []string{
		`[data-testid="event-description"]`,
	},
	timeSel: []string{
		`[data-testid="event-date-time"]`,
		`[datetime]`,
	},
	locationSel: []string{
		`[data-testid="event-location"]`,
	},
	imageSel: []string{
		`[data-testid="event-image"] img`,
	},
	timePatterns:     weekdayPatterns,
	venue:            lumaVenue,
	defaultVenueName: "Luma Events",
}

func scrapeLuma(b *browser.Browser, rawURL string, max int) ([]event.Event, error) {
	return scrapeSite(b, lumaSite, rawURL, max)
}
