package scrape

import (
	"net/url"
	"time"

	"eventscrape/internal/browser"
	"eventscrape/internal/config"
	"eventscrape/internal/event"
)

// miscProvider covers long-tail sites configured by selector tables rather
// than bespoke scrapers. It is the only provider that geofences results.
func miscProvider(sites config.MiscSites) Provider {
	return Provider{
		Name: "Misc Websites",
		Matches: func(u *url.URL) bool {
			_, ok := sites.Lookup(u.Hostname())
			return ok
		},
		Scrape: func(b *browser.Browser, rawURL string, max int) ([]event.Event, error) {
			s, err := miscSiteFor(sites, rawURL)
			if err != nil {
				return nil, err
			}
			return scrapeSite(b, s, rawURL, max)
		},
	}
}

// miscSiteFor selects the configuration for a URL by hostname, the same
// key the provider predicate matches on. Matching the full URL string
// would let a fragment in the path shadow the host's own entry.
func miscSiteFor(sites config.MiscSites, rawURL string) (*site, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ParsingError{URL: rawURL, Reason: "invalid url", Err: err}
	}
	cfg, ok := sites.Lookup(u.Hostname())
	if !ok {
		return nil, &ParsingError{URL: rawURL, Reason: "no site configuration"}
	}
	return miscSite(cfg), nil
}

// miscSite instantiates the shared scrape shape from a config entry. Base
// origin and events root are left empty so links resolve against the page
// being scraped.
func miscSite(cfg config.MiscSite) *site {
	return &site{
		name:        cfg.Name,
		waitTimeout: 3 * time.Second,
		waitSel:     cfg.EventSelectors,
		linkSel:     cfg.EventSelectors,
		titleSel:    cfg.TitleSelectors,
		descSel:     cfg.DescSelectors,
		timeSel:     cfg.TimeSelectors,
		locationSel: cfg.LocationSelectors,
		imageSel: []string{
			`.event-image img`,
			`.hero-image img`,
			`main img`,
			`article img`,
		},
		timePatterns: monthDayPatterns,
		venue: func(_ Page, text string) (string, string) {
			return text, text
		},
		onlineAddress:    true,
		defaultVenueName: cfg.Name,
		defaultVenueAddr: cfg.DefaultLocation,
		geofenced:        true,
	}
}
