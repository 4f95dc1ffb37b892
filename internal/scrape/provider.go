package scrape

import (
	"net/url"

	"github.com/charmbracelet/log"

	"eventscrape/internal/browser"
	"eventscrape/internal/config"
	"eventscrape/internal/event"
)

// ScrapeFunc runs a full provider scrape: listing discovery followed by
// detail extraction, capped at max events.
type ScrapeFunc func(b *browser.Browser, url string, max int) ([]event.Event, error)

// Provider is one registered event platform: a display name, a predicate
// over the parsed input URL, and its scrape routine.
type Provider struct {
	Name    string
	Matches func(u *url.URL) bool
	Scrape  ScrapeFunc
}

// Registry holds the providers in registration order. Providers are
// defined once at construction and never change; their predicates are
// disjoint, so ordering only matters as a tie-break discipline.
type Registry struct {
	providers []Provider
}

// NewRegistry builds the provider registry. The misc-site provider is
// parameterized by the loaded site table.
func NewRegistry(sites config.MiscSites) *Registry {
	return &Registry{providers: []Provider{
		{Name: "Meetup.com", Matches: isMeetupURL, Scrape: scrapeMeetup},
		{Name: "Luma Events", Matches: isLumaURL, Scrape: scrapeLuma},
		{Name: "Eventbrite", Matches: isEventbriteURL, Scrape: scrapeEventbrite},
		{Name: "BYU CS Department", Matches: isByuCSURL, Scrape: scrapeByuCS},
		{Name: "University of Utah CS", Matches: isUtahCSURL, Scrape: scrapeUtahCS},
		miscProvider(sites),
	}}
}

// Lookup returns the first provider whose predicate matches. First match
// wins; there is no fallback to a later match.
func (r *Registry) Lookup(u *url.URL) (*Provider, bool) {
	for i := range r.providers {
		if r.providers[i].Matches(u) {
			return &r.providers[i], true
		}
	}
	return nil, false
}

// Scrape dispatches a URL to its provider and returns the scraped events.
// A URL no provider claims fails with *UnknownProviderError.
func (r *Registry) Scrape(b *browser.Browser, rawURL string, maxEvents int) ([]event.Event, error) {
	log.Info("processing url", "url", rawURL)

	// An unparseable URL is one no provider can claim; batch callers treat
	// it like any other unmatched URL.
	u, err := url.Parse(rawURL)
	if err != nil {
		log.Warn("unparseable url", "url", rawURL, "err", err)
		return nil, &UnknownProviderError{URL: rawURL}
	}

	p, ok := r.Lookup(u)
	if !ok {
		return nil, &UnknownProviderError{URL: rawURL}
	}
	log.Info("url recognized", "provider", p.Name, "url", rawURL)

	events, err := p.Scrape(b, rawURL, maxEvents)
	if err != nil {
		return nil, err
	}
	log.Info("scrape complete", "url", rawURL, "events", len(events))
	return events, nil
}
