package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"eventscrape/internal/browser"
	"eventscrape/internal/event"
)

const defaultListingWait = 10 * time.Second

// venueFunc turns physical-location text into a venue name and address.
// It receives the page so a provider can probe secondary elements.
type venueFunc func(p Page, text string) (name, address string)

// site holds everything that varies between providers: the selector sets,
// URL resolution rules, time-pattern family, and venue heuristics. The
// scrape shape itself is shared by every provider.
type site struct {
	name string

	// baseOrigin resolves /-prefixed hrefs; empty means derive the origin
	// from the page URL. eventsRoot resolves bare relative hrefs; empty
	// means resolve against the listing URL.
	baseOrigin string
	eventsRoot string

	// linkOK filters discovered URLs, e.g. to drop navigation links. Nil
	// accepts everything.
	linkOK func(absURL string) bool

	waitTimeout time.Duration
	waitSel     []string
	linkSel     []string

	titleSel    []string
	descSel     []string
	timeSel     []string
	locationSel []string
	imageSel    []string

	timePatterns []*regexp.Regexp
	venue        venueFunc

	// onlineAddress also copies online/virtual location text into the
	// address field, as the misc-site provider does.
	onlineAddress bool

	defaultVenueName string
	defaultVenueAddr string

	geofenced bool
}

// scrapeSite runs one full provider scrape on a fresh page session. The
// session is reused across the listing page and every detail page, and
// released on all exit paths.
func scrapeSite(b *browser.Browser, s *site, startURL string, max int) ([]event.Event, error) {
	page := b.NewPage()
	defer page.Close()
	return runSite(page, s, startURL, max)
}

// runSite discovers event URLs from the listing page and extracts each
// detail page, skipping per-event failures.
func runSite(p Page, s *site, startURL string, max int) ([]event.Event, error) {
	urls, err := discover(p, s, startURL, max)
	if err != nil {
		return nil, err
	}

	var events []event.Event
	for _, eventURL := range urls {
		ev, err := details(p, s, eventURL)
		if err != nil {
			log.Error("failed to scrape event", "url", eventURL, "err", err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// discover collects up to max absolute, deduplicated event URLs from the
// listing page. A listing where no event container ever appears is an
// empty result, not an error.
func discover(p Page, s *site, startURL string, max int) ([]string, error) {
	log.Info("looking for upcoming events", "provider", s.name, "url", startURL)
	if err := p.Navigate(startURL); err != nil {
		return nil, err
	}

	if !waitAny(p, s.waitSel, s.waitTimeout) {
		log.Info("no events found", "url", startURL)
		return nil, nil
	}

	var urls []string
	seen := make(map[string]bool)

	for _, sel := range s.linkSel {
		count, err := p.Count(sel)
		if err != nil {
			log.Warn("link selector failed", "selector", sel, "err", err)
			continue
		}
		if count == 0 {
			continue
		}
		log.Info("found event links", "count", count, "selector", sel)

		// Only the first max elements are considered; duplicates and
		// filtered links inside that window shrink the result rather than
		// pulling in later elements.
		for i := 0; i < min(count, max); i++ {
			href, ok, err := p.Attr(sel, i, "href")
			if err != nil {
				log.Warn("could not read event link", "selector", sel, "index", i, "err", err)
				continue
			}
			if !ok || href == "" {
				continue
			}

			abs, err := resolveLink(s, startURL, href)
			if err != nil {
				log.Warn("could not resolve event link", "href", href, "err", err)
				continue
			}
			if s.linkOK != nil && !s.linkOK(abs) {
				continue
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			urls = append(urls, abs)
			log.Debug("found event url", "url", abs)
		}

		// First productive selector wins; overlapping selector scopes
		// would otherwise double-collect.
		if len(urls) > 0 {
			break
		}
	}

	log.Info("collected event urls", "count", len(urls))
	return urls, nil
}

// waitAny waits for any of the selectors to appear, each bounded by the
// site's listing timeout.
func waitAny(p Page, selectors []string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = defaultListingWait
	}
	for _, sel := range selectors {
		if err := p.WaitVisible(sel, timeout); err == nil {
			return true
		}
	}
	return false
}

// details extracts one Event from a detail page. Only a missing title or a
// geofence rejection fails the event; every other field degrades to its
// zero value.
func details(p Page, s *site, eventURL string) (event.Event, error) {
	log.Info("getting event details", "provider", s.name, "url", eventURL)
	if err := p.Navigate(eventURL); err != nil {
		return event.Event{}, &ParsingError{URL: eventURL, Reason: "failed to load event page", Err: err}
	}
	if err := p.Settle(); err != nil {
		log.Warn("page did not settle", "url", eventURL, "err", err)
	}

	title, ok := firstText(p, s.titleSel)
	if !ok {
		return event.Event{}, &ParsingError{URL: eventURL, Reason: "could not find event title"}
	}

	description, _ := firstText(p, s.descSel)

	when := extractTime(p, s.timeSel, s.timePatterns)
	if when == nil {
		log.Warn("could not determine event time", "url", eventURL)
	}

	var venueName, venueAddr string
	online := false
	if text, found := firstText(p, s.locationSel); found {
		if online = isOnline(text); online {
			venueName = text
			if s.onlineAddress {
				venueAddr = text
			}
		} else {
			venueName, venueAddr = s.venue(p, text)
		}
	}
	if venueName == "" && venueAddr == "" {
		venueName = s.defaultVenueName
		venueAddr = s.defaultVenueAddr
	}

	if s.geofenced && !online && venueAddr != "" && !inRegion(venueAddr) {
		log.Info("skipping out-of-region event", "title", title, "address", venueAddr)
		return event.Event{}, &ParsingError{URL: eventURL, Reason: "event not in region"}
	}

	imageURL := ""
	if src, found := firstAttr(p, s.imageSel, "src"); found {
		if abs, err := resolveLink(s, eventURL, src); err == nil {
			imageURL = abs
		}
	}

	return event.Event{
		URL:          eventURL,
		Title:        title,
		Description:  description,
		Time:         when,
		VenueName:    venueName,
		VenueAddress: venueAddr,
		ImageURL:     imageURL,
	}, nil
}

// resolveLink normalizes an href to an absolute URL: /-prefixed paths
// resolve against the provider's base origin, bare relative paths against
// its events root.
func resolveLink(s *site, pageURL, href string) (string, error) {
	if strings.HasPrefix(href, "http") {
		return href, nil
	}
	if strings.HasPrefix(href, "/") {
		origin := s.baseOrigin
		if origin == "" {
			o, err := urlOrigin(pageURL)
			if err != nil {
				return "", err
			}
			origin = o
		}
		return origin + href, nil
	}
	root := s.eventsRoot
	if root == "" {
		root = pageURL
	}
	return strings.TrimRight(root, "/") + "/" + href, nil
}

func urlOrigin(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("url %q has no origin", raw)
	}
	return u.Scheme + "://" + u.Host, nil
}
