package scrape

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// timestampLayouts accepted from machine-readable datetime attributes.
// Offset-less values are taken as UTC; sites emit both T- and
// space-separated forms, and bare dates on all-day events.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimestamp parses an ISO-8601 datetime attribute value. A trailing Z
// is the UTC offset.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}

// Free-text date shapes, per provider family. Sites such as the CS
// departments render "December 14, 2024 at 2:00 PM"; Eventbrite, Luma and
// Meetup prefix a three-letter weekday, "Sat, Dec 14, 2024 at 2:00 PM MST".
var (
	monthDayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\w+)\s+(\d{1,2}),?\s+(\d{4})\s+(\d{1,2}):(\d{2})\s*([AP]M)`),
		regexp.MustCompile(`(?i)(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})\s*([AP]M)`),
		regexp.MustCompile(`(?i)(\d{4})-(\d{2})-(\d{2})\s+(\d{1,2}):(\d{2})`),
	}
	weekdayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\w{3}),?\s+(\w{3})\s+(\d{1,2}),?\s+(\d{4})\s+(\d{1,2}):(\d{2})\s*([AP]M)`),
		regexp.MustCompile(`(?i)(\w{3})\s+(\d{1,2}),?\s+(\d{4})\s+(\d{1,2}):(\d{2})\s*([AP]M)`),
		regexp.MustCompile(`(?i)(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})\s*([AP]M)`),
	}

	spaceRuns   = regexp.MustCompile(`\s+`)
	atSeparator = regexp.MustCompile(`\s+at\s+`)
)

// parseFreeText probes free-form time text against a pattern family.
// Recognition only: converting a match would need locale, timezone, and
// 12h/24h rules that were never pinned down, so a match logs a warning and
// still yields no value. Datetime attributes are the only source of event
// times.
func parseFreeText(text string, patterns []*regexp.Regexp) (time.Time, bool) {
	cleaned := atSeparator.ReplaceAllString(text, " ")
	cleaned = strings.TrimSpace(spaceRuns.ReplaceAllString(cleaned, " "))

	for _, pat := range patterns {
		if pat.MatchString(cleaned) {
			log.Warn("date text recognized but free-text parsing is not implemented", "text", text)
			return time.Time{}, false
		}
	}
	return time.Time{}, false
}

// extractTime resolves an event time from an ordered selector list. For
// each selector the machine-readable datetime attribute is authoritative;
// the text content is a best-effort fallback that may decline.
func extractTime(p Page, selectors []string, patterns []*regexp.Regexp) *time.Time {
	for _, sel := range selectors {
		val, ok, err := p.Attr(sel, 0, "datetime")
		if err == nil && ok && val != "" {
			t, perr := parseTimestamp(val)
			if perr == nil {
				return &t
			}
			log.Warn("bad datetime attribute", "selector", sel, "value", val, "err", perr)
		}

		text, terr := p.Text(sel, 0)
		if terr != nil {
			log.Warn("time selector failed", "selector", sel, "err", terr)
			continue
		}
		if t, ok := parseFreeText(text, patterns); ok {
			return &t
		}
	}
	return nil
}
