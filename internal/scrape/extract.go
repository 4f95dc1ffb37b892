package scrape

import (
	"strings"

	"github.com/charmbracelet/log"
)

// The target markup is neither versioned nor contractual: each selector
// list is a priority-ordered set of hypotheses about current page
// structure. A selector that errors, matches nothing, or yields an empty
// result is disqualified and the next one is tried; exhausting the list
// means the field is absent, never a hard failure.

// firstText returns the trimmed text of the first selector that yields a
// non-empty result.
func firstText(p Page, selectors []string) (string, bool) {
	for _, sel := range selectors {
		text, err := p.Text(sel, 0)
		if err != nil {
			log.Warn("text selector failed", "selector", sel, "err", err)
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

// firstAttr returns the named attribute from the first selector whose
// first match carries it.
func firstAttr(p Page, selectors []string, name string) (string, bool) {
	for _, sel := range selectors {
		val, ok, err := p.Attr(sel, 0, name)
		if err != nil {
			log.Warn("attribute selector failed", "selector", sel, "attr", name, "err", err)
			continue
		}
		if ok && val != "" {
			return val, true
		}
	}
	return "", false
}

// onlineKeywords classify a location as online/virtual rather than a
// physical venue.
var onlineKeywords = []string{"online", "virtual", "zoom", "teams", "meet", "livestream"}

func isOnline(location string) bool {
	lower := strings.ToLower(location)
	for _, kw := range onlineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
