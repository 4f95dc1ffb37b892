package scrape

import "strings"

// regionKeywords mark an address as inside the served region. Applied only
// by the misc-site provider, and never to online/virtual events.
var regionKeywords = []string{
	"utah",
	"ut",
	"salt lake",
	"provo",
	"ogden",
	"park city",
	"byu",
	"university of utah",
}

func inRegion(address string) bool {
	lower := strings.ToLower(address)
	for _, kw := range regionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
