// Package config holds the selector tables for long-tail "misc" sites that
// do not warrant a bespoke scraper.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MiscSite is the tunable knob set for one long-tail site: which selectors
// locate event links on its listing page and the fields on a detail page,
// plus the fallback location when the page yields none.
type MiscSite struct {
	Name              string   `yaml:"name"`
	EventSelectors    []string `yaml:"event_selectors"`
	TitleSelectors    []string `yaml:"title_selectors"`
	DescSelectors     []string `yaml:"desc_selectors"`
	TimeSelectors     []string `yaml:"time_selectors"`
	LocationSelectors []string `yaml:"location_selectors"`
	DefaultLocation   string   `yaml:"default_location"`
}

// MiscSites maps a hostname fragment to its site configuration. Loaded
// once at process start and never mutated afterwards.
type MiscSites map[string]MiscSite

// Lookup returns the configuration whose hostname fragment appears in the
// given host or URL, matching case-insensitively.
func (m MiscSites) Lookup(hostOrURL string) (MiscSite, bool) {
	lower := strings.ToLower(hostOrURL)
	for fragment, site := range m {
		if strings.Contains(lower, fragment) {
			return site, true
		}
	}
	return MiscSite{}, false
}

// DefaultMiscSites returns the built-in site table.
func DefaultMiscSites() MiscSites {
	return MiscSites{
		"kiln.utah.gov": {
			Name: "Kiln Coworking Space",
			EventSelectors: []string{
				`.event-item a`,
				`.calendar-event a`,
				`a[href*="/events/"]`,
				`.upcoming-events a`,
			},
			TitleSelectors: []string{
				`h1.event-title`,
				`h1`,
				`.page-title`,
				`.event-header h1`,
			},
			DescSelectors: []string{
				`.event-description`,
				`.event-content`,
				`.content`,
				`main p`,
			},
			TimeSelectors: []string{
				`.event-date`,
				`.event-time`,
				`time[datetime]`,
				`.date-time`,
			},
			LocationSelectors: []string{
				`.event-location`,
				`.location`,
				`.venue`,
			},
			DefaultLocation: "Kiln Coworking Space, Salt Lake City, UT",
		},
		"wework.com": {
			Name: "WeWork",
			EventSelectors: []string{
				`.event-card a`,
				`.community-event a`,
				`a[href*="/events/"]`,
				`.events-list a`,
			},
			TitleSelectors: []string{
				`h1.event-title`,
				`h1`,
				`.event-name`,
				`.title`,
			},
			DescSelectors: []string{
				`.event-description`,
				`.description`,
				`.event-details`,
				`.content`,
			},
			TimeSelectors: []string{
				`.event-date`,
				`.date-time`,
				`time[datetime]`,
				`.when`,
			},
			LocationSelectors: []string{
				`.event-location`,
				`.location`,
				`.where`,
				`.venue`,
			},
			DefaultLocation: "WeWork Salt Lake City, UT",
		},
		"siliconslopestechsummit.com": {
			Name: "Silicon Slopes",
			EventSelectors: []string{
				`.event-item a`,
				`.session a`,
				`a[href*="/events/"]`,
				`.agenda-item a`,
			},
			TitleSelectors: []string{
				`h1.event-title`,
				`h1`,
				`.session-title`,
				`.event-name`,
			},
			DescSelectors: []string{
				`.event-description`,
				`.session-description`,
				`.description`,
				`.content`,
			},
			TimeSelectors: []string{
				`.event-time`,
				`.session-time`,
				`time[datetime]`,
				`.schedule-time`,
			},
			LocationSelectors: []string{
				`.event-location`,
				`.venue`,
				`.location`,
			},
			DefaultLocation: "Salt Palace Convention Center, Salt Lake City, UT",
		},
		"utahgeekevents.com": {
			Name: "Utah Geek Events",
			EventSelectors: []string{
				`.event-listing a`,
				`.event-item a`,
				`a[href*="/events/"]`,
				`.calendar-event a`,
			},
			TitleSelectors: []string{
				`h1.event-title`,
				`h1`,
				`.event-name`,
				`.title`,
			},
			DescSelectors: []string{
				`.event-description`,
				`.description`,
				`.event-details`,
				`.content`,
			},
			TimeSelectors: []string{
				`.event-date`,
				`.event-time`,
				`time[datetime]`,
				`.when`,
			},
			LocationSelectors: []string{
				`.event-location`,
				`.location`,
				`.venue`,
			},
			DefaultLocation: "Various locations in Utah",
		},
	}
}

// LoadMiscSites reads a site table from a YAML file. An empty path returns
// the built-in defaults.
func LoadMiscSites(path string) (MiscSites, error) {
	if path == "" {
		return DefaultMiscSites(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site config: %w", err)
	}

	var sites MiscSites
	if err := yaml.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("parsing site config: %w", err)
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("site config %s defines no sites", path)
	}

	for fragment, site := range sites {
		if site.Name == "" {
			return nil, fmt.Errorf("site config %s: %s has no name", path, fragment)
		}
		if len(site.EventSelectors) == 0 {
			return nil, fmt.Errorf("site config %s: %s has no event_selectors", path, fragment)
		}
	}

	return sites, nil
}
