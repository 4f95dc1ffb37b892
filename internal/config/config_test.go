package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMiscSites(t *testing.T) {
	sites := DefaultMiscSites()

	for _, fragment := range []string{
		"kiln.utah.gov",
		"wework.com",
		"siliconslopestechsummit.com",
		"utahgeekevents.com",
	} {
		site, ok := sites[fragment]
		require.True(t, ok, "missing %s", fragment)
		assert.NotEmpty(t, site.Name)
		assert.NotEmpty(t, site.EventSelectors)
		assert.NotEmpty(t, site.TitleSelectors)
		assert.NotEmpty(t, site.DefaultLocation)
	}
}

func TestLookup(t *testing.T) {
	sites := DefaultMiscSites()

	site, ok := sites.Lookup("kiln.utah.gov")
	require.True(t, ok)
	assert.Equal(t, "Kiln Coworking Space", site.Name)

	site, ok = sites.Lookup("https://WWW.WEWORK.COM/events/slc")
	require.True(t, ok, "lookup matches case-insensitively inside a full url")
	assert.Equal(t, "WeWork", site.Name)

	_, ok = sites.Lookup("example.org")
	assert.False(t, ok)
}

func TestLoadMiscSitesEmptyPathUsesDefaults(t *testing.T) {
	sites, err := LoadMiscSites("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMiscSites(), sites)
}

func TestLoadMiscSitesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
example.test:
  name: Example Venue
  event_selectors:
    - ".event a"
  title_selectors:
    - "h1"
  desc_selectors:
    - ".description"
  time_selectors:
    - "time[datetime]"
  location_selectors:
    - ".location"
  default_location: "Example Venue, Provo, UT"
`), 0o644))

	sites, err := LoadMiscSites(path)
	require.NoError(t, err)
	require.Len(t, sites, 1)

	site, ok := sites.Lookup("example.test")
	require.True(t, ok)
	assert.Equal(t, "Example Venue", site.Name)
	assert.Equal(t, []string{".event a"}, site.EventSelectors)
	assert.Equal(t, "Example Venue, Provo, UT", site.DefaultLocation)
}

func TestLoadMiscSitesRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMiscSites(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("{}\n"), 0o644))
	_, err = LoadMiscSites(empty)
	assert.Error(t, err)

	nameless := filepath.Join(dir, "nameless.yaml")
	require.NoError(t, os.WriteFile(nameless, []byte(`
example.test:
  event_selectors: [".event a"]
`), 0o644))
	_, err = LoadMiscSites(nameless)
	assert.Error(t, err)
}
