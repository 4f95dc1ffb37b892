package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventscrape/internal/event"
)

func TestWriteBatch(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	when := time.Date(2024, time.December, 14, 14, 0, 0, 0, time.UTC)
	events := []event.Event{
		{
			URL:       "https://lu.ma/go-meetup",
			Title:     "Go Meetup",
			Time:      &when,
			VenueName: "Kiln",
		},
	}

	path, err := w.WriteBatch("https://lu.ma/slc", events)
	require.NoError(t, err)
	assert.Equal(t, "lu.ma_slc.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []event.Event
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Go Meetup", got[0].Title)
	assert.Equal(t, "Kiln", got[0].VenueName)
	require.NotNil(t, got[0].Time)
	assert.True(t, when.Equal(*got[0].Time))
}

func TestWriteBatchEmpty(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteBatch("https://www.eventbrite.com/d/ut--salt-lake-city/events/", nil)
	require.NoError(t, err)
	assert.Equal(t, "www.eventbrite.com_d_ut--salt-lake-city_events.json", filepath.Base(path))
}

func TestFilenameFor(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cs.byu.edu/events", "cs.byu.edu_events.json"},
		{"https://lu.ma/", "lu.ma.json"},
		{"https://www.meetup.com/find/?location=us--ut", "www.meetup.com_find.json"},
	}
	for _, tt := range tests {
		got, err := filenameFor(tt.url)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.url)
	}
}
