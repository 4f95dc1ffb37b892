package scrape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstTextFallbackOrder(t *testing.T) {
	p := newFakePage()
	d := p.addDoc("https://example.test/page")
	d.addBroken(".broken", errors.New("selector exploded"))
	d.add(".third", "Hello ", nil)
	d.add(".never", "should not be read", nil)
	require.NoError(t, p.Navigate("https://example.test/page"))

	got, ok := firstText(p, []string{".missing", ".broken", ".third", ".never"})

	require.True(t, ok)
	assert.Equal(t, "Hello", got, "result is trimmed")
	assert.False(t, p.called(".never"), "later selectors are never attempted after a success")
}

func TestFirstTextSkipsEmptyResults(t *testing.T) {
	p := newFakePage()
	d := p.addDoc("https://example.test/page")
	d.add(".blank", "   \n\t ", nil)
	d.add(".real", "Distinguished Lecture", nil)
	require.NoError(t, p.Navigate("https://example.test/page"))

	got, ok := firstText(p, []string{".blank", ".real"})

	require.True(t, ok)
	assert.Equal(t, "Distinguished Lecture", got)
}

func TestFirstTextExhausted(t *testing.T) {
	p := newFakePage()
	p.addDoc("https://example.test/page")
	require.NoError(t, p.Navigate("https://example.test/page"))

	_, ok := firstText(p, []string{".a", ".b", ".c"})
	assert.False(t, ok)
}

func TestFirstAttr(t *testing.T) {
	p := newFakePage()
	d := p.addDoc("https://example.test/page")
	d.add("img.bare", "", nil)
	d.add("img.src", "", map[string]string{"src": "/banner.png"})
	require.NoError(t, p.Navigate("https://example.test/page"))

	got, ok := firstAttr(p, []string{"img.missing", "img.bare", "img.src"}, "src")

	require.True(t, ok)
	assert.Equal(t, "/banner.png", got)
}

func TestIsOnline(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"Zoom — Virtual", true},
		{"Online Event", true},
		{"Microsoft Teams", true},
		{"Livestream only", true},
		{"Google Meet", true},
		{"TMCB 1170", false},
		{"Salt Lake City, UT", false},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, isOnline(tt.location))
		})
	}
}
