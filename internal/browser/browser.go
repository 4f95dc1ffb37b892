// Package browser wraps chromedp behind small page-session handles. One
// Browser is shared per process; each provider scrape checks out one Page
// (a tab) and closes it when done.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	DefaultOpTimeout = 15 * time.Second
	DefaultSettle    = 2 * time.Second
)

// Options controls browser startup and per-operation bounds.
type Options struct {
	// Headful disables headless mode, mainly for debugging selectors.
	Headful bool

	// OpTimeout bounds each navigation or element read. Zero means
	// DefaultOpTimeout.
	OpTimeout time.Duration

	// Settle is the post-load quiet period used by Page.Settle. Zero means
	// DefaultSettle.
	Settle time.Duration
}

// Browser owns the shared allocator and browser contexts.
type Browser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	opTimeout   time.Duration
	settle      time.Duration
}

// execFlags is the Chrome flag set derived from Options. The allocator
// defaults already force headless, so the headful case must explicitly
// override that flag; later flags win.
func execFlags(opts Options) map[string]any {
	return map[string]any{
		"headless":    !opts.Headful,
		"disable-gpu": true,
		"no-sandbox":  true,
	}
}

// New launches a browser shared across all scrape calls, headless unless
// Options.Headful is set.
func New(parent context.Context, opts Options) *Browser {
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = DefaultOpTimeout
	}
	if opts.Settle <= 0 {
		opts.Settle = DefaultSettle
	}

	execOpts := chromedp.DefaultExecAllocatorOptions[:]
	for name, value := range execFlags(opts) {
		execOpts = append(execOpts, chromedp.Flag(name, value))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, execOpts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	return &Browser{
		ctx:         ctx,
		cancel:      cancel,
		allocCancel: allocCancel,
		opTimeout:   opts.OpTimeout,
		settle:      opts.Settle,
	}
}

// Close tears down the browser and all of its tabs.
func (b *Browser) Close() {
	b.cancel()
	b.allocCancel()
}

// NewPage opens a fresh tab tied to the shared browser context.
func (b *Browser) NewPage() *Page {
	ctx, cancel := chromedp.NewContext(b.ctx)
	return &Page{
		ctx:       ctx,
		cancel:    cancel,
		opTimeout: b.opTimeout,
		settle:    b.settle,
	}
}
