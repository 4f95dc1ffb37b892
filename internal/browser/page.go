package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Page is one browser tab. Element reads go through Evaluate so that an
// invalid selector or a missing element surfaces as an ordinary error the
// extraction layer can absorb.
type Page struct {
	ctx       context.Context
	cancel    context.CancelFunc
	opTimeout time.Duration
	settle    time.Duration
}

// Close releases the tab.
func (p *Page) Close() {
	p.cancel()
}

func (p *Page) run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Navigate loads a URL and blocks until the document body is ready.
func (p *Page) Navigate(url string) error {
	if err := p.run(p.opTimeout, chromedp.Navigate(url), chromedp.WaitReady("body")); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// WaitVisible blocks until the selector matches a visible element or the
// timeout expires.
func (p *Page) WaitVisible(selector string, timeout time.Duration) error {
	return p.run(timeout, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

// Settle gives the page a quiet period after load. The DevTools protocol
// has no direct network-idle signal, so this stands in as a best-effort
// completeness gate.
func (p *Page) Settle() error {
	return p.run(p.settle+p.opTimeout, chromedp.Sleep(p.settle))
}

// Count returns how many elements the selector currently matches.
func (p *Page) Count(selector string) (int, error) {
	js := fmt.Sprintf(`document.querySelectorAll(%q).length`, selector)
	var n int
	if err := p.run(p.opTimeout, chromedp.Evaluate(js, &n)); err != nil {
		return 0, err
	}
	return n, nil
}

// Text returns the text content of the i-th element matching the selector.
func (p *Page) Text(selector string, i int) (string, error) {
	js := fmt.Sprintf(`(() => {
		const els = document.querySelectorAll(%q);
		if (%d >= els.length) { throw new Error("no matching element"); }
		return els[%d].textContent;
	})()`, selector, i, i)
	var text string
	if err := p.run(p.opTimeout, chromedp.Evaluate(js, &text)); err != nil {
		return "", err
	}
	return text, nil
}

type attrResult struct {
	Found bool   `json:"found"`
	Value string `json:"value"`
}

// Attr reads an attribute from the i-th element matching the selector. The
// second return is false when the element exists but lacks the attribute.
func (p *Page) Attr(selector string, i int, name string) (string, bool, error) {
	js := fmt.Sprintf(`(() => {
		const els = document.querySelectorAll(%q);
		if (%d >= els.length) { throw new Error("no matching element"); }
		const v = els[%d].getAttribute(%q);
		return {found: v !== null, value: v === null ? "" : v};
	})()`, selector, i, i, name)
	var res attrResult
	if err := p.run(p.opTimeout, chromedp.Evaluate(js, &res)); err != nil {
		return "", false, err
	}
	return res.Value, res.Found, nil
}
