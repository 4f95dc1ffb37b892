// Package scrape classifies event-listing URLs to a provider and drives a
// two-phase crawl: discover event links on the listing page, then extract
// normalized fields from each detail page. Per-event failures are isolated
// so one bad page never aborts a batch.
package scrape

import "time"

// Page is the browser capability surface the pipeline consumes. Element
// reads are index-based over a selector's matches; an invalid selector or
// a missing element surfaces as an error the fallback layer absorbs.
// *browser.Page satisfies this; tests substitute a fake.
type Page interface {
	Navigate(url string) error
	WaitVisible(selector string, timeout time.Duration) error
	Settle() error
	Count(selector string) (int, error)
	Text(selector string, i int) (string, error)
	Attr(selector string, i int, name string) (string, bool, error)
}
