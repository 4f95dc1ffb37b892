package scrape

import "fmt"

// UnknownProviderError reports a URL that no registered provider claims.
// It is fatal for that one dispatch call; batch callers decide whether to
// continue with other URLs.
type UnknownProviderError struct {
	URL string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("could not determine event provider for url: %s", e.URL)
}

// ParsingError reports an extraction failure scoped to a single event
// page: a missing title, an unexpected navigation failure, or a geofence
// rejection. The listing loop catches it, logs, and moves on.
type ParsingError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ParsingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.URL)
}

func (e *ParsingError) Unwrap() error { return e.Err }
