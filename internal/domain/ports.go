package domain

import "context"

// RenderResult is a stable snapshot of a successfully loaded page, sufficient
// for link discovery and rule evaluation.
type RenderResult struct {
	URL        string   // requested URL
	FinalURL   string   // URL after redirects
	HTTPStatus int
	Title      string
	HTML       string   // rendered DOM snapshot
	Links      []string // absolute <a href> targets found on the page
}

// PageRenderer drives a browser (or plain HTTP fetch) to load one URL. Each
// call uses an isolated browsing context; no state leaks between pages.
// Navigation failures are returned as *NavigationError and are never fatal to
// the crawl.
type PageRenderer interface {
	Render(ctx context.Context, url string) (*RenderResult, error)
}

// RuleEngine runs accessibility rules against a rendered page and returns the
// engine-native violation list. Callers must only pass successfully rendered
// pages.
type RuleEngine interface {
	Evaluate(ctx context.Context, page *RenderResult) ([]RawViolation, error)
}
