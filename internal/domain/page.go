package domain

// PageStatus tracks what happened to a URL pulled off the crawl frontier.
type PageStatus string

const (
	StatusPending          PageStatus = "pending"
	StatusLoaded           PageStatus = "loaded"
	StatusLoadFailed       PageStatus = "load_failed"
	StatusSkippedOffDomain PageStatus = "skipped_off_domain"
	StatusSkippedDuplicate PageStatus = "skipped_duplicate"
)

// LoadFailure names why a page failed to load.
type LoadFailure string

const (
	LoadFailureTimeout LoadFailure = "timeout"
	LoadFailureDNS     LoadFailure = "dns_error"
	LoadFailureHTTP    LoadFailure = "http_error"
	LoadFailureUnknown LoadFailure = "unknown"
)

// PageVisit is the outcome of visiting one normalized URL. It is created when
// the URL is dequeued, filled in by the renderer and rule engine, and immutable
// once handed to the aggregator.
type PageVisit struct {
	URL        string      `json:"url"`
	Status     PageStatus  `json:"status"`
	HTTPStatus int         `json:"http_status,omitempty"`
	Title      string      `json:"title,omitempty"`
	Depth      int         `json:"depth"`
	Links      []string    `json:"links,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
	LoadError  LoadFailure `json:"load_error,omitempty"`

	// EvaluationFailed distinguishes "page loaded but the rule engine could
	// not run" (e.g. script injection blocked by CSP) from "zero violations".
	EvaluationFailed bool   `json:"evaluation_failed,omitempty"`
	EvalError        string `json:"eval_error,omitempty"`

	// Seq is the dequeue ordinal. Concurrent workers finish out of order;
	// sorting visits by Seq restores a reproducible crawl order.
	Seq int `json:"seq"`
}

// Evaluated reports whether the page both loaded and ran the rule engine, i.e.
// whether an empty Violations slice really means a clean page.
func (p PageVisit) Evaluated() bool {
	return p.Status == StatusLoaded && !p.EvaluationFailed
}
