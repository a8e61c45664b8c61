package crawl

import (
	"sync"
)

// Verdict is the outcome of offering a URL to the frontier.
type Verdict int

const (
	VerdictEnqueued Verdict = iota
	VerdictDuplicate
	VerdictOffScope
	VerdictExcluded
	VerdictTooDeep
	VerdictBudgetReached
)

func (v Verdict) String() string {
	switch v {
	case VerdictEnqueued:
		return "enqueued"
	case VerdictDuplicate:
		return "duplicate"
	case VerdictOffScope:
		return "off_scope"
	case VerdictExcluded:
		return "excluded"
	case VerdictTooDeep:
		return "too_deep"
	case VerdictBudgetReached:
		return "budget_reached"
	}
	return "unknown"
}

// Entry is one unit of crawl work.
type Entry struct {
	URL   string
	Depth int
	Seq   int // dequeue ordinal, assigned by Next
}

// Frontier is the crawl's pending-work queue plus visited set. It is the
// single shared-mutation point of the whole pipeline: Add performs an atomic
// check-and-enqueue (membership is decided before enqueue, not after dequeue),
// so concurrent workers can never schedule the same URL twice.
type Frontier struct {
	mu   sync.Mutex
	cond *sync.Cond

	scope    *Scope
	maxPages int
	maxDepth int

	queue       []Entry
	seen        map[string]struct{}
	nextSeq     int
	outstanding int
	closed      bool
}

// NewFrontier builds a frontier bounded by maxPages and maxDepth.
func NewFrontier(scope *Scope, maxPages, maxDepth int) *Frontier {
	f := &Frontier{
		scope:    scope,
		maxPages: maxPages,
		maxDepth: maxDepth,
		seen:     make(map[string]struct{}),
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Add offers a raw URL at the given depth. It returns the normalized URL and
// a verdict; only VerdictEnqueued means the URL will be visited. Malformed
// URLs come back as VerdictOffScope with the raw string untouched.
func (f *Frontier) Add(rawURL string, depth int) (string, Verdict) {
	norm, err := Normalize(rawURL)
	if err != nil {
		return rawURL, VerdictOffScope
	}
	if !f.scope.Allows(norm) {
		return norm, VerdictOffScope
	}
	if f.scope.Excluded(norm) {
		return norm, VerdictExcluded
	}
	if depth > f.maxDepth {
		return norm, VerdictTooDeep
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.seen[norm]; ok {
		return norm, VerdictDuplicate
	}
	if len(f.seen) >= f.maxPages {
		return norm, VerdictBudgetReached
	}
	f.seen[norm] = struct{}{}
	f.queue = append(f.queue, Entry{URL: norm, Depth: depth})
	f.cond.Broadcast()
	return norm, VerdictEnqueued
}

// Next blocks until an entry is available, then hands it out stamped with its
// dequeue ordinal. It returns ok=false once the frontier is quiescent (queue
// empty with no outstanding work) or closed. Every entry handed out must be
// retired with Done.
func (f *Frontier) Next() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for {
		if f.closed {
			return Entry{}, false
		}
		if len(f.queue) > 0 {
			e := f.queue[0]
			f.queue = f.queue[1:]
			e.Seq = f.nextSeq
			f.nextSeq++
			f.outstanding++
			return e, true
		}
		if f.outstanding == 0 {
			return Entry{}, false
		}
		f.cond.Wait()
	}
}

// Done retires an entry previously handed out by Next. Discovered links must
// be Added before calling Done, otherwise a quiescence check can fire between
// the two and shut the crawl down early.
func (f *Frontier) Done() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outstanding--
	if f.outstanding == 0 && len(f.queue) == 0 {
		f.cond.Broadcast()
	}
}

// Close wakes all blocked workers and stops further dequeues. Used for
// cancellation; queued entries are abandoned.
func (f *Frontier) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cond.Broadcast()
}

// Visited reports how many distinct URLs have been accepted for visiting.
func (f *Frontier) Visited() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}
