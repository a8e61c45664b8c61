package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/a11yscan/a11yscan/internal/domain"
	"github.com/a11yscan/a11yscan/internal/domain/crawl"
	"github.com/a11yscan/a11yscan/internal/domain/scoring"
)

// AuditService orchestrates the crawl-and-audit pipeline:
// seed frontier → worker pool (render → evaluate → discover links) → sort by
// dequeue order → aggregate.
//
// Per-page failures are recorded on the PageVisit and never stop the crawl;
// the only fatal path is configuration validation before any work begins.
// Budget exhaustion, deadline, and cancellation all produce a partial but
// valid Audit tagged with a completion reason.
type AuditService struct {
	renderer domain.PageRenderer
	engine   domain.RuleEngine
	logger   *slog.Logger

	// Progress, when set, receives each completed PageVisit as the crawl
	// runs. It is called from worker goroutines.
	Progress func(domain.PageVisit)
}

func NewAuditService(renderer domain.PageRenderer, engine domain.RuleEngine, logger *slog.Logger) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{
		renderer: renderer,
		engine:   engine,
		logger:   logger,
	}
}

// Run executes one full audit of cfg.SeedURL.
func (s *AuditService) Run(ctx context.Context, cfg domain.Config) (*domain.Audit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scope, err := crawl.NewScope(cfg.SeedURL, cfg.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	frontier := crawl.NewFrontier(scope, cfg.MaxPages, cfg.MaxDepth)

	seed, verdict := frontier.Add(cfg.SeedURL, 0)
	if verdict != crawl.VerdictEnqueued {
		return nil, fmt.Errorf("%w: seed url rejected (%s)", domain.ErrConfiguration, verdict)
	}

	if cfg.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Deadline)
		defer cancel()
	}
	// Unblock workers waiting on the frontier once the run is cancelled or
	// the deadline fires; queued entries are abandoned, in-flight pages
	// finish or time out on their own.
	stop := context.AfterFunc(ctx, frontier.Close)
	defer stop()

	var (
		mu        sync.Mutex
		visits    []domain.PageVisit
		offDomain = make(map[string]struct{})
	)

	var g errgroup.Group
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			for {
				entry, ok := frontier.Next()
				if !ok {
					return nil
				}
				visit := s.visit(ctx, entry, cfg)

				// Discovered links must enter the frontier before Done
				// retires this entry, or a quiescence check in another
				// worker could end the crawl with work still pending.
				for _, link := range visit.Links {
					norm, v := frontier.Add(link, entry.Depth+1)
					if v == crawl.VerdictOffScope {
						mu.Lock()
						offDomain[norm] = struct{}{}
						mu.Unlock()
					}
				}
				frontier.Done()

				mu.Lock()
				visits = append(visits, visit)
				mu.Unlock()
				if s.Progress != nil {
					s.Progress(visit)
				}
			}
		})
	}
	_ = g.Wait() // workers never return errors; failures live on the visits

	sort.Slice(visits, func(i, j int) bool { return visits[i].Seq < visits[j].Seq })

	skipped := make([]string, 0, len(offDomain))
	for u := range offDomain {
		skipped = append(skipped, u)
	}

	completion := completionReason(ctx, cfg, len(visits))
	audit := scoring.Aggregate(seed, visits, skipped, completion, cfg.QuickWinsTopN)

	for _, grp := range audit.IssueGroups {
		if grp.SeverityConflict {
			s.logger.Warn("severity disagreement across pages, keeping maximum",
				"rule", grp.RuleID, "severity", grp.Severity)
		}
	}
	s.logger.Info("crawl complete",
		"site", seed,
		"pages", len(audit.Pages),
		"violations", audit.TotalViolations(),
		"completion", completion)

	return audit, nil
}

// visit renders and evaluates one frontier entry. Every failure mode becomes
// data on the returned PageVisit.
func (s *AuditService) visit(ctx context.Context, entry crawl.Entry, cfg domain.Config) domain.PageVisit {
	visit := domain.PageVisit{
		URL:    entry.URL,
		Status: domain.StatusPending,
		Depth:  entry.Depth,
		Seq:    entry.Seq,
	}

	pctx, cancel := context.WithTimeout(ctx, cfg.PageTimeout)
	defer cancel()

	res, err := s.renderer.Render(pctx, entry.URL)
	if err != nil {
		nav := domain.ClassifyNavigationError(err)
		visit.Status = domain.StatusLoadFailed
		visit.LoadError = nav.Reason
		visit.HTTPStatus = nav.StatusCode
		s.logger.Warn("page load failed", "url", entry.URL, "reason", nav.Reason)
		return visit
	}

	visit.Status = domain.StatusLoaded
	visit.HTTPStatus = res.HTTPStatus
	visit.Title = res.Title
	visit.Links = httpLinks(res.Links)

	raws, err := s.engine.Evaluate(pctx, res)
	if err != nil {
		visit.EvaluationFailed = true
		visit.EvalError = err.Error()
		s.logger.Warn("page loaded but could not be evaluated", "url", entry.URL, "error", err)
		return visit
	}

	violations, warnings := domain.NormalizeViolations(raws)
	for _, w := range warnings {
		s.logger.Warn("unmapped engine impact coerced to moderate",
			"rule", w.RuleID, "impact", w.Impact, "url", entry.URL)
	}
	visit.Violations = violations
	return visit
}

// httpLinks drops non-navigable hrefs (mailto:, javascript:, tel:) before
// they reach the frontier.
func httpLinks(links []string) []string {
	out := links[:0:0]
	for _, l := range links {
		if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") {
			out = append(out, l)
		}
	}
	return out
}

func completionReason(ctx context.Context, cfg domain.Config, visited int) domain.CompletionReason {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.CompletionDeadlineExceeded
	case errors.Is(ctx.Err(), context.Canceled):
		return domain.CompletionCancelled
	case visited >= cfg.MaxPages:
		return domain.CompletionBudgetReached
	default:
		return domain.CompletionFrontierExhausted
	}
}
