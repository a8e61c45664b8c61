package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// Engine implements domain.RuleEngine with a fixed subset of axe-core rules
// evaluated against the DOM snapshot via goquery. It cannot judge anything
// requiring computed styles (contrast, focus order), but the structural rules
// it does cover behave like their axe counterparts.
type Engine struct {
	rules []rule
}

func NewEngine() *Engine {
	return &Engine{rules: builtinRules}
}

// RuleIDs lists the checks this engine runs, for documentation surfaces.
func (e *Engine) RuleIDs() []string {
	ids := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		ids = append(ids, r.id)
	}
	return ids
}

// RuleInfo describes one built-in check.
type RuleInfo struct {
	ID          string `json:"id"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
	HelpURL     string `json:"help_url"`
}

// Rules returns metadata for every built-in check.
func (e *Engine) Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(e.rules))
	for _, r := range e.rules {
		infos = append(infos, RuleInfo{ID: r.id, Impact: r.impact, Description: r.description, HelpURL: helpURL(r.id)})
	}
	return infos
}

func (e *Engine) Evaluate(ctx context.Context, page *domain.RenderResult) ([]domain.RawViolation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("parsing dom snapshot: %w", err)
	}

	var out []domain.RawViolation
	for _, r := range e.rules {
		targets := r.check(doc)
		if len(targets) == 0 {
			continue
		}
		out = append(out, domain.RawViolation{
			RuleID:      r.id,
			Impact:      r.impact,
			Description: r.description,
			HelpURL:     helpURL(r.id),
			Targets:     targets,
		})
	}
	return out, nil
}
