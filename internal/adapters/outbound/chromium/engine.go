package chromium

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// Engine evaluates the axe-core ruleset against rendered page snapshots.
// Each evaluation loads the snapshot into a blank tab, injects the axe
// bundle and awaits axe.run; the tab is torn down afterwards.
type Engine struct {
	browser *Browser
	script  *axeScript
}

var _ domain.RuleEngine = (*Engine)(nil)

const runAxeJS = `axe.run(document, {resultTypes: ['violations']}).then(r => JSON.stringify(r.violations))`

// axeNode is the node shape inside an axe violation result.
type axeNode struct {
	Target []string `json:"target"`
}

type axeViolation struct {
	ID          string    `json:"id"`
	Impact      string    `json:"impact"`
	Description string    `json:"description"`
	HelpURL     string    `json:"helpUrl"`
	Nodes       []axeNode `json:"nodes"`
}

// Evaluate runs axe-core over the snapshot in res and returns one raw
// violation per axe result, carrying every matched node's selector.
func (e *Engine) Evaluate(ctx context.Context, res *domain.RenderResult) ([]domain.RawViolation, error) {
	source, err := e.script.load(ctx)
	if err != nil {
		return nil, err
	}

	tabCtx, cancel := e.browser.tab(ctx)
	defer cancel()

	var raw string
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		setDocumentContent(res.HTML),
		chromedp.Evaluate(source, nil),
		chromedp.Evaluate(runAxeJS, &raw, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("running axe-core on %s: %w", res.URL, err)
	}

	var axeViolations []axeViolation
	if err := json.Unmarshal([]byte(raw), &axeViolations); err != nil {
		return nil, fmt.Errorf("decoding axe-core results for %s: %w", res.URL, err)
	}

	raws := make([]domain.RawViolation, 0, len(axeViolations))
	for _, v := range axeViolations {
		rv := domain.RawViolation{
			RuleID:      v.ID,
			Impact:      v.Impact,
			Description: v.Description,
			HelpURL:     v.HelpURL,
		}
		for _, n := range v.Nodes {
			// Axe reports nested frame targets as a selector path; the
			// joined form still identifies the node for a human reader.
			rv.Targets = append(rv.Targets, strings.Join(n.Target, " "))
		}
		raws = append(raws, rv)
	}
	return raws, nil
}

// setDocumentContent replaces the blank tab's document with the snapshot
// HTML so axe sees the DOM exactly as it was rendered.
func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}
