package chromium

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// Renderer loads pages in a headless tab and snapshots the DOM after the
// load event, so client-rendered markup is visible to the rules.
type Renderer struct {
	browser *Browser
}

var _ domain.PageRenderer = (*Renderer)(nil)

const harvestLinksJS = `Array.from(document.querySelectorAll('a[href]')).map(a => a.href)`

// Render navigates a fresh tab to url and captures the final URL, document
// title, serialized DOM and anchor hrefs. The main-document HTTP status is
// taken from the network response event; 4xx/5xx pages fail the visit.
func (r *Renderer) Render(ctx context.Context, url string) (*domain.RenderResult, error) {
	tabCtx, cancel := r.browser.tab(ctx)
	defer cancel()

	// Events arrive on chromedp's own goroutine.
	var status atomic.Int64
	chromedp.ListenTarget(tabCtx, func(ev any) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok || resp.Type != network.ResourceTypeDocument {
			return
		}
		status.CompareAndSwap(0, resp.Response.Status)
	})

	res := &domain.RenderResult{URL: url}
	err := chromedp.Run(tabCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.Location(&res.FinalURL),
		chromedp.Title(&res.Title),
		chromedp.OuterHTML("html", &res.HTML, chromedp.ByQuery),
		chromedp.Evaluate(harvestLinksJS, &res.Links),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, navError(err)
	}
	res.HTTPStatus = int(status.Load())
	if res.HTTPStatus >= 400 {
		return nil, &domain.NavigationError{
			Reason:     domain.LoadFailureHTTP,
			StatusCode: res.HTTPStatus,
		}
	}
	res.Title = strings.TrimSpace(res.Title)
	return res, nil
}

// navError maps Chrome's net error strings onto load-failure reasons.
func navError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "ERR_NAME_NOT_RESOLVED"),
		strings.Contains(msg, "ERR_NAME_RESOLUTION_FAILED"):
		return &domain.NavigationError{Reason: domain.LoadFailureDNS, Err: err}
	case strings.Contains(msg, "ERR_TIMED_OUT"),
		strings.Contains(msg, "ERR_CONNECTION_TIMED_OUT"):
		return &domain.NavigationError{Reason: domain.LoadFailureTimeout, Err: err}
	default:
		return &domain.NavigationError{Reason: domain.LoadFailureUnknown, Err: err}
	}
}
