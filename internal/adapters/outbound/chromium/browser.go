// Package chromium implements the renderer and rule-engine ports on a
// headless Chrome driven through chromedp. This is the default backend: it
// sees the page the way users do, after scripts have run, and executes the
// real axe-core engine inside the page.
package chromium

import (
	"context"

	"github.com/chromedp/chromedp"
)

// Browser owns one headless Chrome process. Renderers and engines created
// from it open a fresh tab context per page so no cookies or storage leak
// between visits.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowser launches the exec allocator. Close must be called to reap the
// Chrome process.
func NewBrowser(ctx context.Context) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("incognito", true),
		chromedp.WindowSize(1280, 800),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	return &Browser{allocCtx: allocCtx, cancel: cancel}
}

func (b *Browser) Close() {
	b.cancel()
}

// tab opens an isolated page context honoring the caller's cancellation and
// deadline. chromedp contexts descend from the allocator, not the caller, so
// the caller's signals are bridged onto the tab explicitly.
func (b *Browser) tab(ctx context.Context) (context.Context, context.CancelFunc) {
	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx)
	if deadline, ok := ctx.Deadline(); ok {
		var cancelDl context.CancelFunc
		tabCtx, cancelDl = context.WithDeadline(tabCtx, deadline)
		inner := cancelTab
		cancelTab = func() { cancelDl(); inner() }
	}
	stop := context.AfterFunc(ctx, func() { cancelTab() })
	cancel := cancelTab
	return tabCtx, func() { stop(); cancel() }
}

// NewRenderer returns a PageRenderer backed by this browser.
func (b *Browser) NewRenderer() *Renderer {
	return &Renderer{browser: b}
}

// NewEngine returns an axe-core RuleEngine backed by this browser. The axe
// script is fetched from scriptURL once, on first use.
func (b *Browser) NewEngine(scriptURL string) *Engine {
	return &Engine{browser: b, script: newAxeScript(scriptURL)}
}
