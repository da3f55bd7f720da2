package pdf

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size and the canonical margin contract, in inches. Pagination is
// browser-native: templates do not emit @page rules, margins live here.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.5
	pdfScale          = 1.0
)

// launchTimeout bounds browser startup, which is separate from page render
// time and usually fails fast when the environment has no Chrome at all.
const launchTimeout = 30 * time.Second

// Browser renders a self-contained HTML document to PDF bytes. One Browser
// is launched per export call and must be closed by the caller on every exit
// path; leaking OS browser processes is the principal resource concern of
// the pipeline.
type Browser interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// LaunchFunc starts a Browser. The exporter takes one as a field so tests can
// inject a fake and count launches against closes.
type LaunchFunc func(ctx context.Context) (Browser, error)

type chromiumBrowser struct {
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// LaunchChromium starts a dedicated headless Chromium process. The browser's
// lifetime is owned by Close, not by ctx; ctx only bounds the startup wait.
// CHROME_PATH overrides binary discovery.
func LaunchChromium(ctx context.Context) (Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	b := &chromiumBrowser{
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}

	// Run with no actions to force the browser process to start now, so
	// launch failures surface here instead of mid-render.
	startCtx, cancel := context.WithTimeout(browserCtx, launchTimeout)
	defer cancel()
	if err := chromedp.Run(startCtx); err != nil {
		b.Close()
		return nil, &BrowserError{Message: "failed to launch headless browser", Cause: err}
	}

	// Propagate early caller cancellation into the startup wait.
	select {
	case <-ctx.Done():
		b.Close()
		return nil, &BrowserError{Message: "launch canceled", Cause: ctx.Err()}
	default:
	}

	return b, nil
}

// RenderPDF loads the document into a fresh tab and prints it with the fixed
// configuration: A4 portrait, 0.5in margins, print background, scale 1.0.
func (b *chromiumBrowser) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.browserCtx)
	defer tabCancel()

	// Bridge the caller's deadline into the chromedp context chain.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			tabCancel()
		case <-done:
		}
	}()

	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithScale(pdfScale).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		// Report the caller's deadline, not the secondary tab-cancel error.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return buf, nil
}

// Close tears down the tab contexts and the browser process.
func (b *chromiumBrowser) Close() error {
	if b.browserCancel != nil {
		b.browserCancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
	return nil
}
