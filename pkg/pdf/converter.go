package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches, with the 20px print margins the invoice layout assumes.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 20.0 / 96.0
)

// RenderError wraps a headless-browser launch or render failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "pdf: render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// Converter renders HTML to PDF through a shared headless Chrome instance.
// The browser allocator lives for the process; each Convert call opens its
// own tab and tears it down on every exit path.
type Converter struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

func NewConverter() *Converter {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("ignore-certificate-errors", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Converter{
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  30 * time.Second,
	}
}

// Close releases the shared browser allocator.
func (c *Converter) Close() {
	c.cancel()
}

// Convert renders the given HTML document and returns the PDF bytes. The
// document is loaded into a blank tab and the body awaited before printing,
// so stylesheets are applied by the time the PDF is produced.
func (c *Converter) Convert(ctx context.Context, html string) ([]byte, error) {
	ctx, cancelTimeout := context.WithTimeout(ctx, c.timeout)
	defer cancelTimeout()

	tabCtx, cancelTab := chromedp.NewContext(c.allocCtx)
	defer cancelTab()

	// Propagate the caller deadline to the tab.
	go func() {
		select {
		case <-ctx.Done():
			cancelTab()
		case <-tabCtx.Done():
		}
	}()

	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPrintBackground(true).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("print to pdf: %w", err)}
	}
	return buf, nil
}
