package printing

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// A4 in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// DefaultTimeout bounds a single print, browser start included.
const DefaultTimeout = 60 * time.Second

// chromeCandidates are looked up on PATH when no explicit binary is configured.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// Printer prints HTML pages through a headless Chrome instance started per call.
type Printer struct {
	chromePath string
	timeout    time.Duration
	logger     *zap.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithChromePath pins the Chrome binary instead of letting chromedp search for it.
func WithChromePath(path string) Option {
	return func(p *Printer) { p.chromePath = path }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Printer) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewPrinter creates a Printer. A nil logger disables logging.
func NewPrinter(logger *zap.Logger, opts ...Option) *Printer {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Printer{timeout: DefaultTimeout, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FindChrome returns the configured binary when set, else the first known
// Chrome executable on PATH. ok is false when none is available.
func FindChrome(configured string) (string, bool) {
	if configured != "" {
		if path, err := exec.LookPath(configured); err == nil {
			return path, true
		}
		return "", false
	}
	for _, name := range chromeCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, true
		}
	}
	return "", false
}

// PrintPDF loads the page into a blank tab and prints it on A4 paper,
// honouring any @page rule in the document.
func (p *Printer) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	if len(html) == 0 {
		return nil, &Error{Message: "nothing to print: page is empty"}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancel := context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &Error{Message: "failed to print page", Cause: err}
	}

	p.logger.Debug("Printed page",
		zap.Int("html_bytes", len(html)),
		zap.Int("pdf_bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return pdf, nil
}

// PageCount parses a PDF and reports how many pages it has.
func PageCount(pdf []byte) (int, error) {
	if len(pdf) == 0 {
		return 0, &Error{Message: "failed to read PDF: no data"}
	}
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdf), conf)
	if err != nil {
		return 0, &Error{Message: "failed to read PDF", Cause: err}
	}
	return ctx.PageCount, nil
}
