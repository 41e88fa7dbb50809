package pdfgen

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// networkQuietWindow is how long the page must go without in-flight
// network activity before it counts as loaded.
const networkQuietWindow = 500 * time.Millisecond

// RendererConfig is resolved once at startup and passed into
// [NewChromeRenderer]. It is never re-evaluated per request.
type RendererConfig struct {
	// ExecPath points at an explicit Chrome/Chromium binary. Empty means
	// chromedp's standard lookup of a locally installed browser.
	ExecPath string

	// DownloadBrowser resolves a managed Chromium binary through rod's
	// launcher instead of relying on a system install. Intended for
	// constrained/production deployments.
	DownloadBrowser bool

	// Timeout bounds a single render, including the network-idle wait.
	// Defaults to 30 seconds. Zero or negative disables the bound.
	Timeout time.Duration
}

// ChromeRenderer drives a headless Chrome session to paginate HTML and
// export it as PDF.
//
// Each call to [ChromeRenderer.Render] launches a fresh browser session,
// uses it exclusively, and tears it down before returning. There is no
// session pooling: requests stay isolated from each other at the cost of
// per-request launch time.
type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewChromeRenderer builds a renderer from cfg. When cfg.DownloadBrowser
// is set and no explicit path is given, the browser binary is resolved
// (and downloaded if needed) here, so deployment problems surface at
// startup rather than on the first request.
func NewChromeRenderer(cfg RendererConfig) (*ChromeRenderer, error) {
	execPath := cfg.ExecPath
	if execPath == "" && cfg.DownloadBrowser {
		p, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		execPath = p
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &ChromeRenderer{execPath: execPath, timeout: timeout}, nil
}

// Render lays out html in a headless browser session and exports it as
// paginated PDF bytes. footerHTML is repeated on every page with its
// pageNumber/totalPages spans substituted by the engine. The header
// template is left empty and background graphics are always printed.
//
// The session is torn down on every exit path. Failures are reported as
// [*RenderError]; nothing is retried.
func (r *ChromeRenderer) Render(ctx context.Context, html, footerHTML string, opts PageOptions) ([]byte, error) {
	resolved := opts.resolved()

	marginTop, marginRight, marginBottom, marginLeft, err := resolved.marginInches()
	if err != nil {
		return nil, &RenderError{Stage: "export", Err: err}
	}
	width, height := resolved.paperDimensions()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// The document is served from a temp file so relative asset handling
	// and data URIs behave exactly as in a regular page load.
	f, err := os.CreateTemp("", "pdfgen-*.html")
	if err != nil {
		return nil, &RenderError{Stage: "load", Err: err}
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, &RenderError{Stage: "load", Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &RenderError{Stage: "load", Err: err}
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, &RenderError{Stage: "load", Err: err}
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	// The first Run against a fresh tab context starts the browser.
	if err := chromedp.Run(tabCtx, network.Enable()); err != nil {
		return nil, &RenderError{Stage: "launch", Err: err}
	}

	idle, loaded := trackNetworkIdle(tabCtx)

	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return nil, &RenderError{Stage: "load", Err: err}
	}
	loaded()

	select {
	case <-idle:
	case <-tabCtx.Done():
		return nil, &RenderError{Stage: "load", Err: tabCtx.Err()}
	}

	var buf []byte
	if err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithLandscape(resolved.Orientation == Landscape).
			WithMarginTop(marginTop).
			WithMarginRight(marginRight).
			WithMarginBottom(marginBottom).
			WithMarginLeft(marginLeft).
			WithPrintBackground(true).
			WithDisplayHeaderFooter(true).
			WithHeaderTemplate("<div></div>").
			WithFooterTemplate(footerHTML).
			Do(ctx)
		return err
	})); err != nil {
		return nil, &RenderError{Stage: "export", Err: err}
	}

	return buf, nil
}

// allocatorOptions builds the launch flags. Sandboxing is disabled
// explicitly: the service runs as an unprivileged container user and the
// documents it loads are its own generated HTML.
func (r *ChromeRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-accelerated-2d-canvas", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}
	return opts
}

// trackNetworkIdle watches CDP network events on ctx and returns a
// channel that closes once no requests have been in flight for
// [networkQuietWindow], plus a function the caller invokes once
// navigation has completed. Listening starts immediately so requests
// issued during navigation are counted, but the quiet window stays
// unarmed until that call: browser launch alone can outlast the window,
// and an idle signal from before the page even started loading would be
// meaningless. Requests still in flight at that point keep the window
// unarmed until they finish.
func trackNetworkIdle(ctx context.Context) (<-chan struct{}, func()) {
	idle := make(chan struct{})

	var (
		mu       sync.Mutex
		inflight int
		started  bool
		closed   bool
		timer    *time.Timer
	)
	arm := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(networkQuietWindow, func() {
			mu.Lock()
			defer mu.Unlock()
			if !closed && inflight == 0 {
				closed = true
				close(idle)
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			mu.Lock()
			inflight++
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			mu.Lock()
			if inflight > 0 {
				inflight--
			}
			if started && inflight == 0 && !closed {
				arm()
			}
			mu.Unlock()
		}
	})

	// Stop the pending timer when the session ends so a canceled render
	// does not leave it running out its window.
	go func() {
		<-ctx.Done()
		mu.Lock()
		closed = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	loaded := func() {
		mu.Lock()
		started = true
		if inflight == 0 && !closed {
			arm()
		}
		mu.Unlock()
	}
	return idle, loaded
}
