package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	DefaultRenderWait    = 15 * time.Second
	DefaultRenderSleep   = 10 * time.Second
	DefaultReadySelector = "div.ocr-faq-item__body, div.content-area, article"

	navigateTimeout = 30 * time.Second
	probeTimeout    = 20 * time.Second
)

// ErrRenderUnavailable means no headless browser could be started.
var ErrRenderUnavailable = errors.New("headless rendering unavailable")

// ChromeRenderer renders pages in a headless Chrome via chromedp. Each call
// starts its own browser and always tears it down before returning.
type ChromeRenderer struct {
	allocOpts []chromedp.ExecAllocatorOption
	wait      time.Duration
	logger    *slog.Logger
}

// NewChromeRenderer configures a renderer. execPath may be empty to let
// chromedp locate Chrome itself.
func NewChromeRenderer(userAgent, execPath string, wait time.Duration, logger *slog.Logger) *ChromeRenderer {
	if wait <= 0 {
		wait = DefaultRenderWait
	}
	if logger == nil {
		logger = slog.Default()
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.NoSandbox,
	)
	if userAgent != "" {
		opts = append(opts, chromedp.UserAgent(userAgent))
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return &ChromeRenderer{allocOpts: opts, wait: wait, logger: logger}
}

// Probe starts and stops a browser once. Callers run it at startup and keep
// the result for the life of the process.
func (r *ChromeRenderer) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	return nil
}

// Render loads url and returns the document's outer HTML. With a
// readySelector it waits up to the configured time for a match and captures
// whatever is present on timeout. Without one it sleeps DefaultRenderSleep.
func (r *ChromeRenderer) Render(ctx context.Context, url, readySelector string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, navigateTimeout+r.wait)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx, chromedp.Navigate(url)); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}

	if readySelector != "" {
		waitCtx, cancelWait := context.WithTimeout(browserCtx, r.wait)
		err := chromedp.Run(waitCtx, chromedp.WaitReady(readySelector, chromedp.ByQuery))
		cancelWait()
		if err != nil {
			r.logger.Warn("timed out waiting for selector", "selector", readySelector, "url", url)
		}
	} else if err := chromedp.Run(browserCtx, chromedp.Sleep(DefaultRenderSleep)); err != nil {
		return "", fmt.Errorf("waiting for %s: %w", url, err)
	}

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("capturing %s: %w", url, err)
	}
	return html, nil
}
