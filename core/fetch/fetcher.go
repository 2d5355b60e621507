// Package fetch implements the Fetcher interface.
// Plain pages come from a timed HTTP GET. Pages that build their body with
// JavaScript can go through a headless renderer first, with the GET as the
// fallback.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/updatesheet/core"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	AcceptHTML = "text/html,application/xhtml+xml"
	AcceptFeed = "application/rss+xml,application/xml,text/xml"
)

// ErrUnexpectedStatus is wrapped by Fetch for any non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Config controls the HTTP path and the optional render path.
type Config struct {
	UserAgent string
	Accept    string
	Timeout   time.Duration

	// RenderWhen selects the URLs that are rendered before falling back to GET.
	// Nil disables rendering.
	RenderWhen func(url string) bool
	// ReadySelector is passed to the renderer as its readiness condition.
	ReadySelector string
}

// HTTPFetcher fetches web pages via HTTP, optionally rendering some of them
// in a headless browser first.
type HTTPFetcher struct {
	client   *http.Client
	cfg      Config
	renderer core.Renderer
	logger   *slog.Logger
}

// New creates an HTTPFetcher. renderer may be nil when no browser is
// available; the render path is then skipped for every URL.
func New(cfg Config, renderer core.Renderer, logger *slog.Logger) *HTTPFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Accept == "" {
		cfg.Accept = AcceptHTML
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPFetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
	}
}

// Fetch retrieves the HTML content of the given URL. Render failures are
// logged and fall through to a plain GET; GET failures are returned.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	if f.renderer != nil && f.cfg.RenderWhen != nil && f.cfg.RenderWhen(url) {
		f.logger.Debug("rendering page", "url", url)
		html, err := f.renderer.Render(ctx, url, f.cfg.ReadySelector)
		if err == nil && strings.TrimSpace(html) != "" {
			return &core.FetchResult{URL: url, HTML: html, Rendered: true}, nil
		}
		f.logger.Warn("render failed, falling back to HTTP GET", "url", url, "error", err)
	}
	return f.get(ctx, url)
}

func (f *HTTPFetcher) get(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", f.cfg.Accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d for %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// DefaultRenderRules select Azure update detail pages, whose body is filled
// in client-side.
var DefaultRenderRules = [][]string{{"azure.microsoft.com", "/updates"}}

// MatchAll builds a render predicate that requires every fragment to appear
// in the URL. Each rule is a list of fragments; any matching rule selects the URL.
func MatchAll(rules [][]string) func(string) bool {
	return func(url string) bool {
		for _, rule := range rules {
			if len(rule) == 0 {
				continue
			}
			ok := true
			for _, fragment := range rule {
				if !strings.Contains(url, fragment) {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
		return false
	}
}
