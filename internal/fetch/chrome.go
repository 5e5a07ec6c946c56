package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Defaults for headless capture of the wiki's JS-rendered pages
const (
	DefaultChromeTimeout = 45 * time.Second

	// settleDelay gives client-side scripts time to fill in event blocks
	// after DOMContentLoaded
	settleDelay = 3 * time.Second

	chromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// ChromeFetcher renders a page in headless Chromium and returns the resulting
// DOM. Needed for pages whose event blocks are assembled client-side.
type ChromeFetcher struct {
	// Timeout bounds one whole fetch. If zero, DefaultChromeTimeout is used.
	Timeout time.Duration

	// ExecPath points at a specific Chromium binary; empty uses the default
	// lookup.
	ExecPath string
}

// NewChromeFetcher creates the headless-browser fetch strategy
func NewChromeFetcher(timeout time.Duration) *ChromeFetcher {
	return &ChromeFetcher{Timeout: timeout}
}

// Fetch implements Fetcher
func (f *ChromeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(chromeUserAgent),
		chromedp.NoSandbox,
	)
	if f.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(f.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	runCtx, runCancel := context.WithTimeout(browserCtx, timeout)
	defer runCancel()

	var html string
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(1280, 800),
		chromedp.Navigate(url),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}

	if err := chromedp.Run(runCtx, tasks); err != nil {
		return "", fmt.Errorf("fetch: chromedp run failed for %s: %w", url, err)
	}

	return html, nil
}
