// Package fetch abstracts page retrieval so the pipeline can switch between a
// plain HTTP client and a headless browser for JS-rendered pages.
package fetch

import (
	"context"
	"fmt"
	"io"

	"famgo/mogoherald/helpers"
)

// Fetcher returns the rendered HTML of a URL. Retry policy is the caller's
// concern; implementations make one attempt.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages with browser-like headers over plain HTTP
type HTTPFetcher struct{}

// NewHTTPFetcher creates the plain HTTP fetch strategy
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{}
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := helpers.FetchWithRandomHeaders(ctx, url)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(data), nil
}
