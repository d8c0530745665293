package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// PageFetcher fetches pages with a static browser-like header set. One
// blocking request per call, no retries.
type PageFetcher struct {
	client  *resty.Client
	headers map[string]string
}

// NewPageFetcher creates a fetcher with the given request timeout and headers.
func NewPageFetcher(timeout time.Duration, headers map[string]string) *PageFetcher {
	return &PageFetcher{
		client:  resty.New().SetTimeout(timeout),
		headers: headers,
	}
}

// FetchPage retrieves the raw markup at pageURL.
func (f *PageFetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeaders(f.headers).
		Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s returned status %d", pageURL, resp.StatusCode())
	}
	return string(resp.Body()), nil
}

// FetchDocument retrieves pageURL and parses it into a traversable tree.
func (f *PageFetcher) FetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	raw, err := f.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}
	return doc, nil
}
