package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/normalisers/html"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond caps the crawl rate per fetcher.
	DefaultRequestsPerSecond = 2

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes = 10 << 20 // 10 MiB

	userAgent = "admit-cli/1.0 (+https://github.com/admitlab/admit-cli)"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Fetcher downloads HTML pages and extracts their readable text.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client, used in tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithRequestsPerSecond overrides the crawl rate.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// New creates a rate-limited page fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads a single page and returns its title and plain text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (title, text string, err error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", url, err)
	}

	title, text = html.Extract(body, url)
	return title, text, nil
}
