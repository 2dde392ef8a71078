// Package http provides an HTTP-based implementation of orgscout.Fetcher
// for institutional pages that don't require JavaScript rendering.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/orgscout"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies as a desktop browser; many institutional
// sites serve reduced pages or 403 to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// MaxBodySize caps the bytes read from one response.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements orgscout.Fetcher at compile time.
var _ orgscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests. Bodies are
// decoded to UTF-8 using the declared or sniffed charset.
//
// Each call makes one attempt. Failures carry EUNAVAILABLE when a retry
// may succeed (network errors, 429, 5xx), ENOTFOUND for 404 and 410, and
// EINVALID for other client errors and malformed URLs.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", orgscout.Errorf(orgscout.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", orgscout.Errorf(orgscout.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", orgscout.Errorf(orgscout.EINVALID, "decode %s: %v", url, err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", orgscout.Errorf(orgscout.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// statusError maps a non-2xx status to a coded error.
func statusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests || status >= 500:
		return orgscout.Errorf(orgscout.EUNAVAILABLE, "HTTP %d for %s", status, url)
	case status == http.StatusNotFound || status == http.StatusGone:
		return orgscout.Errorf(orgscout.ENOTFOUND, "HTTP %d for %s", status, url)
	}
	return orgscout.Errorf(orgscout.EINVALID, "HTTP %d for %s", status, url)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
