package crawl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscout"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is called before each retry with the attempt about to start.
type RetryFunc func(url string, attempt int, err error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a URL with exponential backoff retry logic.
// It retries transient failures up to 3 times (4 total attempts) with
// delays of 1s, 2s, 4s.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, onRetry RetryFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, onRetry, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable delays.
// Only errors with code EUNAVAILABLE are retried; anything else is
// returned immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, onRetry RetryFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !IsTransient(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// IsTransient reports whether a fetch error may succeed on retry.
func IsTransient(err error) bool {
	return orgscout.ErrorCode(err) == orgscout.EUNAVAILABLE
}

var _ orgscout.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher wraps a Fetcher and retries transient failures.
type RetryFetcher struct {
	Fetcher orgscout.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// NewRetryFetcher wraps f with the default retry delays.
func NewRetryFetcher(f orgscout.Fetcher, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RetryFetcher{Fetcher: f, Delays: DefaultRetryDelays(), Logger: logger}
}

// Fetch fetches url, retrying transient failures.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, r.Fetcher.Fetch, func(url string, attempt int, err error) {
		if r.Logger != nil {
			r.Logger.Warn("retry", "url", url, "attempt", attempt, "error", err)
		}
	}, r.Delays)
}

// Close closes the wrapped fetcher.
func (r *RetryFetcher) Close() error {
	return r.Fetcher.Close()
}
