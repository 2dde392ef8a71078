package orgscout

import "context"

// Fetcher retrieves HTML from URLs.
// Transient failures (network errors, 429, 5xx) carry EUNAVAILABLE and may
// be retried; permanent failures carry ENOTFOUND or EINVALID.
type Fetcher interface {
	// Fetch returns the HTML body of the URL decoded to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// URLSet tracks URLs already visited. Implementations may report false
// positives but never false negatives.
type URLSet interface {
	Add(url string)
	Test(url string) bool
}
