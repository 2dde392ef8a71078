package crawl

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/orgscout"
	"golang.org/x/time/rate"
)

// DefaultRequestInterval paces requests to one host.
const DefaultRequestInterval = time.Second

var _ orgscout.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per host using token buckets. Hosts are
// keyed without case or a leading "www.", so www.bhsu.edu and bhsu.edu
// share one bucket. Different hosts proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second to each host, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
	}
}

// NewDomainLimiterEvery creates a DomainLimiter allowing one request per
// interval to each host. A non-positive interval disables pacing.
func NewDomainLimiterEvery(interval time.Duration) *DomainLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := strings.TrimPrefix(strings.ToLower(domain), "www.")

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
