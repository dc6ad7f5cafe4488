package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedHistoricalSource wraps a HistoricalAdapter with rate limiting
// so the public observation endpoint is never hammered by page traffic.
type RateLimitedHistoricalSource struct {
	source  HistoricalAdapter
	limiter *rate.Limiter
	name    string
}

// Ensure RateLimitedHistoricalSource implements HistoricalAdapter
var _ HistoricalAdapter = (*RateLimitedHistoricalSource)(nil)

// NewRateLimitedHistoricalSource creates a new rate limited historical source
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedHistoricalSource(source HistoricalAdapter, rps float64, burst int) *RateLimitedHistoricalSource {
	return &RateLimitedHistoricalSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchHistoricalRainfall fetches observation data, respecting rate limits.
// A limiter wait aborted by context cancellation is mapped to a failed
// payload, preserving the adapter's no-error contract.
func (r *RateLimitedHistoricalSource) FetchHistoricalRainfall(ctx context.Context, locationID string) Payload {
	if err := r.limiter.Wait(ctx); err != nil {
		return failedPayload(fmt.Errorf("rate limit wait canceled: %w", err))
	}

	return r.source.FetchHistoricalRainfall(ctx, locationID)
}

// Name returns the source name
func (r *RateLimitedHistoricalSource) Name() string {
	return r.name
}
