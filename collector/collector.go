// Package collector fans out historical-result lookups across a span of
// past days so the recent-results strip can be served in one round trip.
package collector

import (
	"context"
	"sort"
	"sync"
	"time"

	"rainbet-service/models"
)

// ResultSource provides the observed rainfall outcome for a single day
type ResultSource interface {
	HistoricalResult(ctx context.Context, date string) (models.HistoricalResult, error)
}

// ResultCollector collects historical results for many days concurrently
type ResultCollector struct {
	source       ResultSource
	fetchTimeout time.Duration
}

// NewResultCollector creates a collector over the given result source
func NewResultCollector(source ResultSource) *ResultCollector {
	return &ResultCollector{
		source:       source,
		fetchTimeout: 10 * time.Second, // Default timeout per lookup
	}
}

// SetFetchTimeout changes the per-lookup timeout
func (rc *ResultCollector) SetFetchTimeout(timeout time.Duration) {
	rc.fetchTimeout = timeout
}

// Collect fetches the result for every given date concurrently and returns
// them ordered by date. A lookup that errors out (malformed date) is folded
// into a FetchFailed result so one bad day never sinks the whole span.
func (rc *ResultCollector) Collect(ctx context.Context, dates []string) []models.HistoricalResult {
	out := make(chan models.HistoricalResult, len(dates))

	var wg sync.WaitGroup
	for _, date := range dates {
		wg.Add(1)
		go func(d string) {
			defer wg.Done()
			out <- rc.collectOne(ctx, d)
		}(date)
	}

	wg.Wait()
	close(out)

	results := make([]models.HistoricalResult, 0, len(dates))
	for result := range out {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date < results[j].Date
	})
	return results
}

// collectOne performs a single bounded lookup
func (rc *ResultCollector) collectOne(ctx context.Context, date string) models.HistoricalResult {
	fetchCtx, cancel := context.WithTimeout(ctx, rc.fetchTimeout)
	defer cancel()

	result, err := rc.source.HistoricalResult(fetchCtx, date)
	if err != nil {
		return models.HistoricalResult{Date: date, FetchFailed: true}
	}
	return result
}
