package datasource

import (
	"context"
	"encoding/json"
)

// Payload statuses. Adapters never return Go errors; callers inspect the
// payload status instead, so a failed upstream read can never panic or
// propagate a fault across the adapter boundary.
const (
	StatusOK     = "ok"
	StatusMock   = "mock_data"
	StatusFailed = "failed"
)

// Payload is the fail-soft result of an adapter fetch. On success Body
// carries the upstream JSON verbatim and unparsed; on failure Err carries
// the transport or HTTP error message.
type Payload struct {
	Body   json.RawMessage `json:"body,omitempty"`
	Status string          `json:"status"`
	Err    string          `json:"error,omitempty"`
}

// Failed reports whether the fetch behind this payload failed.
func (p Payload) Failed() bool {
	return p.Status == StatusFailed || p.Err != ""
}

// ForecastAdapter is the interface for services that can fetch raw forecast
// data for a location
type ForecastAdapter interface {
	// FetchForecastData fetches the raw forecast payload for a location
	FetchForecastData(ctx context.Context, locationID string) Payload

	// Name returns the adapter's name
	Name() string
}

// HistoricalAdapter is the interface for services that can fetch raw
// historical rainfall observations for a location
type HistoricalAdapter interface {
	// FetchHistoricalRainfall fetches the raw observation payload for a location
	FetchHistoricalRainfall(ctx context.Context, locationID string) Payload

	// Name returns the adapter's name
	Name() string
}
