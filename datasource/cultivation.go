package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultHistoricalBaseURL is the public past-observation endpoint backed by
// JMA open data.
const DefaultHistoricalBaseURL = "https://api.cultivationdata.net/past"

// fetchTimeout bounds the single outbound read; no retries are performed.
const fetchTimeout = 5 * time.Second

// CultivationHistoricalAPI fetches past rainfall observations from
// cultivationdata.net. Failures are mapped to a failed Payload rather than
// returned as errors, per the adapter contract.
type CultivationHistoricalAPI struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure CultivationHistoricalAPI implements HistoricalAdapter
var _ HistoricalAdapter = (*CultivationHistoricalAPI)(nil)

// NewCultivationHistoricalAPI creates a historical adapter against the
// public cultivationdata.net endpoint
func NewCultivationHistoricalAPI() *CultivationHistoricalAPI {
	return NewCultivationHistoricalAPIWithBaseURL(DefaultHistoricalBaseURL)
}

// NewCultivationHistoricalAPIWithBaseURL creates a historical adapter
// against a custom endpoint (used by configuration and tests)
func NewCultivationHistoricalAPIWithBaseURL(baseURL string) *CultivationHistoricalAPI {
	return &CultivationHistoricalAPI{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Name returns the adapter name
func (c *CultivationHistoricalAPI) Name() string {
	return "CultivationData"
}

// FetchHistoricalRainfall issues one GET to the observation endpoint with
// the station number as a query parameter. On success the upstream JSON
// body is returned verbatim, unparsed; any transport failure or non-2xx
// status becomes a failed payload.
func (c *CultivationHistoricalAPI) FetchHistoricalRainfall(ctx context.Context, locationID string) Payload {
	params := url.Values{}
	params.Add("no", locationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return failedPayload(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failedPayload(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failedPayload(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failedPayload(fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body)))
	}

	return Payload{
		Body:   body,
		Status: StatusOK,
	}
}

// failedPayload converts an error into the fail-soft payload shape
func failedPayload(err error) Payload {
	return Payload{
		Status: StatusFailed,
		Err:    err.Error(),
	}
}
