package datasource

import (
	"context"
	"testing"
)

type countingAdapter struct {
	calls int
}

func (c *countingAdapter) FetchHistoricalRainfall(ctx context.Context, locationID string) Payload {
	c.calls++
	return Payload{Status: StatusOK}
}

func (c *countingAdapter) Name() string { return "Counting" }

func TestRateLimitedHistoricalSource_ForwardsWithinLimit(t *testing.T) {
	inner := &countingAdapter{}
	limited := NewRateLimitedHistoricalSource(inner, 100, 1)

	payload := limited.FetchHistoricalRainfall(context.Background(), "47662")
	if payload.Failed() {
		t.Fatalf("expected pass-through, got failure: %s", payload.Err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if limited.Name() != "Counting [Rate Limited]" {
		t.Errorf("unexpected name %q", limited.Name())
	}
}

func TestRateLimitedHistoricalSource_CanceledWaitIsFailSoft(t *testing.T) {
	inner := &countingAdapter{}
	// Zero rps with no burst can never grant a token
	limited := NewRateLimitedHistoricalSource(inner, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payload := limited.FetchHistoricalRainfall(ctx, "47662")
	if !payload.Failed() {
		t.Fatal("expected a failed payload when the limiter cannot grant a token")
	}
	if inner.calls != 0 {
		t.Errorf("inner adapter must not be called, got %d calls", inner.calls)
	}
}
