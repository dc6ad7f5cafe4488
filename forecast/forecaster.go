// Package forecast turns raw adapter payloads into the day-level records
// the betting page works with: a synthetic 7-day rain forecast and observed
// historical results.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rainbet-service/datasource"
	"rainbet-service/models"
)

// MockSourceText is the disclosure shown next to every forecast while the
// forecast feed is mocked.
const MockSourceText = "Forecast is currently mocked; a live forecast API can be swapped in."

// mockYesterdayPrecipitationMM is the fixed observed rainfall shown in the
// yesterday's-result panel while real results are display-only mocks.
const mockYesterdayPrecipitationMM = 15.5

// Forecaster produces the weekly forecast and historical results from the
// two data source adapters
type Forecaster struct {
	forecastAdapter      datasource.ForecastAdapter
	historicalAdapter    datasource.HistoricalAdapter
	forecastLocationID   string
	historicalLocationID string
	location             *time.Location
	rainThresholdMM      float64

	now func() time.Time // injectable clock for tests
}

// New creates a Forecaster anchored to the given timezone. Precipitation
// strictly above thresholdMM counts as rain.
func New(
	forecastAdapter datasource.ForecastAdapter,
	historicalAdapter datasource.HistoricalAdapter,
	forecastLocationID, historicalLocationID string,
	loc *time.Location,
	thresholdMM float64,
) *Forecaster {
	return &Forecaster{
		forecastAdapter:      forecastAdapter,
		historicalAdapter:    historicalAdapter,
		forecastLocationID:   forecastLocationID,
		historicalLocationID: historicalLocationID,
		location:             loc,
		rainThresholdMM:      thresholdMM,
		now:                  time.Now,
	}
}

// WeeklyForecast returns one DayForecast per day for the next 7 days,
// starting tomorrow in the configured timezone. While the forecast adapter
// only serves mock data, rain days are synthesized on a fixed alternating
// pattern: even day offsets rain (10.0 mm), odd offsets stay dry.
func (f *Forecaster) WeeklyForecast(ctx context.Context) []models.DayForecast {
	payload := f.forecastAdapter.FetchForecastData(ctx, f.forecastLocationID)

	source := f.forecastAdapter.Name()
	if payload.Status == datasource.StatusMock {
		source = MockSourceText
	}

	now := f.now().In(f.location)
	forecasts := make([]models.DayForecast, 0, 7)
	for offset := 1; offset <= 7; offset++ {
		isRain := offset%2 == 0

		precipitation := 0.0
		if isRain {
			precipitation = 10.0
		}

		forecasts = append(forecasts, models.DayForecast{
			Date:            now.AddDate(0, 0, offset).Format(models.DateLayout),
			PrecipitationMM: precipitation,
			IsRainForecast:  isRain,
			Source:          source,
		})
	}
	return forecasts
}

// HistoricalResult looks up the observed rainfall for the given day. A
// malformed date is a hard error. An upstream fetch failure is not: it
// yields a FetchFailed result and a nil error, mirroring the adapter's
// fail-soft contract.
func (f *Forecaster) HistoricalResult(ctx context.Context, dateStr string) (models.HistoricalResult, error) {
	day, err := time.ParseInLocation(models.DateLayout, dateStr, f.location)
	if err != nil {
		return models.HistoricalResult{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	payload := f.historicalAdapter.FetchHistoricalRainfall(ctx, f.historicalLocationID)
	if payload.Failed() {
		return models.HistoricalResult{
			Date:        day.Format(models.DateLayout),
			FetchFailed: true,
		}, nil
	}

	precipitation := extractPrecipitation(payload.Body)
	return models.HistoricalResult{
		Date:            day.Format(models.DateLayout),
		PrecipitationMM: precipitation,
		IsRainResult:    precipitation > f.rainThresholdMM,
	}, nil
}

// RecentPastDates returns the last n calendar dates ending yesterday in the
// configured timezone, oldest first.
func (f *Forecaster) RecentPastDates(n int) []string {
	now := f.now().In(f.location)
	dates := make([]string, 0, n)
	for i := n; i >= 1; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format(models.DateLayout))
	}
	return dates
}

// YesterdayResult returns the fixed mock result for yesterday in the
// configured timezone, used by the result-announcement panel.
func (f *Forecaster) YesterdayResult() models.HistoricalResult {
	yesterday := f.now().In(f.location).AddDate(0, 0, -1)
	return models.HistoricalResult{
		Date:            yesterday.Format(models.DateLayout),
		PrecipitationMM: mockYesterdayPrecipitationMM,
		IsRainResult:    mockYesterdayPrecipitationMM > f.rainThresholdMM,
	}
}

// extractPrecipitation pulls the precipitation amount out of the raw
// upstream body. The endpoint's real schema is unconfirmed, so this is kept
// as an isolated step that can be corrected in one place; anything missing
// or unparseable defaults to 0.0 mm.
func extractPrecipitation(raw json.RawMessage) float64 {
	var body struct {
		Precipitation float64 `json:"precipitation"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0.0
	}
	return body.Precipitation
}
