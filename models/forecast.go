package models

// DateLayout is the wire format for calendar dates used throughout the service.
const DateLayout = "2006-01-02"

// DayForecast represents the rain forecast for a single calendar day
type DayForecast struct {
	Date            string  `json:"date"`            // ISO date (YYYY-MM-DD)
	PrecipitationMM float64 `json:"precipitationMm"` // forecast precipitation in mm
	IsRainForecast  bool    `json:"isRainForecast"`  // whether rain is forecast
	Source          string  `json:"source"`          // disclosure text for the forecast source
}

// HistoricalResult represents the observed rainfall outcome for a past day.
// FetchFailed marks a result whose upstream lookup failed; the numeric
// fields are meaningless in that case.
type HistoricalResult struct {
	Date            string  `json:"date"`
	PrecipitationMM float64 `json:"precipitationMm"`
	IsRainResult    bool    `json:"isRainResult"`
	FetchFailed     bool    `json:"fetchFailed,omitempty"`
}
