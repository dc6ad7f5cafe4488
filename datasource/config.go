package datasource

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration
type Config struct {
	// Historical observation endpoint and station
	Historical struct {
		BaseURL    string `json:"baseUrl"`
		LocationID string `json:"locationId"`
	} `json:"historical"`

	// Forecast station (the feed itself is still mocked)
	Forecast struct {
		LocationID string `json:"locationId"`
	} `json:"forecast"`

	// Timezone the betting week is anchored to
	Timezone string `json:"timezone"`

	// Precipitation above this many mm counts as rain
	RainThresholdMM float64 `json:"rainThresholdMm"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig creates a default configuration targeting the Tokyo
// stations the page was built around
func DefaultConfig() *Config {
	config := &Config{}
	config.Historical.BaseURL = DefaultHistoricalBaseURL
	config.Historical.LocationID = "47662"
	config.Forecast.LocationID = "44132"
	config.Timezone = "Asia/Tokyo"
	config.RainThresholdMM = 0.0
	return config
}
