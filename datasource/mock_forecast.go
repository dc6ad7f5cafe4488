package datasource

import (
	"context"
	"encoding/json"
)

// MockForecastAPI is a stand-in for the forecast feed that does not exist
// yet. It always succeeds and always returns the same mock payload.
type MockForecastAPI struct{}

// Ensure MockForecastAPI implements ForecastAdapter
var _ ForecastAdapter = (*MockForecastAPI)(nil)

// NewMockForecastAPI creates the stub forecast adapter
func NewMockForecastAPI() *MockForecastAPI {
	return &MockForecastAPI{}
}

// Name returns the adapter name
func (m *MockForecastAPI) Name() string {
	return "MockForecast"
}

// FetchForecastData returns the fixed stub payload. There is no error path.
func (m *MockForecastAPI) FetchForecastData(ctx context.Context, locationID string) Payload {
	body, _ := json.Marshal(map[string]string{
		"status":  StatusMock,
		"message": "forecast API not implemented",
	})
	return Payload{
		Body:   body,
		Status: StatusMock,
	}
}
