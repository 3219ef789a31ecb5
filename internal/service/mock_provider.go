package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MockProvider returns simulated seasonal weather for any city.
// Used when running without a WeatherAPI key in demo mode.
type MockProvider struct {
	now func() time.Time
}

// NewMockProvider creates a new mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{now: time.Now}
}

// Name returns the provider label reported in response metadata
func (p *MockProvider) Name() string {
	return "mock"
}

// Current returns simulated conditions based on the current month
func (p *MockProvider) Current(ctx context.Context, city string) (*ProviderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mock: %w", err)
	}

	var temp, feelsLike, windKPH float64
	var description string
	humidity, cloud := 65.0, 40.0

	switch month := p.now().Month(); {
	case month == 12 || month <= 2: // Winter
		temp, feelsLike = -8.0, -15.0
		description = "Light snow"
		windKPH, humidity, cloud = 14.4, 80, 90
	case month >= 3 && month <= 5: // Spring
		temp, feelsLike = 12.0, 10.0
		description = "Partly cloudy"
		windKPH = 10.8
	case month >= 6 && month <= 8: // Summer
		temp, feelsLike = 28.0, 30.0
		description = "Sunny"
		windKPH, humidity, cloud = 7.2, 45, 5
	default: // Autumn
		temp, feelsLike = 8.0, 5.0
		description = "Overcast"
		windKPH, cloud = 18.0, 100
	}

	var payload ProviderPayload
	name, country := city, "Mockland"
	lat, lon := 43.2389, 76.8897
	payload.Location.Name = &name
	payload.Location.Country = &country
	payload.Location.Lat = &lat
	payload.Location.Lon = &lon
	payload.Current.TempC = &temp
	payload.Current.FeelsLikeC = &feelsLike
	payload.Current.Humidity = &humidity
	pressure := 1015.0
	payload.Current.PressureMB = &pressure
	payload.Current.Cloud = &cloud
	payload.Current.WindKPH = &windKPH
	deg := 180.0
	payload.Current.WindDegree = &deg
	payload.Current.Condition.Text = description
	icon := "//cdn.weatherapi.com/weather/64x64/day/116.png"
	payload.Current.Condition.Icon = &icon

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mock: failed to marshal payload: %w", err)
	}

	return &ProviderResult{Raw: raw, Payload: payload}, nil
}
