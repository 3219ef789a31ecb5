package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// DefaultWeatherAPIBaseURL is the WeatherAPI.com current conditions endpoint
const DefaultWeatherAPIBaseURL = "http://api.weatherapi.com/v1/current.json"

const placeholderAPIKey = "REPLACE_WITH_REAL_KEY"

// Provider fetches current conditions for a city from an upstream source
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (*ProviderResult, error)
}

// ProviderResult keeps the upstream body verbatim next to its decoded form
type ProviderResult struct {
	Raw     json.RawMessage
	Payload ProviderPayload
}

// ProviderPayload represents the WeatherAPI.com current.json response
type ProviderPayload struct {
	Location struct {
		Name      *string  `json:"name,omitempty"`
		Region    *string  `json:"region,omitempty"`
		Country   *string  `json:"country,omitempty"`
		Lat       *float64 `json:"lat,omitempty"`
		Lon       *float64 `json:"lon,omitempty"`
		TZID      string   `json:"tz_id,omitempty"`
		Localtime string   `json:"localtime,omitempty"`
	} `json:"location"`
	Current struct {
		TempC      *float64 `json:"temp_c,omitempty"`
		FeelsLikeC *float64 `json:"feelslike_c,omitempty"`
		Humidity   *float64 `json:"humidity,omitempty"`
		PressureMB *float64 `json:"pressure_mb,omitempty"`
		Cloud      *float64 `json:"cloud,omitempty"`
		WindKPH    *float64 `json:"wind_kph,omitempty"`
		WindDegree *float64 `json:"wind_degree,omitempty"`
		Condition  struct {
			Text string  `json:"text,omitempty"`
			Icon *string `json:"icon,omitempty"`
			Code int     `json:"code,omitempty"`
		} `json:"condition"`
	} `json:"current"`
	Error *ProviderError `json:"error,omitempty"`
}

// ProviderError is the error object WeatherAPI.com embeds in failed responses
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WeatherAPIClient handles WeatherAPI.com requests
type WeatherAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherAPIClient creates a new WeatherAPI.com client
func NewWeatherAPIClient(apiKey, baseURL string) *WeatherAPIClient {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIBaseURL
	}
	return &WeatherAPIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Name returns the provider label reported in response metadata
func (c *WeatherAPIClient) Name() string {
	return "WeatherAPI.com"
}

// Current fetches current weather for a city
func (c *WeatherAPIClient) Current(ctx context.Context, city string) (*ProviderResult, error) {
	if c.apiKey == "" || c.apiKey == placeholderAPIKey {
		return nil, newError("WeatherAPI key is not configured.", nil)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", city)
	params.Set("aqi", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("weather: error calling WeatherAPI: %v", err)
		return nil, newError("Failed to contact weather provider.", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("weather: error reading WeatherAPI response: %v", err)
		return nil, newError("Failed to contact weather provider.", err)
	}

	// WeatherAPI reports most failures through an "error" object, often with a 4xx status
	var payload ProviderPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("weather: failed to parse WeatherAPI response: %s", body)
		return nil, newError("Invalid response from weather provider.", err)
	}

	if payload.Error != nil {
		msg := payload.Error.Message
		if msg == "" {
			msg = "Unknown error from WeatherAPI."
		}
		log.Printf("weather: WeatherAPI error %d: %s", payload.Error.Code, msg)
		return nil, newError("Weather provider error: "+msg, nil)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("weather: WeatherAPI HTTP error %d: %s", resp.StatusCode, body)
		return nil, newError(fmt.Sprintf("Weather provider HTTP error %d.", resp.StatusCode), nil)
	}

	return &ProviderResult{Raw: json.RawMessage(body), Payload: payload}, nil
}
