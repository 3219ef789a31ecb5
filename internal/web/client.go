package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/climateassistant/backend/internal/domain"
)

// WeatherFetcher retrieves a weather response for a city
type WeatherFetcher interface {
	FetchWeather(ctx context.Context, city string) (*domain.WeatherResponse, error)
}

// APIClient consumes GET /api/weather over HTTP
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the weather endpoint rooted at baseURL
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchWeather issues the lookup. Non-2xx answers become *APIError, anything
// that prevents reading a 2xx body becomes *TransportError.
func (c *APIClient) FetchWeather(ctx context.Context, city string) (*domain.WeatherResponse, error) {
	endpoint := c.baseURL + "/api/weather?city=" + url.QueryEscape(city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, body),
		}
	}

	var data domain.WeatherResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if err := checkShape(body); err != nil {
		return nil, &TransportError{Err: err}
	}
	return &data, nil
}

// checkShape rejects a body that decodes but carries no location to render,
// such as null or an unrelated object
func checkShape(body []byte) error {
	var shape struct {
		Location *struct{} `json:"location"`
	}
	if err := json.Unmarshal(body, &shape); err != nil || shape.Location == nil {
		return errors.New("malformed response: missing location")
	}
	return nil
}

// errorMessage prefers the server-supplied error text
func errorMessage(status int, body []byte) string {
	var payload domain.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("Error: %d", status)
}
