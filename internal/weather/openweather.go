package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

const (
	// DefaultOpenWeatherBaseURL is the public OpenWeather API host.
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

	minAPIKeyLength = 20
	maxErrorBody    = 512
)

// OpenWeatherConfig configures the OpenWeather client.
type OpenWeatherConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// OpenWeatherClient geocodes a destination and aggregates the 5-day/3-hour forecast into days.
type OpenWeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// OpenWeatherOption configures an OpenWeatherClient.
type OpenWeatherOption func(*OpenWeatherClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) OpenWeatherOption {
	return func(c *OpenWeatherClient) {
		c.httpClient = client
	}
}

// NewOpenWeatherClient creates a client. An empty BaseURL uses the public API.
func NewOpenWeatherClient(cfg OpenWeatherConfig, opts ...OpenWeatherOption) *OpenWeatherClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &OpenWeatherClient{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies the provider in logs and metrics.
func (c *OpenWeatherClient) Name() string {
	return "openweather"
}

// HasValidKey reports whether the configured key looks usable.
func (c *OpenWeatherClient) HasValidKey() bool {
	return len(c.apiKey) >= minAPIKeyLength
}

type geoLocation struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Pop float64 `json:"pop"`
}

// Forecast returns up to days daily forecasts for destination, days clamped to 1..5.
func (c *OpenWeatherClient) Forecast(ctx context.Context, destination string, days int) ([]model.WeatherForecast, error) {
	if !c.HasValidKey() {
		return nil, ErrMissingAPIKey
	}
	days = ClampDays(days)

	location, err := c.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	var resp forecastResponse
	query := url.Values{
		"lat":   {strconv.FormatFloat(location.Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(location.Lon, 'f', -1, 64)},
		"units": {"imperial"},
	}
	if err := c.getJSON(ctx, "/data/2.5/forecast", query, &resp); err != nil {
		return nil, err
	}
	if len(resp.List) == 0 {
		return nil, fmt.Errorf("%w: no forecast data for %s", ErrUpstream, destination)
	}

	return aggregateDays(resp.List, resp.City.Timezone, days), nil
}

func (c *OpenWeatherClient) geocode(ctx context.Context, destination string) (geoLocation, error) {
	var matches []geoLocation
	query := url.Values{
		"q":     {destination},
		"limit": {"1"},
	}
	if err := c.getJSON(ctx, "/geo/1.0/direct", query, &matches); err != nil {
		return geoLocation{}, err
	}
	if len(matches) == 0 {
		return geoLocation{}, fmt.Errorf("%w: %s", ErrLocationNotFound, destination)
	}
	return matches[0], nil
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("appid", c.apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v", ErrUpstream, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: provider rejected the key", ErrMissingAPIKey)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrLocationNotFound, query.Get("q"))
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s returned %d: %s", ErrUpstream, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	return nil
}
