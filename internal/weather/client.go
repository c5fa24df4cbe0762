// Package weather fetches current conditions from the Open-Meteo API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.open-meteo.com"
	fetchTimeout   = 10 * time.Second
)

// Reading is one successfully fetched weather snapshot.
type Reading struct {
	Summary      string
	TemperatureC float64
	WindKph      float64
	FetchedAt    time.Time
}

// Fetcher is implemented by Client and by test fakes.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (Reading, error)
}

// Client talks to the Open-Meteo forecast endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		// Redirects are followed by the default transport policy.
		httpClient: &http.Client{Timeout: fetchTimeout},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

type currentWeather struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"windspeed"`
	WeatherCode *int     `json:"weathercode"`
}

type forecastResponse struct {
	CurrentWeather *currentWeather `json:"current_weather"`
}

// Fetch performs a blocking GET for the current conditions at lat/lon.
// Any failure (network, non-2xx, parse, missing fields) returns an error;
// there is no partial result.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (Reading, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 2, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 2, 64))
	q.Set("current_weather", "true")
	endpoint := c.baseURL + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Reading{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reading{}, fmt.Errorf("fetch weather: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Reading{}, fmt.Errorf("read response: %w", err)
	}

	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Reading{}, fmt.Errorf("parse response: %w", err)
	}

	cw := parsed.CurrentWeather
	if cw == nil || cw.Temperature == nil || cw.WindSpeed == nil || cw.WeatherCode == nil {
		return Reading{}, fmt.Errorf("parse response: missing current_weather fields")
	}

	return Reading{
		Summary:      fmt.Sprintf("Code %d", *cw.WeatherCode),
		TemperatureC: *cw.Temperature,
		WindKph:      *cw.WindSpeed,
		FetchedAt:    time.Now(),
	}, nil
}
