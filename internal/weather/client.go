package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// maxBodySize bounds how much of a forecast response is read.
const maxBodySize = 1 << 20

// Location is the point a forecast is requested for.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Reading is the current temperature returned by the forecast service.
type Reading struct {
	TemperatureFahrenheit float64
}

// forecastResponse mirrors the part of the Open-Meteo payload we read.
type forecastResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
	} `json:"current_weather"`
}

// Client fetches current conditions from an Open-Meteo compatible endpoint.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client that sends every request through httpClient.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
	}
}

// URL builds the forecast request URL for loc.
func (c *Client) URL(loc Location) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "fahrenheit")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Current issues a single GET for loc and extracts current_weather.temperature.
// Failures are returned as *FetchError tagged with the stage that failed.
func (c *Client) Current(ctx context.Context, loc Location) (Reading, error) {
	endpoint, err := c.URL(loc)
	if err != nil {
		return Reading{}, &FetchError{Stage: StageRequest, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Reading{}, &FetchError{Stage: StageRequest, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Reading{}, &FetchError{Stage: StageTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return Reading{}, &FetchError{
			Stage: StageStatus,
			Err:   fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var payload forecastResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return Reading{}, &FetchError{Stage: StageDecode, Err: err}
	}

	if payload.CurrentWeather == nil {
		return Reading{}, &FetchError{Stage: StageMissingField, Err: fmt.Errorf("current_weather not present")}
	}
	if payload.CurrentWeather.Temperature == nil {
		return Reading{}, &FetchError{Stage: StageMissingField, Err: fmt.Errorf("current_weather.temperature not present")}
	}

	return Reading{TemperatureFahrenheit: *payload.CurrentWeather.Temperature}, nil
}
