package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com"

// Client is a thin HTTP client for the Open-Meteo forecast API. The
// API is keyless; the client handles JSON decoding and automatic retry
// with exponential backoff on HTTP 429 and transient 5xx responses.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a weather client for the given coordinates.
func NewClient(latitude, longitude float64) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		latitude:  latitude,
		longitude: longitude,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
	}
}

// currentWeatherResponse mirrors the subset of the Open-Meteo
// current_weather payload we consume.
type currentWeatherResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
}

// Current fetches the current observation for the configured location.
func (c *Client) Current(ctx context.Context) (Observation, error) {
	path := fmt.Sprintf(
		"/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		c.latitude, c.longitude,
	)

	var resp currentWeatherResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return Observation{}, fmt.Errorf("fetching current weather: %w", err)
	}

	temp := resp.CurrentWeather.Temperature
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return Observation{}, fmt.Errorf("weather response has invalid temperature")
	}

	return Observation{
		Condition:    Classify(resp.CurrentWeather.WeatherCode, temp),
		TemperatureC: temp,
		WindSpeedKmh: resp.CurrentWeather.WindSpeed,
		FetchedAt:    time.Now(),
	}, nil
}

// get performs an HTTP GET with retry and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	url := strings.TrimRight(c.baseURL, "/") + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("reading response body: %w", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("decoding response: %w", err)
			}
			return nil

		case resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode >= 500:
			lastErr = fmt.Errorf("weather API returned %d", resp.StatusCode)
			// Exponential backoff before the next attempt.
			backoff := time.Duration(1<<attempt) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}

		default:
			return fmt.Errorf("weather API returned %d: %s",
				resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}

	return fmt.Errorf("weather request failed after %d attempts: %w",
		c.maxRetries+1, lastErr)
}
