package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"weather-recorder/internal/models"
)

const DefaultWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// ErrIOFailure covers everything that goes wrong talking to the upstream API:
// transport errors, timeouts, unexpected statuses and undecodable bodies.
var ErrIOFailure = errors.New("weather api io failure")

type WeatherClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewWeatherClient(httpClient *http.Client, baseURL, apiKey string) *WeatherClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}
	return &WeatherClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// owmResponse mirrors the parts of the OpenWeatherMap current weather payload we use.
type owmResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (c *WeatherClient) buildURL(city string) string {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appId", c.apiKey)
	values.Set("units", "metric")
	return c.baseURL + "?" + values.Encode()
}

func (c *WeatherClient) Fetch(ctx context.Context, city string) (models.FetchResult, error) {
	if c.apiKey == "" {
		return models.FetchResult{}, fmt.Errorf("%w: api key not set", ErrIOFailure)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(city), nil)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("%w: build request: %w", ErrIOFailure, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("%w: request failed: %w", ErrIOFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.FetchResult{}, fmt.Errorf("%w: read body: %w", ErrIOFailure, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return models.NotFound(), nil
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &errResp)
		return models.FetchResult{}, fmt.Errorf("%w: status %d: %s", ErrIOFailure, resp.StatusCode, errResp.Message)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.NotFound(), nil
	}

	var payload owmResponse
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return models.FetchResult{}, fmt.Errorf("%w: invalid JSON: %w", ErrIOFailure, err)
	}
	if len(payload.Weather) == 0 {
		return models.FetchResult{}, fmt.Errorf("%w: payload has no weather conditions", ErrIOFailure)
	}

	return models.Found(models.WeatherSnapshot{
		ConditionID:  payload.Weather[0].ID,
		CityName:     payload.Name,
		CountryCode:  payload.Sys.Country,
		Description:  payload.Weather[0].Description,
		TemperatureC: payload.Main.Temp,
		HumidityPct:  payload.Main.Humidity,
		WindSpeed:    payload.Wind.Speed,
	}), nil
}
