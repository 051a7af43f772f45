package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
)

const defaultBaseURL = "https://api.open-meteo.com"

// weatherCodeText maps WMO weather interpretation codes to display text.
var weatherCodeText = map[int]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Fog", 48: "Depositing rime fog",
	51: "Light drizzle", 53: "Drizzle", 55: "Dense drizzle",
	61: "Slight rain", 63: "Rain", 65: "Heavy rain",
	71: "Slight snow", 73: "Snow", 75: "Heavy snow",
	80: "Rain showers", 81: "Rain showers", 82: "Violent rain showers",
	95: "Thunderstorm", 96: "Thunderstorm with hail", 99: "Thunderstorm with heavy hail",
}

// Provider fetches a current-conditions report for a coordinate.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (models.WeatherReport, error)
}

// Client wraps the Open-Meteo forecast endpoint. Reports are cached for a
// short window keyed on rounded coordinates.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Cache
	logger     *zap.Logger
}

var _ Provider = (*Client)(nil)

func NewClient(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache.New(15*time.Minute, 5*time.Minute),
		logger:     logger,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string, logger *zap.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (models.WeatherReport, error) {
	key := fmt.Sprintf("%.2f:%.2f", lat, lon)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(models.WeatherReport), nil
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current_weather", "true")
	q.Set("daily", "temperature_2m_min,temperature_2m_max")
	q.Set("forecast_days", "1")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherReport{}, errors.Wrap(err, "building weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.WeatherReport{}, errors.Wrap(err, "weather request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReport{}, errors.Errorf("weather bad status: %s", resp.Status)
	}

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
		Daily struct {
			TemperatureMin []float64 `json:"temperature_2m_min"`
			TemperatureMax []float64 `json:"temperature_2m_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherReport{}, errors.Wrap(err, "decoding weather response")
	}

	report := models.WeatherReport{
		TemperatureC: payload.CurrentWeather.Temperature,
		WindSpeedKmh: payload.CurrentWeather.WindSpeed,
		Condition:    conditionText(payload.CurrentWeather.WeatherCode),
	}
	if len(payload.Daily.TemperatureMin) > 0 {
		report.MinC = payload.Daily.TemperatureMin[0]
	}
	if len(payload.Daily.TemperatureMax) > 0 {
		report.MaxC = payload.Daily.TemperatureMax[0]
	}

	c.cache.Set(key, report, cache.DefaultExpiration)
	c.logger.Debug("fetched weather", zap.Float64("lat", lat), zap.Float64("lon", lon),
		zap.String("condition", report.Condition))
	return report, nil
}

func conditionText(code int) string {
	if text, ok := weatherCodeText[code]; ok {
		return text
	}
	return "Unknown"
}
