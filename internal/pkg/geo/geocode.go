package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "safarnama/1.0 (travel discovery backend)"
)

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (models.Coordinate, error)
}

// Client is a thin Nominatim forward-geocoding wrapper. Results are cached
// aggressively since place coordinates do not move.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Cache
	logger     *zap.Logger
}

var _ Geocoder = (*Client)(nil)

func NewClient(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache.New(24*time.Hour, time.Hour),
		logger:     logger,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string, logger *zap.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Geocode(ctx context.Context, place string) (models.Coordinate, error) {
	key := strings.ToLower(strings.TrimSpace(place))
	if key == "" {
		return models.Coordinate{}, errors.New("empty place name")
	}
	if cached, ok := c.cache.Get(key); ok {
		return cached.(models.Coordinate), nil
	}

	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return models.Coordinate{}, errors.Wrap(err, "building geocode request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, errors.Wrap(err, "geocode request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, errors.Errorf("geocode bad status: %s", resp.Status)
	}

	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Coordinate{}, errors.Wrap(err, "decoding geocode response")
	}
	if len(payload) == 0 {
		return models.Coordinate{}, errors.Errorf("no geocoding result for %q", place)
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return models.Coordinate{}, errors.Wrap(err, "parsing latitude")
	}
	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return models.Coordinate{}, errors.Wrap(err, "parsing longitude")
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lon}
	c.cache.Set(key, coord, cache.DefaultExpiration)
	c.logger.Debug("geocoded place", zap.String("place", place),
		zap.Float64("lat", lat), zap.Float64("lon", lon))
	return coord, nil
}
