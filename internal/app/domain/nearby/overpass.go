package nearby

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/domain/route"
	"github.com/safarnama/safarnama/internal/app/models"
)

const (
	defaultBaseURL = "https://overpass-api.de"
	maxResults     = 50
)

// Finder looks up tourism points of interest around a coordinate.
type Finder interface {
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]models.NearbyPlace, error)
}

// Service queries the Overpass API for tagged tourism nodes. One HTTP call,
// parse the body, sort by distance; results are cached on rounded inputs.
type Service struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Cache
	logger     *zap.Logger
}

var _ Finder = (*Service)(nil)

func NewService(logger *zap.Logger) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 25 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache.New(30*time.Minute, 10*time.Minute),
		logger:     logger,
	}
}

// NewServiceWithBaseURL is used by tests to point at a stub server.
func NewServiceWithBaseURL(baseURL string, logger *zap.Logger) *Service {
	s := NewService(logger)
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

func (s *Service) FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]models.NearbyPlace, error) {
	if radiusMeters <= 0 {
		radiusMeters = 2000
	}

	key := fmt.Sprintf("%.3f:%.3f:%.0f", lat, lon, radiusMeters)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.NearbyPlace), nil
	}

	query := fmt.Sprintf(`[out:json][timeout:20];node["tourism"]["name"](around:%.0f,%.6f,%.6f);out body %d;`,
		radiusMeters, lat, lon, maxResults)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/interpreter",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "building overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "overpass request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("overpass bad status: %s", resp.Status)
	}

	var payload struct {
		Elements []struct {
			Lat  float64           `json:"lat"`
			Lon  float64           `json:"lon"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decoding overpass response")
	}

	origin := models.Coordinate{Latitude: lat, Longitude: lon}
	places := make([]models.NearbyPlace, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		places = append(places, models.NearbyPlace{
			Name:      name,
			Category:  el.Tags["tourism"],
			Latitude:  el.Lat,
			Longitude: el.Lon,
			DistanceKm: route.Haversine(origin,
				models.Coordinate{Latitude: el.Lat, Longitude: el.Lon}),
		})
	}

	sort.Slice(places, func(i, j int) bool {
		return places[i].DistanceKm < places[j].DistanceKm
	})

	s.cache.Set(key, places, cache.DefaultExpiration)
	s.logger.Debug("overpass lookup", zap.Float64("lat", lat), zap.Float64("lon", lon),
		zap.Int("results", len(places)))
	return places, nil
}
