package destinations

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/safarnama/safarnama/internal/app/domain/nearby"
	"github.com/safarnama/safarnama/internal/app/models"
	"github.com/safarnama/safarnama/internal/pkg/currency"
	"github.com/safarnama/safarnama/internal/pkg/weather"
)

// ErrNotFound is returned for destination IDs outside the catalog.
var ErrNotFound = errors.New("destination not found")

const overviewNearbyRadius = 3000

// Filter narrows the catalog listing. Empty fields match everything.
type Filter struct {
	Region   string
	Category string
	Query    string
}

// Service serves the destination catalog and per-destination overviews.
type Service interface {
	List(ctx context.Context, filter Filter) []models.Destination
	Get(ctx context.Context, id string) (models.Destination, error)
	Overview(ctx context.Context, id string) (models.DestinationOverview, error)
}

type ServiceImpl struct {
	entries []models.Destination
	weather weather.Provider
	finder  nearby.Finder
	fx      currency.RateSource
	logger  *zap.Logger
}

var _ Service = (*ServiceImpl)(nil)

func NewService(weather weather.Provider, finder nearby.Finder, fx currency.RateSource, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		entries: Catalog(),
		weather: weather,
		finder:  finder,
		fx:      fx,
		logger:  logger,
	}
}

func (s *ServiceImpl) List(_ context.Context, filter Filter) []models.Destination {
	region := strings.ToLower(strings.TrimSpace(filter.Region))
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]models.Destination, 0, len(s.entries))
	for _, d := range s.entries {
		if region != "" && d.Region != region {
			continue
		}
		if category != "" && !hasCategory(d, category) {
			continue
		}
		if query != "" && !matchesQuery(d, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *ServiceImpl) Get(_ context.Context, id string) (models.Destination, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, d := range s.entries {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Destination{}, ErrNotFound
}

// Overview fans out to the weather, nearby and exchange-rate collaborators
// concurrently. Collaborator failures leave their field empty rather than
// failing the whole overview.
func (s *ServiceImpl) Overview(ctx context.Context, id string) (models.DestinationOverview, error) {
	ctx, span := otel.Tracer("safarnama/destinations").Start(ctx, "Overview")
	defer span.End()
	span.SetAttributes(attribute.String("destination.id", id))

	dest, err := s.Get(ctx, id)
	if err != nil {
		return models.DestinationOverview{}, err
	}

	overview := models.DestinationOverview{Destination: dest}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.weather == nil {
			return nil
		}
		report, err := s.weather.Current(gctx, dest.Latitude, dest.Longitude)
		if err != nil {
			s.logger.Warn("overview weather lookup failed", zap.String("id", dest.ID), zap.Error(err))
			return nil
		}
		overview.Weather = &report
		return nil
	})
	g.Go(func() error {
		if s.finder == nil {
			return nil
		}
		places, err := s.finder.FindNearby(gctx, dest.Latitude, dest.Longitude, overviewNearbyRadius)
		if err != nil {
			s.logger.Warn("overview nearby lookup failed", zap.String("id", dest.ID), zap.Error(err))
			return nil
		}
		overview.Nearby = places
		return nil
	})
	g.Go(func() error {
		if s.fx == nil {
			return nil
		}
		rates, err := s.fx.Rates(gctx, "INR")
		if err != nil {
			s.logger.Warn("overview rate lookup failed", zap.Error(err))
			return nil
		}
		overview.Rates = &rates
		return nil
	})

	// Goroutines swallow their errors, so Wait only orders the writes.
	_ = g.Wait()
	return overview, nil
}

func hasCategory(d models.Destination, category string) bool {
	for _, c := range d.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func matchesQuery(d models.Destination, query string) bool {
	if strings.Contains(strings.ToLower(d.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.State), query) {
		return true
	}
	return strings.Contains(strings.ToLower(d.Description), query)
}
