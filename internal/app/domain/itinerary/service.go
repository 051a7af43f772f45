package itinerary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
	"github.com/safarnama/safarnama/internal/pkg/llm"
)

var errNoGenerator = errors.New("no model client configured")

// Service generates and parses itineraries.
type Service interface {
	Generate(ctx context.Context, req models.ItineraryRequest) (models.StructuredItinerary, error)
}

type ServiceImpl struct {
	generator llm.Generator
	cache     *cache.Cache
	logger    *zap.Logger
}

var _ Service = (*ServiceImpl)(nil)

func NewService(generator llm.Generator, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		generator: generator,
		cache:     cache.New(10*time.Minute, 5*time.Minute),
		logger:    logger,
	}
}

// Generate asks the model for a free-text itinerary and runs it through the
// parser. Generation failures propagate to the caller; parsing never fails.
func (s *ServiceImpl) Generate(ctx context.Context, req models.ItineraryRequest) (models.StructuredItinerary, error) {
	ctx, span := otel.Tracer("safarnama/itinerary").Start(ctx, "Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("destination", req.Destination),
		attribute.Int("days", req.Days),
	)

	key := cacheKey(req)
	if cached, ok := s.cache.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(models.StructuredItinerary), nil
	}

	if s.generator == nil {
		err := errNoGenerator
		span.RecordError(err)
		span.SetStatus(codes.Error, "no generator configured")
		return models.StructuredItinerary{}, err
	}

	raw, err := s.generator.GenerateText(ctx, buildPrompt(req))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return models.StructuredItinerary{}, fmt.Errorf("generating itinerary for %s: %w", req.Destination, err)
	}

	it := ParseItinerary(raw, req.Destination, req.Days)
	s.logger.Info("itinerary generated",
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Int("parsed_days", len(it.DailyPlans)),
		zap.Int("tips", len(it.Tips)))

	s.cache.Set(key, it, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "itinerary generated")
	return it, nil
}

func cacheKey(req models.ItineraryRequest) string {
	return fmt.Sprintf("%s|%d|%s",
		strings.ToLower(strings.TrimSpace(req.Destination)),
		req.Days,
		strings.ToLower(strings.Join(req.Interests, ",")))
}

// buildPrompt nudges the model toward the loose textual conventions the
// parser recognizes. The parser still tolerates deviations.
func buildPrompt(req models.ItineraryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s, India.\n\n", req.Days, req.Destination)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "The traveler is interested in: %s.\n\n", strings.Join(req.Interests, ", "))
	}
	b.WriteString("Structure the answer exactly like this:\n")
	b.WriteString("Trip Summary: one short paragraph.\n")
	fmt.Fprintf(&b, "Then one section per day, headed \"Day 1\" through \"Day %d\".\n", req.Days)
	b.WriteString("Inside each day list activities as lines starting with a clock time, ")
	b.WriteString("for example \"9:00 AM - Visit the fort (Amber Fort)\". ")
	b.WriteString("Put the place name in parentheses.\n")
	b.WriteString("Then a \"Travel Tips\" section with bullet points.\n")
	b.WriteString("Then a \"Budget\" section with one \"Category: Amount\" line per category, amounts in INR.\n")
	return b.String()
}
