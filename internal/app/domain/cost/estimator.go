package cost

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
	"github.com/safarnama/safarnama/internal/pkg/currency"
)

// ErrUnknownTier is returned for tier names outside the rate table.
var ErrUnknownTier = errors.New("unknown price tier")

var errNoRateSource = errors.New("no exchange rate source configured")

// Tier names accepted by the estimator.
const (
	TierBudget   = "budget"
	TierStandard = "standard"
	TierLuxury   = "luxury"
)

// DailyRates is the per-person daily spend for one tier, in INR.
type DailyRates struct {
	Accommodation float64
	Food          float64
	Transport     float64
	Activities    float64
}

func (r DailyRates) total() float64 {
	return r.Accommodation + r.Food + r.Transport + r.Activities
}

// Rates is the immutable pricing table the estimator works from. Factors
// scale the tier rates per destination; missing destinations use 1.0.
type Rates struct {
	Tiers   map[string]DailyRates
	Factors map[string]float64
}

// DefaultRates reflects typical 2025 prices for travel within India.
func DefaultRates() Rates {
	return Rates{
		Tiers: map[string]DailyRates{
			TierBudget:   {Accommodation: 800, Food: 500, Transport: 300, Activities: 400},
			TierStandard: {Accommodation: 2500, Food: 1200, Transport: 800, Activities: 1000},
			TierLuxury:   {Accommodation: 8000, Food: 3000, Transport: 2500, Activities: 2500},
		},
		Factors: map[string]float64{
			"goa":        1.3,
			"mumbai":     1.4,
			"delhi":      1.2,
			"bengaluru":  1.2,
			"jaipur":     1.0,
			"udaipur":    1.1,
			"agra":       0.9,
			"varanasi":   0.8,
			"rishikesh":  0.85,
			"leh":        1.25,
			"munnar":     0.95,
			"hampi":      0.75,
			"darjeeling": 0.9,
			"andaman":    1.5,
			"kochi":      1.0,
		},
	}
}

// Service turns a trip outline into an INR estimate, optionally converted
// to another currency.
type Service interface {
	Estimate(ctx context.Context, req models.CostRequest) (models.CostEstimate, error)
}

type ServiceImpl struct {
	rates  Rates
	fx     currency.RateSource
	logger *zap.Logger
}

var _ Service = (*ServiceImpl)(nil)

// NewService copies the rate table so later mutation of the caller's maps
// cannot change estimates.
func NewService(rates Rates, fx currency.RateSource, logger *zap.Logger) *ServiceImpl {
	copied := Rates{
		Tiers:   make(map[string]DailyRates, len(rates.Tiers)),
		Factors: make(map[string]float64, len(rates.Factors)),
	}
	for k, v := range rates.Tiers {
		copied.Tiers[k] = v
	}
	for k, v := range rates.Factors {
		copied.Factors[k] = v
	}
	return &ServiceImpl{rates: copied, fx: fx, logger: logger}
}

func (s *ServiceImpl) Estimate(ctx context.Context, req models.CostRequest) (models.CostEstimate, error) {
	ctx, span := otel.Tracer("safarnama/cost").Start(ctx, "Estimate")
	defer span.End()

	tier := strings.ToLower(strings.TrimSpace(req.Tier))
	if tier == "" {
		tier = TierStandard
	}
	rates, ok := s.rates.Tiers[tier]
	if !ok {
		return models.CostEstimate{}, ErrUnknownTier
	}

	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	factor := 1.0
	if f, ok := s.rates.Factors[strings.ToLower(strings.TrimSpace(req.Destination))]; ok {
		factor = f
	}

	perDay := rates.total() * factor * float64(travelers)
	total := perDay * float64(req.Days)

	span.SetAttributes(
		attribute.String("destination", req.Destination),
		attribute.String("tier", tier),
		attribute.Float64("total_inr", total),
	)

	estimate := models.CostEstimate{
		Destination: req.Destination,
		Days:        req.Days,
		Travelers:   travelers,
		Tier:        tier,
		TotalINR:    total,
		PerDayINR:   perDay,
		Formatted:   currency.FormatINR(total),
		Currency:    "INR",
	}

	if target := strings.ToUpper(strings.TrimSpace(req.Currency)); target != "" && target != "INR" {
		if err := s.convert(ctx, &estimate, target); err != nil {
			// Conversion is best effort; the INR figures stand on their own.
			s.logger.Warn("currency conversion skipped", zap.String("target", target), zap.Error(err))
		}
	}

	return estimate, nil
}

func (s *ServiceImpl) convert(ctx context.Context, estimate *models.CostEstimate, target string) error {
	if s.fx == nil {
		return errNoRateSource
	}
	rates, err := s.fx.Rates(ctx, "INR")
	if err != nil {
		return err
	}
	converted, err := currency.Convert(rates, estimate.TotalINR, target)
	if err != nil {
		return err
	}
	estimate.Converted = &models.ConvertedAmount{Currency: target, Amount: converted}
	return nil
}
