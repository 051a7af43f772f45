package cost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
)

type stubRateSource struct {
	rates models.ExchangeRates
	err   error
	calls int
}

func (s *stubRateSource) Rates(_ context.Context, base string) (models.ExchangeRates, error) {
	s.calls++
	if s.err != nil {
		return models.ExchangeRates{}, s.err
	}
	return s.rates, nil
}

func TestEstimateStandardTier(t *testing.T) {
	svc := NewService(DefaultRates(), nil, zap.NewNop())

	est, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Jaipur",
		Days:        3,
		Travelers:   2,
		Tier:        TierStandard,
	})
	require.NoError(t, err)

	// 5500/day/person at factor 1.0 for two people.
	assert.InDelta(t, 11000, est.PerDayINR, 0.001)
	assert.InDelta(t, 33000, est.TotalINR, 0.001)
	assert.Equal(t, "INR", est.Currency)
	assert.Equal(t, "₹33,000", est.Formatted)
	assert.Nil(t, est.Converted)
}

func TestEstimateAppliesDestinationFactor(t *testing.T) {
	svc := NewService(DefaultRates(), nil, zap.NewNop())

	est, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Goa",
		Days:        2,
		Tier:        TierBudget,
	})
	require.NoError(t, err)

	// 2000/day at Goa's 1.3 factor, single traveler by default.
	assert.InDelta(t, 2600, est.PerDayINR, 0.001)
	assert.InDelta(t, 5200, est.TotalINR, 0.001)
	assert.Equal(t, 1, est.Travelers)
}

func TestEstimateUnknownDestinationUsesNeutralFactor(t *testing.T) {
	svc := NewService(DefaultRates(), nil, zap.NewNop())

	est, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Shillong",
		Days:        1,
		Tier:        TierLuxury,
	})
	require.NoError(t, err)
	assert.InDelta(t, 16000, est.TotalINR, 0.001)
}

func TestEstimateDefaultsToStandardTier(t *testing.T) {
	svc := NewService(DefaultRates(), nil, zap.NewNop())

	est, err := svc.Estimate(context.Background(), models.CostRequest{Destination: "Agra", Days: 1})
	require.NoError(t, err)
	assert.Equal(t, TierStandard, est.Tier)
}

func TestEstimateRejectsUnknownTier(t *testing.T) {
	svc := NewService(DefaultRates(), nil, zap.NewNop())

	_, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Agra",
		Days:        1,
		Tier:        "imperial",
	})
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestEstimateConvertsCurrency(t *testing.T) {
	fx := &stubRateSource{rates: models.ExchangeRates{
		Base:      "INR",
		Rates:     map[string]float64{"USD": 0.012},
		FetchedAt: time.Now(),
	}}
	svc := NewService(DefaultRates(), fx, zap.NewNop())

	est, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Jaipur",
		Days:        3,
		Travelers:   2,
		Tier:        TierStandard,
		Currency:    "usd",
	})
	require.NoError(t, err)
	require.NotNil(t, est.Converted)
	assert.Equal(t, "USD", est.Converted.Currency)
	assert.InDelta(t, 396, est.Converted.Amount, 0.001)
}

func TestEstimateConversionFailureKeepsINR(t *testing.T) {
	fx := &stubRateSource{err: errors.New("feed down")}
	svc := NewService(DefaultRates(), fx, zap.NewNop())

	est, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Jaipur",
		Days:        1,
		Currency:    "USD",
	})
	require.NoError(t, err)
	assert.Nil(t, est.Converted)
	assert.NotZero(t, est.TotalINR)
}

func TestEstimateIsImmutableToCallerMutation(t *testing.T) {
	rates := DefaultRates()
	svc := NewService(rates, nil, zap.NewNop())
	rates.Factors["jaipur"] = 99
	rates.Tiers[TierBudget] = DailyRates{}

	est, err := svc.Estimate(context.Background(), models.CostRequest{
		Destination: "Jaipur",
		Days:        1,
		Tier:        TierBudget,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2000, est.TotalINR, 0.001)
}
