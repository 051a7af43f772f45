package itinerary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestServiceGenerate(t *testing.T) {
	gen := &stubGenerator{response: sampleResponse}
	svc := NewService(gen, zap.NewNop())

	it, err := svc.Generate(context.Background(), models.ItineraryRequest{
		Destination: "Jaipur",
		Days:        3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", it.Destination)
	assert.Equal(t, 3, it.Duration)
	assert.Len(t, it.DailyPlans, 2)
}

func TestServiceGenerateCaches(t *testing.T) {
	gen := &stubGenerator{response: sampleResponse}
	svc := NewService(gen, zap.NewNop())
	req := models.ItineraryRequest{Destination: "Jaipur", Days: 3}

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
}

func TestServiceGeneratePropagatesUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewService(gen, zap.NewNop())

	_, err := svc.Generate(context.Background(), models.ItineraryRequest{Destination: "Goa", Days: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestServiceGenerateUnstructuredTextStillSucceeds(t *testing.T) {
	gen := &stubGenerator{response: "the model rambled with no structure"}
	svc := NewService(gen, zap.NewNop())

	it, err := svc.Generate(context.Background(), models.ItineraryRequest{Destination: "Pune", Days: 2})
	require.NoError(t, err)
	assert.Empty(t, it.DailyPlans)
	assert.Empty(t, it.Summary)
	assert.Equal(t, "Pune", it.Destination)
}
