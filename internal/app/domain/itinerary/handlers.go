package itinerary

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/models"
	"github.com/safarnama/safarnama/internal/app/observability/metrics"
)

type Handlers struct {
	service Service
	logger  *zap.Logger
}

func NewHandlers(service Service, logger *zap.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Generate handles POST /itinerary.
func (h *Handlers) Generate(c *gin.Context) {
	var req models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("itinerary generation failed",
			zap.String("destination", req.Destination), zap.Error(err))
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(c.Request.Context(), 1)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "itinerary generation is unavailable right now"})
		return
	}

	if m := metrics.Get(); m != nil {
		m.ItinerariesGeneratedTotal.Add(c.Request.Context(), 1)
	}
	c.JSON(http.StatusOK, it)
}
