package cost

import (
	"errors"
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

// Estimate handles POST /cost.
func (h *Handlers) Estimate(c *gin.Context) {
	var req models.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.service.Estimate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnknownTier) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be budget, standard or luxury"})
			return
		}
		h.logger.Error("cost estimate failed", zap.String("destination", req.Destination), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not estimate trip cost"})
		return
	}

	if m := metrics.Get(); m != nil {
		m.CostEstimatesTotal.Add(c.Request.Context(), 1)
	}
	c.JSON(http.StatusOK, estimate)
}
