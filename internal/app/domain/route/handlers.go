package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/safarnama/safarnama/internal/app/models"
	"github.com/safarnama/safarnama/internal/pkg/geo"
)

type routeRequest struct {
	Locations       []string `json:"locations" binding:"required,min=2"`
	AverageSpeedKmh float64  `json:"average_speed_kmh"`
}

type Handlers struct {
	geocoder geo.Geocoder
	logger   *zap.Logger
}

func NewHandlers(geocoder geo.Geocoder, logger *zap.Logger) *Handlers {
	return &Handlers{geocoder: geocoder, logger: logger}
}

// Compute handles POST /route: geocode each named stop, then sum the
// great-circle legs in the order given.
func (h *Handlers) Compute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points := make([]models.Coordinate, len(req.Locations))
	g, ctx := errgroup.WithContext(c.Request.Context())
	for i, place := range req.Locations {
		g.Go(func() error {
			coord, err := h.geocoder.Geocode(ctx, place)
			if err != nil {
				return err
			}
			points[i] = coord
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Error("route geocoding failed", zap.Strings("locations", req.Locations), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not resolve one of the locations"})
		return
	}

	c.JSON(http.StatusOK, ComputeRouteDistances(points, req.AverageSpeedKmh))
}
