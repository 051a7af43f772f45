package nearby

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	finder Finder
	logger *zap.Logger
}

func NewHandlers(finder Finder, logger *zap.Logger) *Handlers {
	return &Handlers{finder: finder, logger: logger}
}

// Nearby handles GET /nearby?lat=&lon=&radius= and returns tourism POIs
// sorted by distance from the query point.
func (h *Handlers) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon is required"})
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	radius := 2000.0
	if raw := c.Query("radius"); raw != "" {
		if radius, err = strconv.ParseFloat(raw, 64); err != nil || radius <= 0 || radius > 50000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be between 1 and 50000 meters"})
			return
		}
	}

	places, err := h.finder.FindNearby(c.Request.Context(), lat, lon, radius)
	if err != nil {
		h.logger.Error("nearby lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "nearby places are unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}
