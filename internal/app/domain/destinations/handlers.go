package destinations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/observability/metrics"
	"github.com/safarnama/safarnama/internal/pkg/currency"
	"github.com/safarnama/safarnama/internal/pkg/weather"
)

type Handlers struct {
	service Service
	weather weather.Provider
	fx      currency.RateSource
	logger  *zap.Logger
}

func NewHandlers(service Service, weather weather.Provider, fx currency.RateSource, logger *zap.Logger) *Handlers {
	return &Handlers{service: service, weather: weather, fx: fx, logger: logger}
}

// List handles GET /destinations.
func (h *Handlers) List(c *gin.Context) {
	filter := Filter{
		Region:   c.Query("region"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	c.JSON(http.StatusOK, gin.H{"destinations": h.service.List(c.Request.Context(), filter)})
}

// Get handles GET /destinations/:id.
func (h *Handlers) Get(c *gin.Context) {
	dest, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown destination"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "destination lookup failed"})
		return
	}
	c.JSON(http.StatusOK, dest)
}

// Overview handles GET /destinations/:id/overview.
func (h *Handlers) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown destination"})
			return
		}
		h.logger.Error("overview failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "overview failed"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Weather handles GET /weather.
func (h *Handlers) Weather(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	report, err := h.weather.Current(c.Request.Context(), lat, lon)
	if err != nil {
		h.logger.Error("weather lookup failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(c.Request.Context(), 1)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service unavailable"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Exchange handles GET /exchange. Base defaults to INR.
func (h *Handlers) Exchange(c *gin.Context) {
	rates, err := h.fx.Rates(c.Request.Context(), c.DefaultQuery("base", "INR"))
	if err != nil {
		h.logger.Error("exchange lookup failed", zap.Error(err))
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(c.Request.Context(), 1)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "exchange rate service unavailable"})
		return
	}
	c.JSON(http.StatusOK, rates)
}
