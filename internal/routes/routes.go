package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/safarnama/safarnama/internal/app/domain/chatbot"
	"github.com/safarnama/safarnama/internal/app/domain/cost"
	"github.com/safarnama/safarnama/internal/app/domain/destinations"
	"github.com/safarnama/safarnama/internal/app/domain/itinerary"
	"github.com/safarnama/safarnama/internal/app/domain/nearby"
	"github.com/safarnama/safarnama/internal/app/domain/route"
	"github.com/safarnama/safarnama/internal/pkg/config"
	"github.com/safarnama/safarnama/internal/pkg/currency"
	"github.com/safarnama/safarnama/internal/pkg/geo"
	"github.com/safarnama/safarnama/internal/pkg/llm"
	"github.com/safarnama/safarnama/internal/pkg/weather"
)

// AppHandlers groups the handler sets for every feature area.
type AppHandlers struct {
	Itinerary    *itinerary.Handlers
	Chat         *chatbot.Handlers
	Cost         *cost.Handlers
	Destinations *destinations.Handlers
	Nearby       *nearby.Handlers
	Route        *route.Handlers
}

// Setup wires clients, services and handlers and registers all routes.
func Setup(r *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	handlers := buildHandlers(cfg, logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/itinerary", handlers.Itinerary.Generate)
		api.POST("/chat", handlers.Chat.Chat)
		api.POST("/cost", handlers.Cost.Estimate)
		api.POST("/route", handlers.Route.Compute)

		api.GET("/destinations", handlers.Destinations.List)
		api.GET("/destinations/:id", handlers.Destinations.Get)
		api.GET("/destinations/:id/overview", handlers.Destinations.Overview)

		api.GET("/nearby", handlers.Nearby.Nearby)
		api.GET("/weather", handlers.Destinations.Weather)
		api.GET("/exchange", handlers.Destinations.Exchange)
	}
}

func buildHandlers(cfg *config.Config, logger *zap.Logger) *AppHandlers {
	// The model client is optional. Without a key the chatbot still answers
	// from its rule table and itinerary generation reports unavailability.
	var generator llm.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Warn("gemini client unavailable", zap.Error(err))
		} else {
			generator = client
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, model-backed features degraded")
	}

	geocoder := geo.NewClient(logger)
	weatherClient := weather.NewClient(logger)
	fxClient := currency.NewClient(logger)
	finder := nearby.NewService(logger)

	itinerarySvc := itinerary.NewService(generator, logger)
	chatSvc := chatbot.NewService(chatbot.DefaultRules(), generator, logger)
	costSvc := cost.NewService(cost.DefaultRates(), fxClient, logger)
	destSvc := destinations.NewService(weatherClient, finder, fxClient, logger)

	return &AppHandlers{
		Itinerary:    itinerary.NewHandlers(itinerarySvc, logger),
		Chat:         chatbot.NewHandlers(chatSvc, logger),
		Cost:         cost.NewHandlers(costSvc, logger),
		Destinations: destinations.NewHandlers(destSvc, weatherClient, fxClient, logger),
		Nearby:       nearby.NewHandlers(finder, logger),
		Route:        route.NewHandlers(geocoder, logger),
	}
}
