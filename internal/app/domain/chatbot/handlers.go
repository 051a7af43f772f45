package chatbot

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

// Chat handles POST /chat.
func (h *Handlers) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.service.Reply(c.Request.Context(), req)
	if m := metrics.Get(); m != nil {
		m.ChatMessagesTotal.Add(c.Request.Context(), 1)
	}
	c.JSON(http.StatusOK, reply)
}
