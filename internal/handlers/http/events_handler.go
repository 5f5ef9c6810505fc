package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/pessoas-backend/internal/infrastructure/realtime"
)

// EventsHandler transmite eventos de pessoa por websocket
type EventsHandler struct {
	hub *realtime.Hub
}

// NewEventsHandler cria um novo EventsHandler
func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream faz o upgrade para websocket
func (h *EventsHandler) Stream(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request)
}
