package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-thread-bot/internal/observability"
)

// MetricsHandler dumps the in-memory counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler returns a new handler instance.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Snapshot GET /metrics.
func (h *MetricsHandler) Snapshot(c *fiber.Ctx) error {
	interactions, tickets := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"interactions": interactions,
		"tickets":      tickets,
	})
}
