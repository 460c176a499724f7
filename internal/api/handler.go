package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"morningbrief/internal/builder"
	"morningbrief/internal/services"
)

// Handler exposes the preview server's endpoints. The brief endpoint renders
// without sending, so a browser can inspect exactly what would be posted.
type Handler struct {
	aggregator *services.Aggregator
	builder    *builder.Builder
	notifier   *services.Notifier
	logger     *zap.Logger
}

func NewHandler(aggregator *services.Aggregator, b *builder.Builder, notifier *services.Notifier, logger *zap.Logger) *Handler {
	return &Handler{
		aggregator: aggregator,
		builder:    b,
		notifier:   notifier,
		logger:     logger,
	}
}

// GetBrief handles GET /api/brief
func (h *Handler) GetBrief(c *fiber.Ctx) error {
	h.logger.Info("Rendering brief preview")

	snapshot := h.aggregator.Collect(c.Context())
	message := h.builder.Build(snapshot)

	return c.JSON(fiber.Map{
		"sections": snapshot.SectionCount(),
		"fetched":  snapshot.FetchedAt,
		"message":  message,
	})
}

// SendBrief handles POST /api/send
func (h *Handler) SendBrief(c *fiber.Ctx) error {
	h.logger.Info("Sending brief via preview server")

	snapshot := h.aggregator.Collect(c.Context())
	message := h.builder.Build(snapshot)

	if err := h.notifier.Send(c.Context(), message); err != nil {
		h.logger.Error("Failed to deliver brief", zap.Error(err))

		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Failed to deliver brief",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":   "sent",
		"sections": snapshot.SectionCount(),
	})
}

// GetHealth handles GET /api/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"version":   builder.Version,
	})
}

var startTime = time.Now()
