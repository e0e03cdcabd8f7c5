package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/revkae/hotel-management/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	env         string
	startedAt   time.Time
	postgres    *persistence.Postgres
	channel     *persistence.Channel
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version, env string, postgres *persistence.Postgres, channel *persistence.Channel) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		env:         env,
		startedAt:   time.Now(),
		postgres:    postgres,
		channel:     channel,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies. The event
// channel is optional: disabled is not a readiness failure.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.postgres.Ping(ctx); err != nil {
		depStatus["postgres"] = err.Error()
		ready = false
	} else {
		depStatus["postgres"] = "ok"
	}

	if !h.channel.Enabled() {
		depStatus["channel"] = "disabled"
	} else if err := h.channel.Ping(ctx); err != nil {
		depStatus["channel"] = err.Error()
	} else {
		depStatus["channel"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}

// Status GET /api/health, the informational health summary.
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.startedAt).Seconds(),
		"environment": h.env,
		"version":     h.version,
	})
}
