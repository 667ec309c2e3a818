package middleware

import (
	"errors"
	"time"

	"board-web/internal/helpers"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics records count and latency per route pattern.
func RequestMetrics(m *helpers.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start).Seconds())
		return err
	}
}
