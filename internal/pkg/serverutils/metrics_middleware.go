package serverutils

import (
	"strconv"
	"time"

	"dinedesk-be/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware records request counts and latency per route pattern.
// It must run inside ErrorHandlerMiddleware so the final status is known.
func MetricsMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status, _ = classify(err)
		}
		route := ctx.Route().Path
		if status == fiber.StatusNotFound && route == "/" && ctx.Path() != "/" {
			route = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(ctx.Method(), route, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(ctx.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
