package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/department-dto/internal/api/http/handlers"
	"github.com/spec-kit/department-dto/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Departments *handlers.DepartmentsHandler
	// Metrics is served at MetricsPath when both are set.
	Metrics     *observability.Metrics
	MetricsPath string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)

	departments := app.Group("/departments")
	departments.Post("/json", cfg.Departments.JSON)
	departments.Post("/json/matches", cfg.Departments.Matches)
	departments.Post("/describe", cfg.Departments.Describe)

	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		handler := promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})
		app.Get(cfg.MetricsPath, adaptor.HTTPHandler(handler))
	}
}
