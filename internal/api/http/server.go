package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/department-dto/internal/api/http/handlers"
	"github.com/spec-kit/department-dto/internal/config"
	"github.com/spec-kit/department-dto/internal/observability"
	"github.com/spec-kit/department-dto/internal/service"
)

// NewApp builds the fiber application with middlewares and routes attached.
func NewApp(cfg config.Config, logger *zap.Logger, metrics *observability.Metrics, departments *service.DepartmentService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	routes := RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Departments: handlers.NewDepartmentsHandler(departments),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = metrics
		routes.MetricsPath = cfg.Metrics.Path
	}
	RegisterRoutes(app, routes)
	return app
}
