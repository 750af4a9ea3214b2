package server

import (
	"time"

	"storetrack/internal/handlers"
	"storetrack/internal/metrics"
	"storetrack/internal/middleware"
	"storetrack/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// HealthCheck reports the state of a dependency; nil means healthy.
type HealthCheck func() error

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Products *services.ProductService
	Orders   *services.OrderService
	Reports  *services.ReportService
	// Checks are run by /health, keyed by the name reported in the response.
	Checks map[string]HealthCheck
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// New builds the Fiber application with every route registered.
func New(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}

	api := app.Group("/api")
	handlers.NewProductHandler(deps.Products).RegisterRoutes(api)
	handlers.NewOrderHandler(deps.Orders).RegisterRoutes(api)
	handlers.NewReportHandler(deps.Reports).RegisterRoutes(api)

	app.Get("/health", healthHandler(deps.Checks))
	app.Get("/metrics", metrics.Handler())
	return app
}

func healthHandler(checks map[string]HealthCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "healthy"
		code := fiber.StatusOK
		body := fiber.Map{
			"time": time.Now().Format(time.RFC3339),
		}
		for name, check := range checks {
			if err := check(); err != nil {
				body[name] = err.Error()
				status = "unhealthy"
				code = fiber.StatusServiceUnavailable
				continue
			}
			body[name] = "connected"
		}
		body["status"] = status
		return c.Status(code).JSON(body)
	}
}
