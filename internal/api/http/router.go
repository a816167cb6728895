package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vacation-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Employees *handlers.EmployeesHandler
	Managers  *handlers.ManagersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	employees := app.Group("/employees")
	employees.Get("/:id/requests", cfg.Employees.ListRequests)
	employees.Get("/:id/remaining_days", cfg.Employees.RemainingDays)
	employees.Post("/:id/requests", cfg.Employees.SubmitRequest)

	managers := app.Group("/managers")
	managers.Get("/:id/requests", cfg.Managers.ListRequests)
	managers.Get("/:id/overlapping_requests", cfg.Managers.OverlappingRequests)
	managers.Put("/:id/requests/:requestId", cfg.Managers.ProcessRequest)
}
