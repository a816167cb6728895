package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vacation-service/internal/repository"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	employees   repository.EmployeeRepository
	managers    repository.ManagerRepository
	requests    repository.RequestRepository
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, employees repository.EmployeeRepository, managers repository.ManagerRepository, requests repository.RequestRepository) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		employees:   employees,
		managers:    managers,
		requests:    requests,
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

// Ready reports service readiness. The store is in-process so readiness
// amounts to the directories being seeded.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx := c.Context()
	employees := h.employees.Count(ctx)
	managers := h.managers.Count(ctx)
	if employees == 0 || managers == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "directories not seeded",
			},
		})
	}
	return c.JSON(fiber.Map{
		"status":    "ready",
		"employees": employees,
		"managers":  managers,
		"requests":  h.requests.Count(ctx),
	})
}
