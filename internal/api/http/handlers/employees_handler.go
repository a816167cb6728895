package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vacation-service/internal/api/dto"
	"github.com/spec-kit/vacation-service/internal/domain"
	"github.com/spec-kit/vacation-service/internal/service"
	apperrors "github.com/spec-kit/vacation-service/pkg/util"
)

// EmployeesHandler manages employee-facing endpoints.
type EmployeesHandler struct {
	service *service.VacationService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(vacationService *service.VacationService) *EmployeesHandler {
	return &EmployeesHandler{service: vacationService}
}

// ListRequests GET /employees/:id/requests.
func (h *EmployeesHandler) ListRequests(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("employee id must be an integer", nil)
	}
	status, err := parseStatusQuery(c)
	if err != nil {
		return err
	}
	requests, err := h.service.ListEmployeeRequests(c.Context(), employeeID, status)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromRequests(requests))
}

// RemainingDays GET /employees/:id/remaining_days.
func (h *EmployeesHandler) RemainingDays(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("employee id must be an integer", nil)
	}
	remaining, err := h.service.GetRemainingDays(c.Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(dto.RemainingDaysResponse{RemainingVacationDays: remaining})
}

// SubmitRequest POST /employees/:id/requests.
func (h *EmployeesHandler) SubmitRequest(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("employee id must be an integer", nil)
	}
	var payload dto.SubmitVacationRequest
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := payload.Validate(); details != nil {
		return apperrors.NewValidationError("vacation_start_date and vacation_end_date required", details)
	}

	start, err := parseDate(payload.VacationStartDate)
	if err != nil {
		return apperrors.NewValidationError("vacation_start_date must be an ISO-8601 date", nil)
	}
	end, err := parseDate(payload.VacationEndDate)
	if err != nil {
		return apperrors.NewValidationError("vacation_end_date must be an ISO-8601 date", nil)
	}

	req, err := h.service.Submit(c.Context(), employeeID, service.SubmitInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Vacation request submitted",
		"data":    dto.FromRequest(req),
	})
}

// dateLayouts accepted for vacation date inputs.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseStatusQuery(c *fiber.Ctx) (*domain.RequestStatus, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	status := domain.RequestStatus(raw)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status must be pending, approved or rejected", map[string]any{
			"status": raw,
		})
	}
	return &status, nil
}
