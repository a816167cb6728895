package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vacation-service/internal/api/dto"
	"github.com/spec-kit/vacation-service/internal/domain"
	"github.com/spec-kit/vacation-service/internal/service"
	apperrors "github.com/spec-kit/vacation-service/pkg/util"
)

// ManagersHandler manages manager-facing endpoints.
type ManagersHandler struct {
	service *service.VacationService
}

// NewManagersHandler constructs handler.
func NewManagersHandler(vacationService *service.VacationService) *ManagersHandler {
	return &ManagersHandler{service: vacationService}
}

// ListRequests GET /managers/:id/requests.
func (h *ManagersHandler) ListRequests(c *fiber.Ctx) error {
	managerID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("manager id must be an integer", nil)
	}
	status, err := parseStatusQuery(c)
	if err != nil {
		return err
	}
	requests, err := h.service.ListAllRequests(c.Context(), managerID, status)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromRequests(requests))
}

// OverlappingRequests GET /managers/:id/overlapping_requests.
func (h *ManagersHandler) OverlappingRequests(c *fiber.Ctx) error {
	managerID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("manager id must be an integer", nil)
	}
	overlaps, err := h.service.FindOverlaps(c.Context(), managerID)
	if err != nil {
		return err
	}
	items := make([]dto.OverlapResponse, 0, len(overlaps))
	for i := range overlaps {
		items = append(items, dto.OverlapResponse{
			First:  dto.FromRequest(&overlaps[i].First),
			Second: dto.FromRequest(&overlaps[i].Second),
		})
	}
	return c.JSON(items)
}

// ProcessRequest PUT /managers/:id/requests/:requestId.
func (h *ManagersHandler) ProcessRequest(c *fiber.Ctx) error {
	managerID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("manager id must be an integer", nil)
	}
	requestID, err := c.ParamsInt("requestId")
	if err != nil {
		return apperrors.NewValidationError("request id must be an integer", nil)
	}
	var payload dto.ProcessVacationRequest
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := payload.Validate(); details != nil {
		return apperrors.NewValidationError("status must be approved or rejected", details)
	}

	req, err := h.service.Process(c.Context(), managerID, requestID, domain.RequestStatus(payload.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Request has been %s", req.Status),
		"data":    dto.FromRequest(req),
	})
}
