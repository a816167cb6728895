package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/vacation-service/internal/domain"
)

var validate = validator.New()

// SubmitVacationRequest payload.
type SubmitVacationRequest struct {
	VacationStartDate string `json:"vacation_start_date" validate:"required"`
	VacationEndDate   string `json:"vacation_end_date" validate:"required"`
}

// ProcessVacationRequest payload.
type ProcessVacationRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// Validate runs struct-tag validation and returns field-level failures.
func (r SubmitVacationRequest) Validate() map[string]any {
	return validationDetails(validate.Struct(r))
}

// Validate runs struct-tag validation and returns field-level failures.
func (r ProcessVacationRequest) Validate() map[string]any {
	return validationDetails(validate.Struct(r))
}

func validationDetails(err error) map[string]any {
	if err == nil {
		return nil
	}
	details := map[string]any{}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		return details
	}
	details["payload"] = err.Error()
	return details
}

// VacationRequestResponse is the wire shape of a ledger record.
type VacationRequestResponse struct {
	RequestID          int                  `json:"request_id"`
	Applicant          int                  `json:"applicant"`
	Status             domain.RequestStatus `json:"status"`
	ProcessedBy        *int                 `json:"processed_by"`
	RequestSubmittedAt time.Time            `json:"request_submitted_at"`
	VacationStartDate  string               `json:"vacation_start_date"`
	VacationEndDate    string               `json:"vacation_end_date"`
}

// OverlapResponse is one reported pair of overlapping requests.
type OverlapResponse struct {
	First  VacationRequestResponse `json:"first"`
	Second VacationRequestResponse `json:"second"`
}

// RemainingDaysResponse reports an employee's balance.
type RemainingDaysResponse struct {
	RemainingVacationDays int `json:"remaining_vacation_days"`
}

// FromRequest converts a domain record to its wire shape.
func FromRequest(req *domain.VacationRequest) VacationRequestResponse {
	return VacationRequestResponse{
		RequestID:          req.ID,
		Applicant:          req.ApplicantID,
		Status:             req.Status,
		ProcessedBy:        req.ProcessedBy,
		RequestSubmittedAt: req.SubmittedAt,
		VacationStartDate:  req.StartDate.Format("2006-01-02"),
		VacationEndDate:    req.EndDate.Format("2006-01-02"),
	}
}

// FromRequests converts a ledger slice preserving order.
func FromRequests(reqs []domain.VacationRequest) []VacationRequestResponse {
	out := make([]VacationRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, FromRequest(&reqs[i]))
	}
	return out
}
