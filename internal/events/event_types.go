package events

import (
	"time"

	"github.com/spec-kit/vacation-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRequestSubmitted EventType = "request_submitted"
	EventRequestProcessed EventType = "request_processed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	EmployeeID *int `json:"employee_id,omitempty"`
	ManagerID  *int `json:"manager_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RequestID int         `json:"request_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RequestSubmittedPayload payload.
type RequestSubmittedPayload struct {
	ApplicantID   int       `json:"applicant_id"`
	StartDate     time.Time `json:"vacation_start_date"`
	EndDate       time.Time `json:"vacation_end_date"`
	BusinessDays  int       `json:"business_days"`
	RemainingDays int       `json:"remaining_vacation_days"`
}

// RequestProcessedPayload payload.
type RequestProcessedPayload struct {
	ApplicantID int                  `json:"applicant_id"`
	OldStatus   domain.RequestStatus `json:"old_status"`
	NewStatus   domain.RequestStatus `json:"new_status"`
}
