package domain

import "time"

// RequestStatus enumerates lifecycle states for vacation requests.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Valid reports whether s is a known status value.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transition.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// VacationRequest is the aggregate for a single date-range absence request.
// Ids are 1-based and assigned in creation order; the ledger never deletes.
type VacationRequest struct {
	ID          int
	ApplicantID int
	Status      RequestStatus
	ProcessedBy *int
	SubmittedAt time.Time
	StartDate   time.Time
	EndDate     time.Time
}

// Overlaps reports whether the inclusive [StartDate, EndDate] spans of r and
// other intersect. Each endpoint is tested against the other span in both
// directions so full containment is caught either way round.
func (r *VacationRequest) Overlaps(other *VacationRequest) bool {
	return withinSpan(other.StartDate, r.StartDate, r.EndDate) ||
		withinSpan(other.EndDate, r.StartDate, r.EndDate) ||
		withinSpan(r.StartDate, other.StartDate, other.EndDate) ||
		withinSpan(r.EndDate, other.StartDate, other.EndDate)
}

func withinSpan(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
