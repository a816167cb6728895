package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/vacation-service/internal/domain"
	"github.com/spec-kit/vacation-service/internal/events"
	"github.com/spec-kit/vacation-service/internal/repository"
	apperrors "github.com/spec-kit/vacation-service/pkg/util"
)

// VacationService coordinates the vacation-request workflow: submission,
// balance queries, manager review and overlap detection.
type VacationService struct {
	employees  repository.EmployeeRepository
	managers   repository.ManagerRepository
	requests   repository.RequestRepository
	dispatcher events.Dispatcher
}

// VacationDependencies bundles repositories for the vacation service.
type VacationDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	ManagerRepo  repository.ManagerRepository
	RequestRepo  repository.RequestRepository
	Dispatcher   events.Dispatcher
}

// SubmitInput describes a parsed submission payload.
type SubmitInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// RequestOverlap is one reported pair of overlapping approved absences.
type RequestOverlap struct {
	First  domain.VacationRequest
	Second domain.VacationRequest
}

// NewVacationService constructs the service.
func NewVacationService(deps VacationDependencies) *VacationService {
	return &VacationService{
		employees:  deps.EmployeeRepo,
		managers:   deps.ManagerRepo,
		requests:   deps.RequestRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit validates a request, consumes the applicant's business-day balance
// and appends a pending request to the ledger.
func (s *VacationService) Submit(ctx context.Context, employeeID int, input SubmitInput) (*domain.VacationRequest, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, mapRepositoryError(err)
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, apperrors.NewValidationError("end date must be after start date", nil)
	}

	days := domain.BusinessDays(input.StartDate, input.EndDate)
	req, err := s.requests.Submit(ctx, employeeID, input.StartDate, input.EndDate, days)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	remaining, err := s.employees.RemainingDays(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventRequestSubmitted,
		RequestID: req.ID,
		Actor:     employeeActor(employeeID),
		Payload: events.RequestSubmittedPayload{
			ApplicantID:   req.ApplicantID,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			BusinessDays:  days,
			RemainingDays: remaining,
		},
	})
	return req, nil
}

// ListEmployeeRequests returns the employee's requests in ledger order,
// optionally narrowed by status. Unknown employees yield an empty list, as in
// the employee-facing listing contract.
func (s *VacationService) ListEmployeeRequests(ctx context.Context, employeeID int, status *domain.RequestStatus) ([]domain.VacationRequest, error) {
	filter := repository.RequestFilter{ApplicantID: &employeeID}
	if status != nil {
		filter.Statuses = []domain.RequestStatus{*status}
	}
	return s.requests.ListWithFilter(ctx, filter)
}

// GetRemainingDays returns the employee's current balance.
func (s *VacationService) GetRemainingDays(ctx context.Context, employeeID int) (int, error) {
	remaining, err := s.employees.RemainingDays(ctx, employeeID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return remaining, nil
}

// ListAllRequests returns the whole ledger for an authorized manager,
// optionally narrowed by status.
func (s *VacationService) ListAllRequests(ctx context.Context, managerID int, status *domain.RequestStatus) ([]domain.VacationRequest, error) {
	if !s.managers.Exists(ctx, managerID) {
		return nil, apperrors.NewUnauthorized("manager authorization required")
	}
	filter := repository.RequestFilter{}
	if status != nil {
		filter.Statuses = []domain.RequestStatus{*status}
	}
	return s.requests.ListWithFilter(ctx, filter)
}

// FindOverlaps scans every unordered ledger pair (i < j, ledger order) and
// reports those where both requests are approved, the applicants differ and
// the inclusive date ranges intersect. Pairs are raw: a request overlapping
// two others appears in two tuples.
func (s *VacationService) FindOverlaps(ctx context.Context, managerID int) ([]RequestOverlap, error) {
	if !s.managers.Exists(ctx, managerID) {
		return nil, apperrors.NewUnauthorized("manager authorization required")
	}
	ledger, err := s.requests.Snapshot(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	overlaps := []RequestOverlap{}
	for i := 0; i < len(ledger); i++ {
		for j := i + 1; j < len(ledger); j++ {
			first, second := &ledger[i], &ledger[j]
			if first.ApplicantID == second.ApplicantID {
				continue
			}
			if first.Status != domain.RequestStatusApproved || second.Status != domain.RequestStatusApproved {
				continue
			}
			if first.Overlaps(second) {
				overlaps = append(overlaps, RequestOverlap{First: *first, Second: *second})
			}
		}
	}
	return overlaps, nil
}

// Process transitions a pending request to approved or rejected on behalf of
// a manager. Rejection does not restore the consumed balance.
func (s *VacationService) Process(ctx context.Context, managerID, requestID int, newStatus domain.RequestStatus) (*domain.VacationRequest, error) {
	if !s.managers.Exists(ctx, managerID) {
		return nil, apperrors.NewUnauthorized("manager authorization required")
	}
	if !newStatus.Terminal() {
		return nil, apperrors.NewValidationError("status must be approved or rejected", map[string]any{
			"status": string(newStatus),
		})
	}

	req, err := s.requests.Process(ctx, requestID, managerID, newStatus)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventRequestProcessed,
		RequestID: req.ID,
		Actor:     managerActor(managerID),
		Payload: events.RequestProcessedPayload{
			ApplicantID: req.ApplicantID,
			OldStatus:   domain.RequestStatusPending,
			NewStatus:   req.Status,
		},
	})
	return req, nil
}

func (s *VacationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func employeeActor(employeeID int) events.Actor {
	return events.Actor{EmployeeID: &employeeID}
}

func managerActor(managerID int) events.Actor {
	return events.Actor{ManagerID: &managerID}
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return apperrors.NewNotFound("employee", nil)
	case errors.Is(err, repository.ErrManagerNotFound):
		return apperrors.NewNotFound("manager", nil)
	case errors.Is(err, repository.ErrRequestNotFound):
		return apperrors.NewNotFound("vacation request", nil)
	case errors.Is(err, repository.ErrInsufficientBalance):
		return apperrors.NewInsufficientBalance("not enough remaining vacation days", nil)
	case errors.Is(err, repository.ErrAlreadyProcessed):
		return apperrors.NewConflict("request has already been processed", nil)
	default:
		return apperrors.NewInternalError(err)
	}
}
