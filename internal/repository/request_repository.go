package repository

import (
	"context"
	"time"

	"github.com/spec-kit/vacation-service/internal/domain"
)

// RequestFilter captures ledger listing parameters.
type RequestFilter struct {
	ApplicantID *int
	Statuses    []domain.RequestStatus
}

// RequestRepository encapsulates the vacation-request ledger. Submit and
// Process are atomic: balance check, decrement, id assignment and append
// happen inside one critical section, as does the status check-and-set.
type RequestRepository interface {
	Submit(ctx context.Context, employeeID int, start, end time.Time, businessDays int) (*domain.VacationRequest, error)
	Process(ctx context.Context, requestID, managerID int, status domain.RequestStatus) (*domain.VacationRequest, error)
	GetByID(ctx context.Context, id int) (*domain.VacationRequest, error)
	ListWithFilter(ctx context.Context, filter RequestFilter) ([]domain.VacationRequest, error)
	Snapshot(ctx context.Context) ([]domain.VacationRequest, error)
	Count(ctx context.Context) int
}

type requestRepository struct {
	store *MemoryStore
}

// NewRequestRepository instantiates a ledger view over the store.
func NewRequestRepository(store *MemoryStore) RequestRepository {
	return &requestRepository{store: store}
}

func (r *requestRepository) Submit(ctx context.Context, employeeID int, start, end time.Time, businessDays int) (*domain.VacationRequest, error) {
	return r.store.submitRequest(employeeID, start, end, businessDays)
}

func (r *requestRepository) Process(ctx context.Context, requestID, managerID int, status domain.RequestStatus) (*domain.VacationRequest, error) {
	return r.store.processRequest(requestID, managerID, status)
}

func (r *requestRepository) GetByID(ctx context.Context, id int) (*domain.VacationRequest, error) {
	return r.store.getRequest(id)
}

func (r *requestRepository) ListWithFilter(ctx context.Context, filter RequestFilter) ([]domain.VacationRequest, error) {
	return r.store.listRequests(filter), nil
}

func (r *requestRepository) Snapshot(ctx context.Context) ([]domain.VacationRequest, error) {
	return r.store.listRequests(RequestFilter{}), nil
}

func (r *requestRepository) Count(ctx context.Context) int {
	return r.store.requestCount()
}
