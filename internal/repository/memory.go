package repository

import (
	"sync"
	"time"

	"github.com/spec-kit/vacation-service/internal/domain"
)

// MemoryStore owns all volatile state: the employee and manager directories
// and the append-only request ledger. One RWMutex covers every mutation so a
// submission's balance check, decrement, id assignment and append form a
// single critical section, and readers always see fully-written records.
type MemoryStore struct {
	mu        sync.RWMutex
	employees map[int]*domain.Employee
	managers  map[int]*domain.Manager
	requests  []*domain.VacationRequest

	now func() time.Time
}

// NewMemoryStore builds a store populated from seed data.
func NewMemoryStore(seed Seed) *MemoryStore {
	s := &MemoryStore{
		employees: make(map[int]*domain.Employee, len(seed.Employees)),
		managers:  make(map[int]*domain.Manager, len(seed.Managers)),
		now:       time.Now,
	}
	for _, e := range seed.Employees {
		s.employees[e.ID] = &domain.Employee{
			ID:            e.ID,
			Name:          e.Name,
			RemainingDays: e.RemainingVacationDays,
		}
	}
	for _, m := range seed.Managers {
		s.managers[m.ID] = &domain.Manager{ID: m.ID, Name: m.Name}
	}
	return s
}

// SetClock overrides the timestamp source, for tests.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.now = now
}

func (s *MemoryStore) getEmployee(id int) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emp, ok := s.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	cp := *emp
	return &cp, nil
}

func (s *MemoryStore) getManager(id int) (*domain.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mgr, ok := s.managers[id]
	if !ok {
		return nil, ErrManagerNotFound
	}
	cp := *mgr
	return &cp, nil
}

// submitRequest atomically checks the applicant's balance, consumes it and
// appends a pending request with the next 1-based id.
func (s *MemoryStore) submitRequest(employeeID int, start, end time.Time, businessDays int) (*domain.VacationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[employeeID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	if emp.RemainingDays < businessDays {
		return nil, ErrInsufficientBalance
	}
	emp.RemainingDays -= businessDays

	req := &domain.VacationRequest{
		ID:          len(s.requests) + 1,
		ApplicantID: employeeID,
		Status:      domain.RequestStatusPending,
		SubmittedAt: s.now(),
		StartDate:   start,
		EndDate:     end,
	}
	s.requests = append(s.requests, req)

	cp := *req
	return &cp, nil
}

// processRequest atomically transitions a pending request to a terminal
// status and records the processing manager. Terminal requests stay as their
// first transition left them.
func (s *MemoryStore) processRequest(requestID, managerID int, status domain.RequestStatus) (*domain.VacationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := s.findRequestLocked(requestID)
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != domain.RequestStatusPending {
		return nil, ErrAlreadyProcessed
	}
	req.Status = status
	processedBy := managerID
	req.ProcessedBy = &processedBy

	cp := *req
	return &cp, nil
}

func (s *MemoryStore) getRequest(id int) (*domain.VacationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req := s.findRequestLocked(id)
	if req == nil {
		return nil, ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

// listRequests returns copies in ledger insertion order.
func (s *MemoryStore) listRequests(filter RequestFilter) []domain.VacationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.VacationRequest, 0, len(s.requests))
	for _, req := range s.requests {
		if filter.ApplicantID != nil && req.ApplicantID != *filter.ApplicantID {
			continue
		}
		if len(filter.Statuses) > 0 && !statusIn(req.Status, filter.Statuses) {
			continue
		}
		out = append(out, *req)
	}
	return out
}

func (s *MemoryStore) findRequestLocked(id int) *domain.VacationRequest {
	for _, req := range s.requests {
		if req.ID == id {
			return req
		}
	}
	return nil
}

func (s *MemoryStore) employeeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

func (s *MemoryStore) managerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.managers)
}

func (s *MemoryStore) requestCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

func statusIn(status domain.RequestStatus, set []domain.RequestStatus) bool {
	for _, candidate := range set {
		if candidate == status {
			return true
		}
	}
	return false
}
