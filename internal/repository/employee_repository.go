package repository

import (
	"context"

	"github.com/spec-kit/vacation-service/internal/domain"
)

// EmployeeRepository encapsulates employee directory lookups.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	RemainingDays(ctx context.Context, id int) (int, error)
	Count(ctx context.Context) int
}

// ManagerRepository encapsulates manager directory lookups. Exists is total
// and never fails; an unknown id is simply not a manager.
type ManagerRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Manager, error)
	Exists(ctx context.Context, id int) bool
	Count(ctx context.Context) int
}

type employeeRepository struct {
	store *MemoryStore
}

// NewEmployeeRepository instantiates a directory view over the store.
func NewEmployeeRepository(store *MemoryStore) EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	return r.store.getEmployee(id)
}

func (r *employeeRepository) RemainingDays(ctx context.Context, id int) (int, error) {
	emp, err := r.store.getEmployee(id)
	if err != nil {
		return 0, err
	}
	return emp.RemainingDays, nil
}

func (r *employeeRepository) Count(ctx context.Context) int {
	return r.store.employeeCount()
}

type managerRepository struct {
	store *MemoryStore
}

// NewManagerRepository instantiates a directory view over the store.
func NewManagerRepository(store *MemoryStore) ManagerRepository {
	return &managerRepository{store: store}
}

func (r *managerRepository) GetByID(ctx context.Context, id int) (*domain.Manager, error) {
	return r.store.getManager(id)
}

func (r *managerRepository) Exists(ctx context.Context, id int) bool {
	_, err := r.store.getManager(id)
	return err == nil
}

func (r *managerRepository) Count(ctx context.Context) int {
	return r.store.managerCount()
}
