package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vacation-service/internal/domain"
)

func testSeed() Seed {
	return Seed{
		Employees: []SeedEmployee{
			{ID: 1, Name: "John Doe", RemainingVacationDays: 20},
			{ID: 2, Name: "Jane Smith", RemainingVacationDays: 20},
		},
		Managers: []SeedManager{
			{ID: 1, Name: "Manager 1"},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSubmitDecrementsBalanceAndAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testSeed())
	employees := NewEmployeeRepository(store)
	requests := NewRequestRepository(store)

	first, err := requests.Submit(ctx, 1, date(2024, time.March, 4), date(2024, time.March, 8), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, domain.RequestStatusPending, first.Status)
	assert.Nil(t, first.ProcessedBy)

	second, err := requests.Submit(ctx, 2, date(2024, time.March, 11), date(2024, time.March, 12), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	remaining, err := employees.RemainingDays(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, remaining)
}

func TestSubmitInsufficientBalanceLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testSeed())
	employees := NewEmployeeRepository(store)
	requests := NewRequestRepository(store)

	_, err := requests.Submit(ctx, 1, date(2024, time.March, 1), date(2024, time.April, 30), 42)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	remaining, err := employees.RemainingDays(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, remaining)
	assert.Equal(t, 0, requests.Count(ctx))
}

func TestSubmitUnknownEmployee(t *testing.T) {
	store := NewMemoryStore(testSeed())
	requests := NewRequestRepository(store)

	_, err := requests.Submit(context.Background(), 99, date(2024, time.March, 4), date(2024, time.March, 8), 5)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestProcessTransitionsOnceOnly(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testSeed())
	requests := NewRequestRepository(store)

	submitted, err := requests.Submit(ctx, 1, date(2024, time.March, 4), date(2024, time.March, 8), 5)
	require.NoError(t, err)

	processed, err := requests.Process(ctx, submitted.ID, 1, domain.RequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, processed.Status)
	require.NotNil(t, processed.ProcessedBy)
	assert.Equal(t, 1, *processed.ProcessedBy)

	_, err = requests.Process(ctx, submitted.ID, 1, domain.RequestStatusRejected)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// First transition sticks.
	got, err := requests.GetByID(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, got.Status)
}

func TestProcessUnknownRequest(t *testing.T) {
	store := NewMemoryStore(testSeed())
	requests := NewRequestRepository(store)

	_, err := requests.Process(context.Background(), 7, 1, domain.RequestStatusApproved)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListWithFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testSeed())
	requests := NewRequestRepository(store)

	_, err := requests.Submit(ctx, 1, date(2024, time.March, 4), date(2024, time.March, 8), 5)
	require.NoError(t, err)
	_, err = requests.Submit(ctx, 2, date(2024, time.March, 4), date(2024, time.March, 8), 5)
	require.NoError(t, err)
	_, err = requests.Submit(ctx, 1, date(2024, time.April, 1), date(2024, time.April, 2), 2)
	require.NoError(t, err)
	_, err = requests.Process(ctx, 1, 1, domain.RequestStatusApproved)
	require.NoError(t, err)

	applicant := 1
	mine, err := requests.ListWithFilter(ctx, RequestFilter{ApplicantID: &applicant})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)

	pending, err := requests.ListWithFilter(ctx, RequestFilter{
		ApplicantID: &applicant,
		Statuses:    []domain.RequestStatus{domain.RequestStatusPending},
	})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].ID)

	none, err := requests.ListWithFilter(ctx, RequestFilter{
		ApplicantID: &applicant,
		Statuses:    []domain.RequestStatus{domain.RequestStatusRejected},
	})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSubmitStampsSubmissionTime(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testSeed())
	fixed := date(2024, time.February, 1)
	store.SetClock(func() time.Time { return fixed })
	requests := NewRequestRepository(store)

	req, err := requests.Submit(ctx, 1, date(2024, time.March, 4), date(2024, time.March, 8), 5)
	require.NoError(t, err)
	assert.True(t, req.SubmittedAt.Equal(fixed))
}

func TestManagerExists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testSeed())
	managers := NewManagerRepository(store)

	assert.True(t, managers.Exists(ctx, 1))
	assert.False(t, managers.Exists(ctx, 42))
}

func TestLoadSeedDefaults(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)
	assert.Len(t, seed.Employees, 2)
	assert.Len(t, seed.Managers, 2)
}

func TestConcurrentSubmitsKeepInvariants(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed{
		Employees: []SeedEmployee{{ID: 1, Name: "John Doe", RemainingVacationDays: 10}},
	})
	employees := NewEmployeeRepository(store)
	requests := NewRequestRepository(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// One business day each; only 10 can succeed.
			_, _ = requests.Submit(ctx, 1, date(2024, time.March, 4), date(2024, time.March, 4), 1)
		}()
	}
	wg.Wait()

	remaining, err := employees.RemainingDays(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 10, requests.Count(ctx))

	all, err := requests.Snapshot(ctx)
	require.NoError(t, err)
	seen := map[int]bool{}
	for i, req := range all {
		assert.Equal(t, i+1, req.ID)
		assert.False(t, seen[req.ID])
		seen[req.ID] = true
	}
}
