package domain

// Employee is a member of staff entitled to a vacation-day balance.
type Employee struct {
	ID            int
	Name          string
	RemainingDays int
}

// Manager reviews vacation requests. Manager records are immutable after
// seeding and serve only as an authorization predicate.
type Manager struct {
	ID   int
	Name string
}
