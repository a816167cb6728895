package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func span(startDay, endDay int) *VacationRequest {
	return &VacationRequest{
		StartDate: date(2024, time.March, startDay),
		EndDate:   date(2024, time.March, endDay),
	}
}

func TestOverlapsPartial(t *testing.T) {
	a := span(1, 5)
	b := span(4, 8)
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlapsContainment(t *testing.T) {
	outer := span(1, 20)
	inner := span(5, 7)
	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestOverlapsSharedEndpoint(t *testing.T) {
	a := span(1, 5)
	b := span(5, 9)
	assert.True(t, a.Overlaps(b))
}

func TestOverlapsDisjoint(t *testing.T) {
	a := span(1, 5)
	b := span(6, 9)
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, RequestStatusPending.Terminal())
	assert.True(t, RequestStatusApproved.Terminal())
	assert.True(t, RequestStatusRejected.Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, RequestStatusPending.Valid())
	assert.False(t, RequestStatus("cancelled").Valid())
}
