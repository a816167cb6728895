package domain

import "time"

// BusinessDays counts the weekdays (Monday through Friday) in the inclusive
// span [start, end]. Inputs are treated as already-resolved calendar instants;
// only their calendar dates matter. Returns 0 when end precedes start.
func BusinessDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
