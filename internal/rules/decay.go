package rules

import "time"

// Counts are raw response tallies for one invitation.
type Counts struct {
	Yes   int
	No    int
	Maybe int
}

// DecayMaybe folds MAYBE into NO once the deadline has passed. This is a
// view-time transformation: stored response rows are never rewritten, only
// reported aggregates change, so the audit trail of what was actually
// recorded survives.
func DecayMaybe(confirmBy *time.Time, now time.Time, c Counts) Counts {
	if confirmBy == nil || now.Before(*confirmBy) {
		return c
	}
	return Counts{Yes: c.Yes, No: c.No + c.Maybe, Maybe: 0}
}
