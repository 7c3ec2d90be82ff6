// Package rules holds the pure invitation lifecycle rules: status resolution,
// post-deadline maybe decay and the final verdict. These functions are the only
// producers of the status variant; callers never infer lifecycle state ad hoc.
package rules

import (
	"time"

	"gatherly/invitehub/internal/model"
)

// Status is the resolved lifecycle state of an invitation at an instant.
type Status struct {
	Phase model.Phase
	Cause model.ClosureCause
}

// Open reports whether the invitation still admits responses.
func (s Status) Open() bool { return s.Phase == model.PhaseOpen }

// ResolveStatus derives the current status from the deadline, the optional
// capacity bound and the current YES count.
//
// The deadline comparison is inclusive: a response arriving at the exact
// deadline instant is rejected, so an "immediate" policy (deadline equal to
// event time) closes at the moment it is reached rather than one tick later.
// A nil deadline yields OPEN; upstream validation requires deadlines, this is
// a safety net only.
func ResolveStatus(confirmBy *time.Time, capacityMax *int, yesCount int, now time.Time) Status {
	if confirmBy == nil {
		return Status{Phase: model.PhaseOpen}
	}
	if !now.Before(*confirmBy) {
		return Status{Phase: model.PhaseClosed, Cause: model.CauseExpired}
	}
	if capacityMax != nil && yesCount >= *capacityMax {
		return Status{Phase: model.PhaseClosed, Cause: model.CauseFull}
	}
	return Status{Phase: model.PhaseOpen}
}
