package service

import (
	"context"
	"time"

	"gatherly/invitehub/internal/model"
	"gatherly/invitehub/internal/rules"
)

// InviteSummary is the immutable face of an invitation shown to every viewer.
type InviteSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	WhenAt      time.Time `json:"when_at"`
	WhenHasTime bool      `json:"when_has_time"`
	ConfirmBy   time.Time `json:"confirm_by"`
	CapacityMax *int      `json:"capacity_max,omitempty"`
	CapacityMin int       `json:"capacity_min"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnapshotCounts are the post-decay aggregates, organizer-only.
type SnapshotCounts struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Maybe int `json:"maybe"`
	Views int `json:"views"`
}

// MyResponse echoes the requesting device's own response, if any.
type MyResponse struct {
	Choice model.Choice `json:"choice"`
	Name   string       `json:"name"`
}

// Snapshot is the read model of one invitation, shaped by the visibility
// rules: non-responding outsiders on an OPEN invitation see a position count
// only; responders and organizers see the YES list; organizers additionally
// see raw counts, NO/MAYBE name lists and unique views.
type Snapshot struct {
	Invite         InviteSummary      `json:"invite"`
	Status         model.Phase        `json:"status"`
	ClosureCause   model.ClosureCause `json:"closure_cause"`
	Verdict        model.Verdict      `json:"verdict,omitempty"`
	TotalPositions *int               `json:"total_positions,omitempty"`
	Participants   []string           `json:"participants,omitempty"`
	My             *MyResponse        `json:"my,omitempty"`
	Counts         *SnapshotCounts    `json:"counts,omitempty"`
	NoNames        []string           `json:"no_names,omitempty"`
	MaybeNames     []string           `json:"maybe_names,omitempty"`
}

// GetSnapshot rebuilds the invitation's current picture from the canonical
// rows and applies the visibility rules. The read path never writes: a
// CLOSED invitation without a persisted verdict reports a computed one, and
// the next mutation (or nothing) persists it.
func (s *inviteService) GetSnapshot(ctx context.Context, inviteID, deviceID string, isOrganizer bool) (*Snapshot, error) {
	if inviteID == "" {
		return nil, validationError("missing invite id")
	}

	p, err := s.project(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	now := s.clock().UTC()
	status := rules.ResolveStatus(&p.invite.ConfirmBy, p.invite.CapacityMax, p.counts.Yes, now)
	decayed := rules.DecayMaybe(&p.invite.ConfirmBy, now, p.counts)

	snap := &Snapshot{
		Invite: InviteSummary{
			ID:          p.invite.ID,
			Title:       p.invite.Title,
			WhenAt:      p.invite.WhenAt,
			WhenHasTime: p.invite.WhenHasTime,
			ConfirmBy:   p.invite.ConfirmBy,
			CapacityMax: p.invite.CapacityMax,
			CapacityMin: p.invite.CapacityMin,
			CreatedAt:   p.invite.CreatedAt,
		},
		Status:       status.Phase,
		ClosureCause: status.Cause,
	}

	my, responding := p.byDevice[deviceID]
	if !responding && isOrganizer {
		// The organizer always has the automatic YES on file.
		my, responding = p.byDevice[model.OrganizerDeviceID(inviteID)]
	}

	closed := status.Phase == model.PhaseClosed
	showParticipants := responding || isOrganizer || closed

	if !closed {
		positions := len(p.responses)
		snap.TotalPositions = &positions
		if showParticipants {
			snap.Participants = p.yesNames
		}
	} else {
		snap.Verdict = p.invite.Verdict
		if snap.Verdict == model.VerdictNone {
			// Missed or failed finalization: derive the verdict on read, do
			// not trust the stale cache and do not persist from here.
			snap.Verdict = rules.ComputeVerdict(p.invite.CapacityMin, decayed.Yes)
		}
		snap.Participants = p.yesNames
	}

	if responding {
		snap.My = &MyResponse{Choice: my.Choice, Name: my.Name}
	}

	if isOrganizer {
		views, err := s.uniqueViewCount(ctx, inviteID)
		if err != nil {
			return nil, err
		}
		snap.Counts = &SnapshotCounts{
			Yes:   decayed.Yes,
			No:    decayed.No,
			Maybe: decayed.Maybe,
			Views: views,
		}
		snap.NoNames = p.noNames
		snap.MaybeNames = p.maybeNames
	}
	return snap, nil
}
