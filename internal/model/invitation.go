package model

import "time"

// Phase is the lifecycle phase of an invitation. CLOSED is terminal.
type Phase string

const (
	PhaseOpen   Phase = "OPEN"
	PhaseClosed Phase = "CLOSED"
)

// ClosureCause records why an invitation closed.
type ClosureCause string

const (
	CauseNone    ClosureCause = ""
	CauseExpired ClosureCause = "EXPIRED"
	CauseFull    ClosureCause = "FULL"
)

// Verdict is the final go/no-go outcome, written once at closure.
type Verdict string

const (
	VerdictNone    Verdict = ""
	VerdictSuccess Verdict = "SUCCESS"
	VerdictFailure Verdict = "FAILURE"
)

// Invitation is one proposed event. Status, closure cause, verdict and the
// counters are a best-effort cache; the response and view rows are the source
// of truth and are re-projected whenever correctness matters.
type Invitation struct {
	ID          string    `gorm:"type:varchar(32);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(40);not null" json:"title"`
	WhenAt      time.Time `gorm:"not null" json:"when_at"`
	WhenHasTime bool      `gorm:"not null;default:true" json:"when_has_time"`
	ConfirmBy   time.Time `gorm:"not null" json:"confirm_by"`
	CapacityMax *int      `json:"capacity_max,omitempty"`
	CapacityMin int       `gorm:"not null;default:2" json:"capacity_min"`
	CreatedAt   time.Time `json:"created_at"`

	Status       Phase        `gorm:"type:varchar(8);not null;default:'OPEN'" json:"status"`
	ClosedAt     *time.Time   `json:"closed_at,omitempty"`
	ClosureCause ClosureCause `gorm:"type:varchar(8);not null;default:''" json:"closure_cause"`
	Verdict      Verdict      `gorm:"type:varchar(8);not null;default:''" json:"verdict,omitempty"`

	ViewCountUnique     int        `gorm:"not null;default:0" json:"view_count_unique"`
	YesCount            int        `gorm:"not null;default:0" json:"yes_count"`
	NoCount             int        `gorm:"not null;default:0" json:"no_count"`
	MaybeCount          int        `gorm:"not null;default:0" json:"maybe_count"`
	FirstViewAt         *time.Time `json:"first_view_at,omitempty"`
	FirstResponseAt     *time.Time `json:"first_response_at,omitempty"`
	ResponseTimeDeltaMS *int64     `gorm:"column:response_time_delta_ms" json:"response_time_delta_ms,omitempty"`
}

func (Invitation) TableName() string { return "invites" }

// OrganizerDeviceID is the synthetic device id under which the organizer's
// automatic YES is recorded for a given invitation.
func OrganizerDeviceID(inviteID string) string {
	return "organizer_" + inviteID
}
