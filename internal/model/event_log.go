package model

import "time"

// Event log entry types.
const (
	EventInviteCreated    = "invite_created"
	EventResponseRecorded = "response_recorded"
	EventResponseModified = "response_modified"
	EventFirstView        = "first_view"
)

// EventLog is an append-only audit trail row. Writes are best-effort and
// never block the mutation that produced them.
type EventLog struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Type         string    `gorm:"type:varchar(32);not null;index" json:"type"`
	InviteID     string    `gorm:"type:varchar(32);index" json:"invite_id"`
	AnonDeviceID string    `gorm:"type:varchar(64)" json:"anon_device_id"`
	PayloadJSON  string    `gorm:"type:text;column:payload_json" json:"payload_json,omitempty"`
}

func (EventLog) TableName() string { return "event_logs" }
