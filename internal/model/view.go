package model

import "time"

// View records that a device has seen an invitation at least once.
// It only ever feeds the unique-view counter; it is never a response.
type View struct {
	InviteID     string    `gorm:"type:varchar(32);primaryKey" json:"invite_id"`
	AnonDeviceID string    `gorm:"type:varchar(64);primaryKey" json:"anon_device_id"`
	FirstSeenAt  time.Time `gorm:"not null" json:"first_seen_at"`
}

func (View) TableName() string { return "views" }
