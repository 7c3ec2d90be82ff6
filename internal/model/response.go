package model

import "time"

// Choice is a participant's answer.
type Choice string

const (
	ChoiceYes   Choice = "YES"
	ChoiceNo    Choice = "NO"
	ChoiceMaybe Choice = "MAYBE"
)

// ParseChoice maps free-form input to a Choice, or false if invalid.
func ParseChoice(s string) (Choice, bool) {
	switch Choice(s) {
	case ChoiceYes, ChoiceNo, ChoiceMaybe:
		return Choice(s), true
	}
	return "", false
}

// Response is one participant's answer for one invitation. At most one
// effective row exists per (invite, device); the MAYBE→YES/NO transition
// rewrites choice and name in place and keeps the original CreatedAt.
type Response struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	InviteID     string    `gorm:"type:varchar(32);index;not null" json:"invite_id"`
	AnonDeviceID string    `gorm:"type:varchar(64);index;not null" json:"anon_device_id"`
	Name         string    `gorm:"type:varchar(80);not null" json:"name"`
	Choice       Choice    `gorm:"type:varchar(5);not null" json:"choice"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Response) TableName() string { return "responses" }
