package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Invitation{},
		&Response{},
		&View{},
		&EventLog{},
	); err != nil {
		return err
	}

	// One effective response per (invite, device); the MAYBE transition updates
	// in place, so the pair stays unique.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_responses_invite_device " +
			"ON responses (invite_id, anon_device_id)",
	).Error
}
