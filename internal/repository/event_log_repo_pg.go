package repository

import (
	"context"

	"gorm.io/gorm"

	"gatherly/invitehub/internal/model"
)

type pgEventLogRepository struct {
	db *gorm.DB
}

func NewPGEventLogRepository(db *gorm.DB) EventLogRepository {
	return &pgEventLogRepository{db: db}
}

func (r *pgEventLogRepository) Append(ctx context.Context, entry *model.EventLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *pgEventLogRepository) List(ctx context.Context) ([]model.EventLog, error) {
	var entries []model.EventLog
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
