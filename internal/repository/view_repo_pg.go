package repository

import (
	"context"

	"gorm.io/gorm"

	"gatherly/invitehub/internal/model"
)

type pgViewRepository struct {
	db *gorm.DB
}

func NewPGViewRepository(db *gorm.DB) ViewRepository {
	return &pgViewRepository{db: db}
}

func (r *pgViewRepository) Append(ctx context.Context, view *model.View) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *pgViewRepository) List(ctx context.Context) ([]model.View, error) {
	var views []model.View
	if err := r.db.WithContext(ctx).Order("first_seen_at ASC").Find(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}
