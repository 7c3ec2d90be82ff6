package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gatherly/invitehub/internal/model"
)

type pgResponseRepository struct {
	db *gorm.DB
}

func NewPGResponseRepository(db *gorm.DB) ResponseRepository {
	return &pgResponseRepository{db: db}
}

func (r *pgResponseRepository) Append(ctx context.Context, resp *model.Response) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *pgResponseRepository) List(ctx context.Context) ([]model.Response, error) {
	var responses []model.Response
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *pgResponseRepository) UpdateWhere(ctx context.Context, inviteID, deviceID string, mutate func(*model.Response)) (*model.Response, error) {
	var resp model.Response
	err := r.db.WithContext(ctx).
		Where("invite_id = ? AND anon_device_id = ?", inviteID, deviceID).
		First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRowNotFound
		}
		return nil, err
	}
	mutate(&resp)
	if err := r.db.WithContext(ctx).Save(&resp).Error; err != nil {
		return nil, err
	}
	return &resp, nil
}
