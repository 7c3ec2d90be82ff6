package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gatherly/invitehub/internal/model"
)

type pgInvitationRepository struct {
	db *gorm.DB
}

func NewPGInvitationRepository(db *gorm.DB) InvitationRepository {
	return &pgInvitationRepository{db: db}
}

func (r *pgInvitationRepository) Append(ctx context.Context, inv *model.Invitation) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *pgInvitationRepository) List(ctx context.Context) ([]model.Invitation, error) {
	var invites []model.Invitation
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// UpdateWhere is a read-modify-write pair, not a conditional update: two
// concurrent callers can both read the same row and the last write wins.
// The engine's cached fields are designed around that.
func (r *pgInvitationRepository) UpdateWhere(ctx context.Context, id string, mutate func(*model.Invitation)) (*model.Invitation, error) {
	var inv model.Invitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRowNotFound
		}
		return nil, err
	}
	mutate(&inv)
	if err := r.db.WithContext(ctx).Save(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}
