package repository

import (
	"context"

	"gatherly/invitehub/internal/model"
)

type InvitationRepository interface {
	Append(ctx context.Context, inv *model.Invitation) error
	List(ctx context.Context) ([]model.Invitation, error)
	// UpdateWhere reads the row with the given id, applies mutate and writes
	// the whole row back. Returns ErrRowNotFound when the id is unknown.
	UpdateWhere(ctx context.Context, id string, mutate func(*model.Invitation)) (*model.Invitation, error)
}
