package repository

import (
	"context"

	"gatherly/invitehub/internal/model"
)

type ResponseRepository interface {
	Append(ctx context.Context, resp *model.Response) error
	List(ctx context.Context) ([]model.Response, error)
	// UpdateWhere reads the row for (invite, device), applies mutate and
	// writes it back. Returns ErrRowNotFound when no such response exists.
	UpdateWhere(ctx context.Context, inviteID, deviceID string, mutate func(*model.Response)) (*model.Response, error)
}
