package repository

import (
	"context"

	"gatherly/invitehub/internal/model"
)

type ViewRepository interface {
	Append(ctx context.Context, view *model.View) error
	List(ctx context.Context) ([]model.View, error)
}
