package repository

import (
	"context"

	"gatherly/invitehub/internal/model"
)

type EventLogRepository interface {
	Append(ctx context.Context, entry *model.EventLog) error
	List(ctx context.Context) ([]model.EventLog, error)
}
