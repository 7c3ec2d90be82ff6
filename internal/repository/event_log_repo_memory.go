package repository

import (
	"context"
	"sync"

	"gatherly/invitehub/internal/model"
)

type memoryEventLogRepository struct {
	mu   sync.Mutex
	rows []model.EventLog
}

func NewMemoryEventLogRepository() EventLogRepository {
	return &memoryEventLogRepository{}
}

func (r *memoryEventLogRepository) Append(_ context.Context, entry *model.EventLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *entry)
	return nil
}

func (r *memoryEventLogRepository) List(_ context.Context) ([]model.EventLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EventLog, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
