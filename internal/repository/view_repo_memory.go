package repository

import (
	"context"
	"sync"

	"gatherly/invitehub/internal/model"
)

type memoryViewRepository struct {
	mu   sync.RWMutex
	rows []model.View
}

func NewMemoryViewRepository() ViewRepository {
	return &memoryViewRepository{}
}

func (r *memoryViewRepository) Append(_ context.Context, view *model.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *view)
	return nil
}

func (r *memoryViewRepository) List(_ context.Context) ([]model.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.View, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
