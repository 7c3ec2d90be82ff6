package repository

import (
	"context"
	"sync"

	"gatherly/invitehub/internal/model"
)

type memoryResponseRepository struct {
	mu   sync.RWMutex
	rows []model.Response
}

func NewMemoryResponseRepository() ResponseRepository {
	return &memoryResponseRepository{}
}

func (r *memoryResponseRepository) Append(_ context.Context, resp *model.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *resp)
	return nil
}

func (r *memoryResponseRepository) List(_ context.Context) ([]model.Response, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Response, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *memoryResponseRepository) UpdateWhere(_ context.Context, inviteID, deviceID string, mutate func(*model.Response)) (*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].InviteID == inviteID && r.rows[i].AnonDeviceID == deviceID {
			mutate(&r.rows[i])
			resp := r.rows[i]
			return &resp, nil
		}
	}
	return nil, ErrRowNotFound
}
