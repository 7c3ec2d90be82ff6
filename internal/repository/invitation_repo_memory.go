package repository

import (
	"context"
	"sync"

	"gatherly/invitehub/internal/model"
)

type memoryInvitationRepository struct {
	mu   sync.RWMutex
	rows []model.Invitation
}

// NewMemoryInvitationRepository returns an in-memory InvitationRepository.
// Used for local dev and tests; semantics match the postgres implementation,
// including the non-atomic read-modify-write of UpdateWhere.
func NewMemoryInvitationRepository() InvitationRepository {
	return &memoryInvitationRepository{}
}

func (r *memoryInvitationRepository) Append(_ context.Context, inv *model.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *inv)
	return nil
}

func (r *memoryInvitationRepository) List(_ context.Context) ([]model.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Invitation, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *memoryInvitationRepository) UpdateWhere(_ context.Context, id string, mutate func(*model.Invitation)) (*model.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			mutate(&r.rows[i])
			inv := r.rows[i]
			return &inv, nil
		}
	}
	return nil, ErrRowNotFound
}
