package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gatherly/invitehub/internal/repository"
)

const (
	lockKeyPrefix = "invitehub:lock:"
	lockTTL       = 5 * time.Second
	lockRetryWait = 25 * time.Millisecond
	lockRetries   = 40
)

// inviteLock serializes mutations per invitation id through the state store.
// The tabular backend has no transactions, so this narrows the check-then-act
// window on capacity admission and finalization. It is best-effort: if the
// state store is down, mutations proceed unlocked and the bounded-overfill
// race documented in the store contract applies.
type inviteLock struct {
	state  repository.StateStore
	logger *zap.Logger
}

func newInviteLock(state repository.StateStore, logger *zap.Logger) *inviteLock {
	return &inviteLock{state: state, logger: logger}
}

// acquire blocks until the per-invite lock is held, the retry budget runs out
// or the context ends. The returned release func is always safe to call.
func (l *inviteLock) acquire(ctx context.Context, inviteID string) func() {
	key := lockKeyPrefix + inviteID
	token := []byte(uuid.NewString())

	for attempt := 0; attempt < lockRetries; attempt++ {
		ok, err := l.state.SetNX(ctx, key, token, lockTTL)
		if err != nil {
			l.logger.Warn("invite lock unavailable, proceeding unlocked",
				zap.String("invite_id", inviteID), zap.Error(err))
			return func() {}
		}
		if ok {
			return func() {
				if err := l.state.Delete(context.WithoutCancel(ctx), key); err != nil {
					l.logger.Warn("invite lock release failed",
						zap.String("invite_id", inviteID), zap.Error(err))
				}
			}
		}
		select {
		case <-ctx.Done():
			return func() {}
		case <-time.After(lockRetryWait):
		}
	}

	l.logger.Warn("invite lock contention exhausted retries, proceeding unlocked",
		zap.String("invite_id", inviteID))
	return func() {}
}
