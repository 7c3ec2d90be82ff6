package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gatherly/invitehub/internal/model"
	"gatherly/invitehub/internal/repository"
	"gatherly/invitehub/internal/rules"
	"gatherly/invitehub/pkg/ids"
)

const (
	maxTitleLen    = 40
	capacityFloor  = 2
	capacityCeil   = 20
	quorumCeil     = 100
	createWindow   = 7 * 24 * time.Hour
	softCapacity   = 6
	inviteIDLength = 32
)

type CreateInvitationInput struct {
	ID            string // optional client-supplied id, must be 32 chars to be honored
	Title         string
	WhenAt        time.Time
	WhenHasTime   bool
	ConfirmBy     time.Time
	CapacityMin   *int
	CapacityMax   *int
	OrganizerName string
}

type CreateInvitationResult struct {
	Invitation model.Invitation
	Warnings   []string
}

type InviteService interface {
	CreateInvitation(ctx context.Context, in CreateInvitationInput) (*CreateInvitationResult, error)
	SubmitResponse(ctx context.Context, inviteID, deviceID, name, choice string) error
	RecordView(ctx context.Context, inviteID, deviceID string) (bool, error)
	GetSnapshot(ctx context.Context, inviteID, deviceID string, isOrganizer bool) (*Snapshot, error)
	ListEvents(ctx context.Context, inviteID string) ([]model.EventLog, error)
}

type inviteService struct {
	invites   repository.InvitationRepository
	responses repository.ResponseRepository
	views     repository.ViewRepository
	events    repository.EventLogRepository
	lock      *inviteLock
	logger    *zap.Logger
	clock     func() time.Time
}

func NewInviteService(
	invites repository.InvitationRepository,
	responses repository.ResponseRepository,
	views repository.ViewRepository,
	events repository.EventLogRepository,
	state repository.StateStore,
	logger *zap.Logger,
) InviteService {
	return &inviteService{
		invites:   invites,
		responses: responses,
		views:     views,
		events:    events,
		lock:      newInviteLock(state, logger),
		logger:    logger,
		clock:     time.Now,
	}
}

// CreateInvitation validates and appends a new invitation, then synthesizes
// the organizer's automatic YES response under the well-known device id and
// writes the counters back.
func (s *inviteService) CreateInvitation(ctx context.Context, in CreateInvitationInput) (*CreateInvitationResult, error) {
	now := s.clock().UTC()

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("missing title")
	}
	if len([]rune(title)) > maxTitleLen {
		return nil, validationError("title too long")
	}

	organizerName := normalizeName(in.OrganizerName)
	if organizerName == "" {
		return nil, validationError("missing organizer name")
	}

	if in.WhenAt.IsZero() {
		return nil, validationError("missing event time")
	}
	whenAt := in.WhenAt.UTC()
	if !whenAt.After(now) {
		return nil, validationError("event time must be in the future")
	}
	if whenAt.After(now.Add(createWindow)) {
		return nil, validationError("event time out of range")
	}

	if in.ConfirmBy.IsZero() {
		return nil, validationError("missing confirmation deadline")
	}
	confirmBy := in.ConfirmBy.UTC()
	if confirmBy.After(whenAt) {
		return nil, validationError("confirmation deadline after event time")
	}
	// The immediate policy (deadline equal to event time) is always valid for
	// a future event; any earlier deadline must itself still be ahead.
	if !confirmBy.Equal(whenAt) && confirmBy.Before(now) {
		return nil, validationError("confirmation deadline in the past")
	}

	var capacityMax *int
	if in.CapacityMax != nil {
		c := clampInt(*in.CapacityMax, capacityFloor, capacityCeil)
		capacityMax = &c
	}
	capacityMin := rules.MinQuorum
	if in.CapacityMin != nil {
		capacityMin = clampInt(*in.CapacityMin, rules.MinQuorum, quorumCeil)
	}

	id := in.ID
	if len(id) != inviteIDLength {
		id = ids.NewInviteID()
	}

	inv := model.Invitation{
		ID:          id,
		Title:       title,
		WhenAt:      whenAt,
		WhenHasTime: in.WhenHasTime,
		ConfirmBy:   confirmBy,
		CapacityMax: capacityMax,
		CapacityMin: capacityMin,
		CreatedAt:   now,
		Status:      model.PhaseOpen,
	}
	if err := s.invites.Append(ctx, &inv); err != nil {
		return nil, storeUnavailable("append invite", err)
	}
	s.logEvent(ctx, model.EventInviteCreated, id, "", map[string]any{
		"confirm_by": confirmBy, "when_at": whenAt,
	})

	// Organizer auto-admission: always YES, synthetic device id bound to the
	// invitation.
	organizer := model.Response{
		ID:           uuid.NewString(),
		InviteID:     id,
		AnonDeviceID: model.OrganizerDeviceID(id),
		Name:         organizerName,
		Choice:       model.ChoiceYes,
		CreatedAt:    now,
	}
	if err := s.responses.Append(ctx, &organizer); err != nil {
		return nil, storeUnavailable("append organizer response", err)
	}
	s.finalizeAfterMutation(ctx, id, organizer.AnonDeviceID, now)

	var warnings []string
	if capacityMax != nil && *capacityMax > softCapacity {
		warnings = append(warnings, "capacity_soft_warning")
	}

	s.logger.Info("invitation created",
		zap.String("invite_id", id),
		zap.Time("confirm_by", confirmBy),
		zap.Int("capacity_min", capacityMin))
	return &CreateInvitationResult{Invitation: inv, Warnings: warnings}, nil
}

// SubmitResponse admits or rejects one participant response. The current
// status is always recomputed from the canonical response rows, never from
// the cached counters on the invitation row.
func (s *inviteService) SubmitResponse(ctx context.Context, inviteID, deviceID, name, choiceRaw string) error {
	if inviteID == "" {
		return validationError("missing invite id")
	}
	if deviceID == "" {
		return validationError("missing device id")
	}
	normalized := normalizeName(name)
	if normalized == "" {
		return validationError("missing name")
	}
	choice, ok := model.ParseChoice(strings.ToUpper(strings.TrimSpace(choiceRaw)))
	if !ok {
		return validationError("invalid choice")
	}

	release := s.lock.acquire(ctx, inviteID)
	defer release()

	p, err := s.project(ctx, inviteID)
	if err != nil {
		return err
	}
	now := s.clock().UTC()

	// The deadline gate comes first: after expiry even the one allowed
	// MAYBE transition is rejected.
	status := rules.ResolveStatus(&p.invite.ConfirmBy, p.invite.CapacityMax, p.counts.Yes, now)
	if !status.Open() {
		return ErrInviteClosed
	}

	if existing, responded := p.byDevice[deviceID]; responded {
		if existing.Choice != model.ChoiceMaybe || choice == model.ChoiceMaybe {
			// YES and NO are terminal; MAYBE may transition once, and only
			// to something other than MAYBE.
			return ErrAlreadyResponded
		}
		return s.convertMaybe(ctx, p, existing, choice, normalized)
	}

	// Commit-time admission re-check; the status snapshot above may already
	// be stale under concurrent writes.
	if choice == model.ChoiceYes && p.invite.CapacityMax != nil && p.counts.Yes >= *p.invite.CapacityMax {
		return ErrInviteClosed
	}

	resp := model.Response{
		ID:           uuid.NewString(),
		InviteID:     inviteID,
		AnonDeviceID: deviceID,
		Name:         normalized,
		Choice:       choice,
		CreatedAt:    now,
	}
	if err := s.responses.Append(ctx, &resp); err != nil {
		return storeUnavailable("append response", err)
	}
	s.logEvent(ctx, model.EventResponseRecorded, inviteID, deviceID, map[string]any{
		"choice": choice,
	})
	s.finalizeAfterMutation(ctx, inviteID, deviceID, now)
	return nil
}

// convertMaybe performs the single allowed MAYBE→{YES,NO} transition in
// place, preserving the original creation timestamp.
func (s *inviteService) convertMaybe(ctx context.Context, p *projection, existing model.Response, choice model.Choice, name string) error {
	// Converting to YES still consumes a capacity slot.
	if choice == model.ChoiceYes && p.invite.CapacityMax != nil && p.counts.Yes >= *p.invite.CapacityMax {
		return ErrInviteClosed
	}

	_, err := s.responses.UpdateWhere(ctx, p.invite.ID, existing.AnonDeviceID, func(r *model.Response) {
		r.Choice = choice
		r.Name = name
		// CreatedAt stays: the latency metric measures the original response.
	})
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return ErrAlreadyResponded
		}
		return storeUnavailable("update response", err)
	}
	s.logEvent(ctx, model.EventResponseModified, p.invite.ID, existing.AnonDeviceID, map[string]any{
		"from": model.ChoiceMaybe, "to": choice,
	})
	s.finalizeAfterMutation(ctx, p.invite.ID, existing.AnonDeviceID, existing.CreatedAt)
	return nil
}

// RecordView idempotently records a first-seen view per (invite, device).
func (s *inviteService) RecordView(ctx context.Context, inviteID, deviceID string) (bool, error) {
	if inviteID == "" {
		return false, validationError("missing invite id")
	}
	if deviceID == "" {
		return false, validationError("missing device id")
	}

	release := s.lock.acquire(ctx, inviteID)
	defer release()

	invites, err := s.invites.List(ctx)
	if err != nil {
		return false, storeUnavailable("read invites", err)
	}
	found := false
	for i := range invites {
		if invites[i].ID == inviteID {
			found = true
			break
		}
	}
	if !found {
		return false, ErrInviteNotFound
	}

	views, err := s.views.List(ctx)
	if err != nil {
		return false, storeUnavailable("read views", err)
	}
	unique := make(map[string]struct{})
	for _, v := range views {
		if v.InviteID == inviteID {
			if v.AnonDeviceID == deviceID {
				return false, nil
			}
			unique[v.AnonDeviceID] = struct{}{}
		}
	}

	now := s.clock().UTC()
	view := model.View{InviteID: inviteID, AnonDeviceID: deviceID, FirstSeenAt: now}
	if err := s.views.Append(ctx, &view); err != nil {
		return false, storeUnavailable("append view", err)
	}
	s.logEvent(ctx, model.EventFirstView, inviteID, deviceID, nil)

	// Cached counter refresh is best-effort; reads recompute from the rows.
	uniqueCount := len(unique) + 1
	if _, err := s.invites.UpdateWhere(ctx, inviteID, func(inv *model.Invitation) {
		if inv.FirstViewAt == nil {
			inv.FirstViewAt = &now
		}
		inv.ViewCountUnique = uniqueCount
	}); err != nil {
		s.logger.Warn("view counter write-back failed",
			zap.String("invite_id", inviteID), zap.Error(err))
	}
	return true, nil
}

// finalizeAfterMutation refreshes the cached aggregates on the invitation row
// and, when it observes the OPEN→CLOSED transition, persists closure fields
// and the verdict exactly once. All failures here are best-effort: status is
// always derivable fresh and the verdict is recomputed on read as a fallback.
// The latency metric measures the first participant response, so the
// organizer's automatic YES never sets it.
func (s *inviteService) finalizeAfterMutation(ctx context.Context, inviteID, deviceID string, respCreatedAt time.Time) {
	p, err := s.project(ctx, inviteID)
	if err != nil {
		s.logger.Warn("aggregate refresh failed", zap.String("invite_id", inviteID), zap.Error(err))
		return
	}
	now := s.clock().UTC()
	status := rules.ResolveStatus(&p.invite.ConfirmBy, p.invite.CapacityMax, p.counts.Yes, now)

	if _, err := s.invites.UpdateWhere(ctx, inviteID, func(inv *model.Invitation) {
		if inv.FirstResponseAt == nil {
			t := respCreatedAt
			inv.FirstResponseAt = &t
		}
		if inv.ResponseTimeDeltaMS == nil && deviceID != model.OrganizerDeviceID(inviteID) {
			if delta := respCreatedAt.Sub(inv.CreatedAt).Milliseconds(); delta >= 0 {
				inv.ResponseTimeDeltaMS = &delta
			}
		}
		inv.YesCount = p.counts.Yes
		inv.NoCount = p.counts.No
		inv.MaybeCount = p.counts.Maybe

		if status.Phase == model.PhaseClosed {
			wasOpen := inv.Status == model.PhaseOpen
			inv.Status = model.PhaseClosed
			if inv.ClosedAt == nil {
				t := now
				inv.ClosedAt = &t
			}
			inv.ClosureCause = status.Cause
			// Verdict is write-once: only the first observed transition
			// computes it, and a persisted value is never overwritten.
			if wasOpen && inv.Verdict == model.VerdictNone {
				inv.Verdict = rules.ComputeVerdict(inv.CapacityMin, p.counts.Yes)
			}
		}
	}); err != nil {
		s.logger.Warn("finalization write failed",
			zap.String("invite_id", inviteID), zap.Error(err))
	}
}

// ListEvents returns the invitation's audit trail in append order. This is
// the organizer-facing export of the otherwise write-only event log.
func (s *inviteService) ListEvents(ctx context.Context, inviteID string) ([]model.EventLog, error) {
	if inviteID == "" {
		return nil, validationError("missing invite id")
	}

	invites, err := s.invites.List(ctx)
	if err != nil {
		return nil, storeUnavailable("read invites", err)
	}
	found := false
	for i := range invites {
		if invites[i].ID == inviteID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrInviteNotFound
	}

	all, err := s.events.List(ctx)
	if err != nil {
		return nil, storeUnavailable("read event log", err)
	}
	entries := make([]model.EventLog, 0)
	for _, e := range all {
		if e.InviteID == inviteID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *inviteService) logEvent(ctx context.Context, eventType, inviteID, deviceID string, payload map[string]any) {
	entry := model.EventLog{
		CreatedAt:    s.clock().UTC(),
		Type:         eventType,
		InviteID:     inviteID,
		AnonDeviceID: deviceID,
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			entry.PayloadJSON = string(raw)
		}
	}
	if err := s.events.Append(ctx, &entry); err != nil {
		s.logger.Warn("event log append failed",
			zap.String("type", eventType), zap.String("invite_id", inviteID), zap.Error(err))
	}
}

// normalizeName trims and collapses internal whitespace.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
