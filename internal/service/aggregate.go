package service

import (
	"context"
	"sort"
	"strings"

	"gatherly/invitehub/internal/model"
	"gatherly/invitehub/internal/rules"
)

// projection is the current picture of one invitation, rebuilt from the
// canonical response rows. The cached counters on the invitation row are
// never consulted for decisions; they are refreshed from this projection
// after each mutation.
type projection struct {
	invite     model.Invitation
	responses  []model.Response // this invitation only, created_at ascending
	counts     rules.Counts     // raw counts, pre-decay
	yesNames   []string
	noNames    []string
	maybeNames []string
	byDevice   map[string]model.Response
}

// project reads the invitation and its full response set fresh from the store
// and recomputes every aggregate from scratch.
func (s *inviteService) project(ctx context.Context, inviteID string) (*projection, error) {
	invites, err := s.invites.List(ctx)
	if err != nil {
		return nil, storeUnavailable("read invites", err)
	}
	var invite *model.Invitation
	for i := range invites {
		if invites[i].ID == inviteID {
			invite = &invites[i]
			break
		}
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}

	all, err := s.responses.List(ctx)
	if err != nil {
		return nil, storeUnavailable("read responses", err)
	}

	p := &projection{
		invite:   *invite,
		byDevice: make(map[string]model.Response),
	}
	for _, r := range all {
		if r.InviteID != inviteID {
			continue
		}
		p.responses = append(p.responses, r)
		p.byDevice[r.AnonDeviceID] = r
	}
	sort.SliceStable(p.responses, func(i, j int) bool {
		return p.responses[i].CreatedAt.Before(p.responses[j].CreatedAt)
	})

	for _, r := range p.responses {
		name := strings.TrimSpace(r.Name)
		switch r.Choice {
		case model.ChoiceYes:
			p.counts.Yes++
			if name != "" {
				p.yesNames = append(p.yesNames, name)
			}
		case model.ChoiceNo:
			p.counts.No++
			if name != "" {
				p.noNames = append(p.noNames, name)
			}
		case model.ChoiceMaybe:
			p.counts.Maybe++
			if name != "" {
				p.maybeNames = append(p.maybeNames, name)
			}
		}
	}
	return p, nil
}

// uniqueViewCount recomputes the distinct-device view cardinality from the
// view rows; the cached counter on the invitation row is display-only.
func (s *inviteService) uniqueViewCount(ctx context.Context, inviteID string) (int, error) {
	views, err := s.views.List(ctx)
	if err != nil {
		return 0, storeUnavailable("read views", err)
	}
	seen := make(map[string]struct{})
	for _, v := range views {
		if v.InviteID == inviteID {
			seen[v.AnonDeviceID] = struct{}{}
		}
	}
	return len(seen), nil
}
