// Package moderation holds the admin-only operations: account suspension,
// post removal, and the local data wipe.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"retrospace/internal/document"
	"retrospace/internal/gateway"
	"retrospace/internal/middleware"
	"retrospace/internal/models"
)

// Permanent is the duration sentinel for a ban with no expiry metadata.
const Permanent = -1

// Service applies moderation actions through the gateway. The wipe operates
// on the local store directly and never touches the remote backend.
type Service struct {
	gw    gateway.Gateway
	local document.Store
	now   func() time.Time
}

// NewService returns a moderation service.
func NewService(gw gateway.Gateway, local document.Store) *Service {
	return &Service{gw: gw, local: local, now: time.Now}
}

// Ban suspends the target account. minutes sets the advisory expiry stamp;
// Permanent (or any negative value) records a ban without one. Expiry is
// metadata only: nothing lifts a ban automatically, an admin must Unban.
func (s *Service) Ban(ctx context.Context, target *models.User, minutes int) (*models.User, error) {
	t := target.Clone()
	t.IsBanned = true
	t.BannedUntil = nil
	if minutes >= 0 {
		until := s.now().Add(time.Duration(minutes) * time.Minute).UnixMilli()
		t.BannedUntil = &until
	}
	if err := s.gw.UpdateUser(ctx, t); err != nil {
		return nil, err
	}
	middleware.Logger.InfoContext(ctx, "user banned",
		slog.String("target_id", t.ID),
		slog.Int("minutes", minutes),
	)
	return t, nil
}

// Unban lifts the suspension. The stale BannedUntil stamp is left in place;
// IsBanned alone decides whether an account is suspended.
func (s *Service) Unban(ctx context.Context, target *models.User) (*models.User, error) {
	t := target.Clone()
	t.IsBanned = false
	if err := s.gw.UpdateUser(ctx, t); err != nil {
		return nil, err
	}
	middleware.Logger.InfoContext(ctx, "user unbanned", slog.String("target_id", t.ID))
	return t, nil
}

// DeletePost removes the post through the gateway. Deleting an id that is
// already gone succeeds.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	return s.gw.DeletePost(ctx, id)
}

// WipeLocal clears every locally persisted collection and the session
// pointer. Remote data is out of scope; after a wipe against a remote-backed
// session the remote service still holds everything.
func (s *Service) WipeLocal(ctx context.Context) error {
	for _, key := range []string{
		document.KeyUsers,
		document.KeyPosts,
		document.KeyMessages,
		document.KeySession,
	} {
		if err := s.local.Delete(ctx, key); err != nil {
			return err
		}
	}
	middleware.Logger.WarnContext(ctx, "local data wiped")
	return nil
}
