// Package social maintains the follow and block relationships between users.
// Follow edges are mirrored onto both user records, so every toggle is a
// dual write through the gateway.
package social

import (
	"context"
	"log/slog"

	"retrospace/internal/gateway"
	"retrospace/internal/middleware"
	"retrospace/internal/models"
)

// Service applies graph mutations and persists both affected records.
type Service struct {
	gw gateway.Gateway
}

// NewService returns a graph service over the given gateway.
func NewService(gw gateway.Gateway) *Service {
	return &Service{gw: gw}
}

// ToggleFollow flips the follow edge from viewer to target and returns the
// updated records. Following adds target to viewer.Following and viewer to
// target.Followers; unfollowing removes both. A self-toggle is a no-op.
func (s *Service) ToggleFollow(ctx context.Context, viewer, target *models.User) (*models.User, *models.User, error) {
	if viewer.ID == target.ID {
		return viewer, target, nil
	}

	v := viewer.Clone()
	t := target.Clone()
	if v.Follows(t.ID) {
		v.Following = removeID(v.Following, t.ID)
		t.Followers = removeID(t.Followers, v.ID)
	} else {
		v.Following = append(v.Following, t.ID)
		t.Followers = append(t.Followers, v.ID)
	}

	if err := s.writeBoth(ctx, v, t); err != nil {
		return nil, nil, err
	}
	return v, t, nil
}

// ToggleBlock flips viewer's block on target. Blocking also removes the
// viewer's own follow of the target, as if the follow toggle had fired; the
// target's follow of the viewer is untouched. Unblocking does not restore the
// severed edge. A self-toggle is a no-op.
func (s *Service) ToggleBlock(ctx context.Context, viewer, target *models.User) (*models.User, *models.User, error) {
	if viewer.ID == target.ID {
		return viewer, target, nil
	}

	v := viewer.Clone()
	t := target.Clone()
	if v.HasBlocked(t.ID) {
		v.BlockedUsers = removeID(v.BlockedUsers, t.ID)
	} else {
		v.BlockedUsers = append(v.BlockedUsers, t.ID)
		v.Following = removeID(v.Following, t.ID)
		t.Followers = removeID(t.Followers, v.ID)
		middleware.Logger.InfoContext(ctx, "user blocked",
			slog.String("viewer_id", v.ID),
			slog.String("target_id", t.ID),
		)
	}

	if err := s.writeBoth(ctx, v, t); err != nil {
		return nil, nil, err
	}
	return v, t, nil
}

// writeBoth persists the pair. The writes are not transactional; a failure
// after the first write can leave a one-sided edge, which readers tolerate.
func (s *Service) writeBoth(ctx context.Context, a, b *models.User) error {
	if err := s.gw.UpdateUser(ctx, a); err != nil {
		return err
	}
	return s.gw.UpdateUser(ctx, b)
}

func removeID(ids []string, id string) []string {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
