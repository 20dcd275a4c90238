package app

import (
	"context"

	"retrospace/internal/models"
)

// Follow toggles the follow edge from the viewer to targetID.
func (a *App) Follow(ctx context.Context, targetID string) error {
	return a.graphOp(ctx, targetID, a.graph.ToggleFollow)
}

// Block toggles the viewer's block on targetID. Blocking also drops the
// viewer's follow of the target; unblocking does not restore it.
func (a *App) Block(ctx context.Context, targetID string) error {
	return a.graphOp(ctx, targetID, a.graph.ToggleBlock)
}

func (a *App) graphOp(ctx context.Context, targetID string, op func(context.Context, *models.User, *models.User) (*models.User, *models.User, error)) error {
	v, err := a.requireActive()
	if err != nil {
		return err
	}

	a.mu.RLock()
	target := findUser(a.users, targetID)
	a.mu.RUnlock()
	if target == nil {
		return models.NewNotFoundError("User", targetID)
	}

	if _, _, err := op(ctx, v, target); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// Suggestions lists up to limit accounts the viewer might follow: everyone
// except the viewer, accounts they already follow, and anyone either party
// has blocked.
func (a *App) Suggestions(limit int) []models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.viewer == nil {
		return nil
	}

	var out []models.User
	for _, u := range a.users {
		if len(out) == limit {
			break
		}
		if u.ID == a.viewer.ID || a.viewer.Follows(u.ID) {
			continue
		}
		if a.viewer.HasBlocked(u.ID) || u.HasBlocked(a.viewer.ID) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// OnlineCount reports how many users are currently flagged online.
func (a *App) OnlineCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n := 0
	for _, u := range a.users {
		if u.IsOnline {
			n++
		}
	}
	return n
}
