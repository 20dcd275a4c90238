package app

import (
	"context"

	"retrospace/internal/models"
)

// Ban suspends targetID for the given number of minutes; moderation.Permanent
// records a ban without an expiry stamp. Admin only.
func (a *App) Ban(ctx context.Context, targetID string, minutes int) error {
	v, err := a.requireAdmin()
	if err != nil {
		return err
	}
	if v.ID == targetID {
		return models.NewValidationError("Admins cannot ban themselves")
	}

	a.mu.RLock()
	target := findUser(a.users, targetID)
	a.mu.RUnlock()
	if target == nil {
		return models.NewNotFoundError("User", targetID)
	}

	if _, err := a.mod.Ban(ctx, target, minutes); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// Unban lifts a suspension. Admin only.
func (a *App) Unban(ctx context.Context, targetID string) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}

	a.mu.RLock()
	target := findUser(a.users, targetID)
	a.mu.RUnlock()
	if target == nil {
		return models.NewNotFoundError("User", targetID)
	}

	if _, err := a.mod.Unban(ctx, target); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// DeletePost removes a post. The author may delete their own; admins may
// delete any. Deleting an already-gone post succeeds.
func (a *App) DeletePost(ctx context.Context, postID string) error {
	v, err := a.requireActive()
	if err != nil {
		return err
	}

	a.mu.RLock()
	p := findPost(a.posts, postID)
	a.mu.RUnlock()
	if p != nil && p.AuthorID != v.ID && !v.IsAdmin {
		return models.NewUnauthorizedError("Only the author or an admin can delete a post")
	}

	if err := a.mod.DeletePost(ctx, postID); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// Wipe clears every locally stored collection and the session, then drops to
// logged out. Remote data is untouched. Admin only.
func (a *App) Wipe(ctx context.Context) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}
	if err := a.mod.WipeLocal(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.viewer = nil
	a.mu.Unlock()
	return a.Reload(ctx)
}
