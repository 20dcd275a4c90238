// Package session tracks the current viewer's identity across process
// restarts. The session pointer always lives in the local document store,
// independent of which backend serves entity data.
package session

import (
	"context"
	"log/slog"

	"retrospace/internal/document"
	"retrospace/internal/middleware"
	"retrospace/internal/models"
)

// Manager persists at most one active viewer id.
type Manager struct {
	store document.Store
}

// NewManager returns a session manager over the given local store.
func NewManager(store document.Store) *Manager {
	return &Manager{store: store}
}

// Get returns the stored viewer id, or "" when no session exists.
func (m *Manager) Get(ctx context.Context) (string, error) {
	data, err := m.store.Read(ctx, document.KeySession)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set stores the viewer id; an empty id clears the session.
func (m *Manager) Set(ctx context.Context, id string) error {
	if id == "" {
		return m.store.Delete(ctx, document.KeySession)
	}
	return m.store.Write(ctx, document.KeySession, []byte(id))
}

// Restore validates the stored id against the freshest user collection and
// returns the matching user. A stale or missing session fails open to a
// logged-out state: the caller gets nil, never an error it must handle as
// fatal.
func (m *Manager) Restore(ctx context.Context, users []models.User) *models.User {
	id, err := m.Get(ctx)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "session read failed, starting logged out",
			slog.String("error", err.Error()),
		)
		return nil
	}
	if id == "" {
		return nil
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	middleware.Logger.InfoContext(ctx, "stored session references a missing user, starting logged out",
		slog.String("session_id", id),
	)
	return nil
}
