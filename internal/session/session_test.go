package session

import (
	"context"
	"errors"
	"testing"

	"retrospace/internal/document"
	"retrospace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	store, err := document.OpenFileStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(store)
}

func TestSessionSetGetClear(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	id, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, id, "fresh store has no session")

	require.NoError(t, m.Set(ctx, "user-1"))
	id, err = m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	require.NoError(t, m.Set(ctx, ""))
	id, err = m.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestRestoreMatchesStoredID(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	users := []models.User{{ID: "user-1", Username: "alice"}, {ID: "user-2", Username: "bob"}}

	require.NoError(t, m.Set(ctx, "user-2"))
	v := m.Restore(ctx, users)
	require.NotNil(t, v)
	assert.Equal(t, "bob", v.Username)
}

func TestRestoreStaleSessionFailsOpen(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "user-gone"))
	assert.Nil(t, m.Restore(ctx, []models.User{{ID: "user-1"}}), "stale id restores to logged out")
	assert.Nil(t, m.Restore(ctx, nil))
}

// brokenStore fails every read so Restore's error path is observable.
type brokenStore struct{}

func (brokenStore) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}
func (brokenStore) Write(context.Context, string, []byte) error { return nil }
func (brokenStore) Delete(context.Context, string) error        { return nil }
func (brokenStore) Close() error                                { return nil }

func TestRestoreReadFailureFailsOpen(t *testing.T) {
	m := NewManager(brokenStore{})
	assert.Nil(t, m.Restore(context.Background(), []models.User{{ID: "user-1"}}))
}
