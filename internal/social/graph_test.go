package social

import (
	"context"
	"testing"

	"retrospace/internal/document"
	"retrospace/internal/gateway"
	"retrospace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Service, gateway.Gateway, *models.User, *models.User) {
	t.Helper()
	store, err := document.OpenFileStore(t.TempDir())
	require.NoError(t, err)
	gw := gateway.NewLocal(store)

	ctx := context.Background()
	alice := &models.User{ID: "u1", Username: "alice"}
	bob := &models.User{ID: "u2", Username: "bob"}
	require.NoError(t, gw.CreateUser(ctx, alice))
	require.NoError(t, gw.CreateUser(ctx, bob))

	return NewService(gw), gw, alice, bob
}

func persisted(t *testing.T, gw gateway.Gateway, id string) *models.User {
	t.Helper()
	users, err := gw.GetUsers(context.Background())
	require.NoError(t, err)
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	t.Fatalf("user %s not found", id)
	return nil
}

func TestToggleFollowIsSymmetric(t *testing.T) {
	svc, gw, alice, bob := setup(t)
	ctx := context.Background()

	v, tgt, err := svc.ToggleFollow(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, v.Follows(bob.ID))
	assert.True(t, tgt.FollowedBy(alice.ID))

	// Both sides of the edge are persisted.
	assert.True(t, persisted(t, gw, "u1").Follows("u2"))
	assert.True(t, persisted(t, gw, "u2").FollowedBy("u1"))

	// Toggling again removes both sides.
	v, tgt, err = svc.ToggleFollow(ctx, v, tgt)
	require.NoError(t, err)
	assert.False(t, v.Follows(bob.ID))
	assert.False(t, tgt.FollowedBy(alice.ID))
	assert.False(t, persisted(t, gw, "u1").Follows("u2"))
	assert.False(t, persisted(t, gw, "u2").FollowedBy("u1"))
}

func TestToggleFollowSelfIsNoOp(t *testing.T) {
	svc, gw, alice, _ := setup(t)

	v, _, err := svc.ToggleFollow(context.Background(), alice, alice)
	require.NoError(t, err)
	assert.Empty(t, v.Following)
	assert.Empty(t, persisted(t, gw, "u1").Following)
}

func TestBlockUnfollowsTargetOnly(t *testing.T) {
	svc, gw, alice, bob := setup(t)
	ctx := context.Background()

	// Mutual follows first.
	alice, bob, err := svc.ToggleFollow(ctx, alice, bob)
	require.NoError(t, err)
	bob, alice, err = svc.ToggleFollow(ctx, bob, alice)
	require.NoError(t, err)
	require.True(t, alice.Follows(bob.ID))
	require.True(t, bob.Follows(alice.ID))

	alice, bob, err = svc.ToggleBlock(ctx, alice, bob)
	require.NoError(t, err)

	assert.True(t, alice.HasBlocked(bob.ID))
	assert.False(t, alice.Follows(bob.ID))
	assert.False(t, bob.FollowedBy(alice.ID))

	// The block only fires the viewer's own unfollow; bob still follows alice.
	assert.True(t, bob.Follows(alice.ID))
	assert.True(t, alice.FollowedBy(bob.ID))

	stored := persisted(t, gw, "u2")
	assert.Empty(t, stored.Followers)
	assert.Equal(t, []string{"u1"}, stored.Following)
}

func TestBlockedFollowerEdgeSurvivesUnblock(t *testing.T) {
	svc, gw, alice, bob := setup(t)
	ctx := context.Background()

	// Bob follows alice; alice blocks then unblocks him.
	bob, alice, err := svc.ToggleFollow(ctx, bob, alice)
	require.NoError(t, err)
	alice, bob, err = svc.ToggleBlock(ctx, alice, bob)
	require.NoError(t, err)
	alice, bob, err = svc.ToggleBlock(ctx, alice, bob)
	require.NoError(t, err)

	assert.False(t, alice.HasBlocked(bob.ID))
	assert.True(t, bob.Follows(alice.ID))
	assert.True(t, alice.FollowedBy(bob.ID))
	assert.True(t, persisted(t, gw, "u2").Follows("u1"))
}

func TestUnblockDoesNotRestoreFollows(t *testing.T) {
	svc, _, alice, bob := setup(t)
	ctx := context.Background()

	alice, bob, err := svc.ToggleFollow(ctx, alice, bob)
	require.NoError(t, err)
	alice, bob, err = svc.ToggleBlock(ctx, alice, bob)
	require.NoError(t, err)
	alice, bob, err = svc.ToggleBlock(ctx, alice, bob)
	require.NoError(t, err)

	assert.False(t, alice.HasBlocked(bob.ID))
	assert.False(t, alice.Follows(bob.ID), "severed edges stay severed after unblock")
	assert.False(t, bob.FollowedBy(alice.ID))
}

func TestToggleBlockSelfIsNoOp(t *testing.T) {
	svc, gw, alice, _ := setup(t)

	v, _, err := svc.ToggleBlock(context.Background(), alice, alice)
	require.NoError(t, err)
	assert.Empty(t, v.BlockedUsers)
	assert.Empty(t, persisted(t, gw, "u1").BlockedUsers)
}
