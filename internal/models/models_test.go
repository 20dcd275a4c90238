package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCloneIsDeep(t *testing.T) {
	until := int64(1700000000000)
	u := &User{
		ID:           "u1",
		Following:    []string{"u2"},
		Followers:    []string{"u3"},
		BlockedUsers: []string{"u4"},
		BannedUntil:  &until,
	}

	c := u.Clone()
	c.Following[0] = "changed"
	c.BlockedUsers = append(c.BlockedUsers, "u5")
	*c.BannedUntil = 1

	assert.Equal(t, "u2", u.Following[0])
	assert.Len(t, u.BlockedUsers, 1)
	assert.Equal(t, until, *u.BannedUntil)
}

func TestPostCloneIsDeep(t *testing.T) {
	p := &Post{ID: "p1", Likes: []string{"u1"}, Comments: []Comment{{ID: "c1"}}}

	c := p.Clone()
	c.Likes[0] = "changed"
	c.Comments[0].Content = "changed"

	assert.Equal(t, "u1", p.Likes[0])
	assert.Empty(t, p.Comments[0].Content)
}

func TestEdgeHelpers(t *testing.T) {
	u := &User{Following: []string{"a"}, Followers: []string{"b"}, BlockedUsers: []string{"c"}}

	assert.True(t, u.Follows("a"))
	assert.False(t, u.Follows("b"))
	assert.True(t, u.FollowedBy("b"))
	assert.True(t, u.HasBlocked("c"))
	assert.False(t, u.HasBlocked("a"))
}

func TestHasCodeUnwraps(t *testing.T) {
	inner := NewConflictError("Username taken")
	wrapped := fmt.Errorf("signup failed: %w", inner)

	assert.True(t, HasCode(wrapped, CodeConflict))
	assert.False(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeConflict))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnreachableError(cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewIDPrefixes(t *testing.T) {
	id := NewID(UserIDPrefix)
	assert.True(t, strings.HasPrefix(id, "user-"))
	assert.NotEqual(t, NewID(PostIDPrefix), NewID(PostIDPrefix))
}
