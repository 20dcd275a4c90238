package feed

import (
	"testing"

	"retrospace/internal/models"

	"github.com/stretchr/testify/assert"
)

func graphFixture() ([]models.User, []models.Post) {
	users := []models.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob", BlockedUsers: []string{"u3"}},
		{ID: "u3", Username: "carol"},
	}
	posts := []models.Post{
		{ID: "p1", AuthorID: "u1", AuthorName: "alice", Content: "hanging at the #mall"},
		{ID: "p2", AuthorID: "u2", AuthorName: "bob", Content: "new blog up", Title: "Synth dreams"},
		{ID: "p3", AuthorID: "u3", AuthorName: "carol", Content: "miss the #mall arcade"},
	}
	return users, posts
}

func TestVisibilityIsMutual(t *testing.T) {
	users, posts := graphFixture()
	idx := NewIndex(users)

	// bob blocked carol: each is invisible to the other, in both directions.
	bob, carol := &users[1], &users[2]
	assert.False(t, Visible(bob, "u3", idx))
	assert.False(t, Visible(carol, "u2", idx))

	// alice is uninvolved and sees everyone.
	alice := &users[0]
	for _, p := range posts {
		assert.True(t, Visible(alice, p.AuthorID, idx))
	}
}

func TestVisibleFailsOpen(t *testing.T) {
	users, _ := graphFixture()
	idx := NewIndex(users)

	assert.True(t, Visible(&users[0], "ghost-author", idx), "missing author record must not hide the post")
	assert.True(t, Visible(nil, "u1", idx), "logged-out viewers see everything")
}

func TestComposeFiltersBlockedAuthors(t *testing.T) {
	users, posts := graphFixture()
	idx := NewIndex(users)

	got := Compose(posts, &users[1], idx, "")
	ids := postIDs(got)
	assert.Equal(t, []string{"p1", "p2"}, ids)
}

func TestComposePreservesOrder(t *testing.T) {
	users, posts := graphFixture()
	got := Compose(posts, nil, NewIndex(users), "")
	assert.Equal(t, []string{"p1", "p2", "p3"}, postIDs(got))
}

func TestSearchTagQueryORSemantics(t *testing.T) {
	p := models.Post{
		Content: "talking about #mall culture",
		Tags:    []string{"#mall"},
	}
	mention := models.Post{
		// No tag, but the token appears in the content text.
		Content: "they closed the #mallrats theater",
		Tags:    []string{"#mallrats"},
	}
	neither := models.Post{Content: "nothing relevant", Tags: []string{"#other"}}

	assert.True(t, Matches(&p, "#mall"), "exact tag match")
	assert.True(t, Matches(&mention, "#mall"), "content substring branch")
	assert.False(t, Matches(&neither, "#mall"))
}

func TestSearchTagQueryIsCaseInsensitive(t *testing.T) {
	p := models.Post{Content: "love the #Mall", Tags: []string{"#Mall"}}
	assert.True(t, Matches(&p, "#MALL"))
}

func TestSearchPlainQuery(t *testing.T) {
	p := models.Post{AuthorName: "Bob", Title: "Synth Dreams", Content: "new blog up"}

	assert.True(t, Matches(&p, "bob"), "author name")
	assert.True(t, Matches(&p, "synth"), "title")
	assert.True(t, Matches(&p, "blog"), "content")
	assert.False(t, Matches(&p, "zzz"))
}

func TestVisibleSenders(t *testing.T) {
	viewer := &models.User{ID: "u1", BlockedUsers: []string{"u3"}}
	msgs := []models.Message{
		{ID: "m1", SenderID: "u2", ReceiverID: "u1"},
		{ID: "m2", SenderID: "u3", ReceiverID: "u1"},
		{ID: "m3", SenderID: "u1", ReceiverID: "u2"},
		{ID: "m4", SenderID: "u2", ReceiverID: "u3"},
	}

	got := VisibleSenders(msgs, viewer)
	var ids []string
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	// m2 is hidden (blocked sender); m3 was sent by the viewer and m4 is not
	// addressed to them, so neither is listed.
	assert.Equal(t, []string{"m1"}, ids)

	assert.Nil(t, VisibleSenders(msgs, nil))
}

func postIDs(posts []models.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
