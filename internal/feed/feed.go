// Package feed derives the visible, optionally-searched view of the post
// collection for a given viewer. All functions are pure over an in-memory
// snapshot; nothing here touches the gateway.
package feed

import (
	"strings"

	"retrospace/internal/models"
)

// Index maps user ids to their records for visibility lookups.
type Index map[string]*models.User

// NewIndex builds an Index over the given user slice.
func NewIndex(users []models.User) Index {
	idx := make(Index, len(users))
	for i := range users {
		idx[users[i].ID] = &users[i]
	}
	return idx
}

// Visible reports whether viewer may see a post by authorID. A post is hidden
// when either party has blocked the other. A missing author record fails open
// to visible, and a nil viewer (logged out) sees everything.
func Visible(viewer *models.User, authorID string, users Index) bool {
	if viewer == nil || viewer.ID == authorID {
		return true
	}
	if viewer.HasBlocked(authorID) {
		return false
	}
	if author, ok := users[authorID]; ok && author.HasBlocked(viewer.ID) {
		return false
	}
	return true
}

// Compose returns the posts viewer may see, filtered by query when non-empty.
// Input order is preserved; posts arrive most-recent-first from the gateway
// and are never re-sorted here.
func Compose(posts []models.Post, viewer *models.User, users Index, query string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if !Visible(viewer, p.AuthorID, users) {
			continue
		}
		if query != "" && !Matches(&p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Matches applies the search predicate. A query beginning with '#' matches a
// post whose tag set contains the query exactly (case-insensitive) or whose
// content contains it as a substring; either branch suffices. Any other query
// is a case-insensitive substring match over content, author name, and title.
func Matches(p *models.Post, query string) bool {
	q := strings.ToLower(query)
	if strings.HasPrefix(q, "#") {
		for _, tag := range p.Tags {
			if strings.ToLower(tag) == q {
				return true
			}
		}
		return strings.Contains(strings.ToLower(p.Content), q)
	}
	return strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.AuthorName), q) ||
		strings.Contains(strings.ToLower(p.Title), q)
}

// VisibleSenders filters messages down to those addressed to the viewer whose
// sender the viewer has not blocked. Used by the inbox and the unread counter
// so blocked users cannot raise either.
func VisibleSenders(msgs []models.Message, viewer *models.User) []models.Message {
	if viewer == nil {
		return nil
	}
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ReceiverID != viewer.ID {
			continue
		}
		if viewer.HasBlocked(m.SenderID) {
			continue
		}
		out = append(out, m)
	}
	return out
}
