// Package models contains data structures for the application's domain models.
package models

// PostType distinguishes short status updates from long-form blog entries.
type PostType string

const (
	// PostTypeStatus is a short status update.
	PostTypeStatus PostType = "status"
	// PostTypeBlog is a long-form blog entry with a title and category.
	PostTypeBlog PostType = "blog"
)

// StatusMaxChars is the advisory character budget the status composer
// displays. It is never enforced by the store.
const StatusMaxChars = 140

// Comment is an append-only reply on a post. AuthorName is snapshotted at
// creation and not refreshed if the author later renames.
type Comment struct {
	ID         string `json:"id"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
}

// Post is a status or blog entry.
//
// AuthorName and AuthorAvatar are deliberately denormalized: they capture the
// author's display state at creation time and go stale if the profile is
// edited later.
type Post struct {
	ID           string    `json:"id"`
	Type         PostType  `json:"type"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	Title        string    `json:"title,omitempty"`
	Category     string    `json:"category,omitempty"`
	Content      string    `json:"content"`
	Timestamp    string    `json:"timestamp"`
	Comments     []Comment `json:"comments"`
	// Likes holds the ids of users who liked the post.
	Likes []string `json:"likes"`
	Tags  []string `json:"tags,omitempty"`
	// IsEdited is set on the first content edit and never cleared.
	IsEdited bool `json:"isEdited,omitempty"`
}

// LikedBy reports whether the given user id has liked the post.
func (p *Post) LikedBy(id string) bool {
	return containsID(p.Likes, id)
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	c := *p
	c.Comments = append([]Comment(nil), p.Comments...)
	c.Likes = append([]string(nil), p.Likes...)
	c.Tags = append([]string(nil), p.Tags...)
	return &c
}
