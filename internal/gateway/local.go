package gateway

import (
	"context"
	"strings"

	"retrospace/internal/document"
	"retrospace/internal/models"
)

// Local is the Gateway implementation over the local fallback document
// store. Collections are small; every operation reads the whole document,
// mutates it in memory, and writes it back.
type Local struct {
	store document.Store
}

// NewLocal returns a gateway over the given document store.
func NewLocal(store document.Store) *Local {
	return &Local{store: store}
}

// Mode reports ModeLocal.
func (g *Local) Mode() Mode {
	return ModeLocal
}

func (g *Local) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := document.ReadJSON(ctx, g.store, document.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser appends the user after an advisory duplicate check against the
// freshest read of the collection. The check is best-effort: two concurrent
// signups can still both pass it.
func (g *Local) CreateUser(ctx context.Context, user *models.User) error {
	users, err := g.GetUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, user.Username) {
			return models.NewConflictError("Username taken")
		}
	}
	users = append(users, *user)
	return document.WriteJSON(ctx, g.store, document.KeyUsers, users)
}

// UpdateUser replaces the whole record by id.
func (g *Local) UpdateUser(ctx context.Context, user *models.User) error {
	users, err := g.GetUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return document.WriteJSON(ctx, g.store, document.KeyUsers, users)
		}
	}
	return models.NewNotFoundError("User", user.ID)
}

func (g *Local) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := document.ReadJSON(ctx, g.store, document.KeyPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost inserts at the head of the collection. Most-recent-first
// ordering is a storage-level contract; callers must not re-sort.
func (g *Local) CreatePost(ctx context.Context, post *models.Post) error {
	posts, err := g.GetPosts(ctx)
	if err != nil {
		return err
	}
	posts = append([]models.Post{*post}, posts...)
	return document.WriteJSON(ctx, g.store, document.KeyPosts, posts)
}

// UpdatePost replaces the whole record by id.
func (g *Local) UpdatePost(ctx context.Context, post *models.Post) error {
	posts, err := g.GetPosts(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			return document.WriteJSON(ctx, g.store, document.KeyPosts, posts)
		}
	}
	return models.NewNotFoundError("Post", post.ID)
}

// DeletePost removes by id; deleting an absent id succeeds silently.
func (g *Local) DeletePost(ctx context.Context, id string) error {
	posts, err := g.GetPosts(ctx)
	if err != nil {
		return err
	}
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return document.WriteJSON(ctx, g.store, document.KeyPosts, kept)
}

func (g *Local) GetMessages(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	if err := document.ReadJSON(ctx, g.store, document.KeyMessages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// CreateMessage appends.
func (g *Local) CreateMessage(ctx context.Context, msg *models.Message) error {
	msgs, err := g.GetMessages(ctx)
	if err != nil {
		return err
	}
	msgs = append(msgs, *msg)
	return document.WriteJSON(ctx, g.store, document.KeyMessages, msgs)
}

// UpdateMessage replaces the whole record by id.
func (g *Local) UpdateMessage(ctx context.Context, msg *models.Message) error {
	msgs, err := g.GetMessages(ctx)
	if err != nil {
		return err
	}
	for i := range msgs {
		if msgs[i].ID == msg.ID {
			msgs[i] = *msg
			return document.WriteJSON(ctx, g.store, document.KeyMessages, msgs)
		}
	}
	return models.NewNotFoundError("Message", msg.ID)
}
