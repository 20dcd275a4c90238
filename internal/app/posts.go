package app

import (
	"context"
	"log/slog"
	"time"

	"retrospace/internal/feed"
	"retrospace/internal/middleware"
	"retrospace/internal/models"
)

// CreatePost publishes a status or blog entry for the viewer. Tags are
// extracted from the content; the author's name and avatar are snapshotted
// onto the record. With some probability a simulated commenter replies after
// a delay.
func (a *App) CreatePost(ctx context.Context, postType models.PostType, title, category, content string) (*models.Post, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, models.NewValidationError("Post content is required")
	}
	if postType != models.PostTypeStatus && postType != models.PostTypeBlog {
		return nil, models.NewValidationError("Unknown post type")
	}

	post := &models.Post{
		ID:           models.NewID(models.PostIDPrefix),
		Type:         postType,
		AuthorID:     v.ID,
		AuthorName:   v.Username,
		AuthorAvatar: v.AvatarURL,
		Title:        title,
		Category:     category,
		Content:      content,
		Timestamp:    a.timestamp(),
		Comments:     []models.Comment{},
		Likes:        []string{},
		Tags:         feed.ExtractTags(content),
	}
	if err := a.gw.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}

	a.scheduleReply(ctx, post.ID, v)
	return post, nil
}

// EditPost rewrites a post's content (and title, for blogs). Only the author
// or an admin may edit. The edit marker sticks and tags are re-derived from
// the new content.
func (a *App) EditPost(ctx context.Context, postID, title, content string) (*models.Post, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}

	a.mu.RLock()
	p := findPost(a.posts, postID)
	a.mu.RUnlock()
	if p == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	if p.AuthorID != v.ID && !v.IsAdmin {
		return nil, models.NewUnauthorizedError("Only the author can edit a post")
	}

	edited := p.Clone()
	edited.Title = title
	edited.Content = content
	edited.Tags = feed.ExtractTags(content)
	edited.IsEdited = true
	if err := a.gw.UpdatePost(ctx, edited); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}
	return edited, nil
}

// AddComment appends a reply to the post with the viewer's name snapshotted.
func (a *App) AddComment(ctx context.Context, postID, content string) (*models.Post, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	a.mu.RLock()
	p := findPost(a.posts, postID)
	a.mu.RUnlock()
	if p == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	updated := p.Clone()
	updated.Comments = append(updated.Comments, models.Comment{
		ID:         models.NewID(models.CommentIDPrefix),
		AuthorID:   v.ID,
		AuthorName: v.Username,
		Content:    content,
		Timestamp:  a.timestamp(),
	})
	if err := a.gw.UpdatePost(ctx, updated); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleLike flips the viewer's like on the post.
func (a *App) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}

	a.mu.RLock()
	p := findPost(a.posts, postID)
	a.mu.RUnlock()
	if p == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	updated := p.Clone()
	if updated.LikedBy(v.ID) {
		kept := updated.Likes[:0]
		for _, id := range updated.Likes {
			if id != v.ID {
				kept = append(kept, id)
			}
		}
		updated.Likes = kept
	} else {
		updated.Likes = append(updated.Likes, v.ID)
	}
	if err := a.gw.UpdatePost(ctx, updated); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// Feed returns the posts the viewer may see, filtered by query when
// non-empty.
func (a *App) Feed(query string) []models.Post {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return feed.Compose(a.posts, a.viewer, feed.NewIndex(a.users), query)
}

// scheduleReply arranges for a simulated commenter to react to a fresh post.
// The commenter is a random other user the author has not blocked. If the
// post is deleted before the delay elapses, nothing happens.
func (a *App) scheduleReply(ctx context.Context, postID string, author *models.User) {
	a.mu.Lock()
	delay := a.replyDelay
	fire := a.rng.Float64() < a.replyChance
	a.mu.Unlock()
	if !fire {
		return
	}

	// Detached from the caller's cancellation: the reply should land even if
	// the originating request finishes first.
	bg := context.WithoutCancel(ctx)
	a.replies.Add(1)
	go func() {
		defer a.replies.Done()
		time.Sleep(delay)

		posts, err := a.gw.GetPosts(bg)
		if err != nil {
			return
		}
		p := findPost(posts, postID)
		if p == nil {
			return
		}

		users, err := a.gw.GetUsers(bg)
		if err != nil {
			return
		}
		var candidates []models.User
		for _, u := range users {
			if u.ID == author.ID || author.HasBlocked(u.ID) || u.HasBlocked(author.ID) || u.IsBanned {
				continue
			}
			candidates = append(candidates, u)
		}
		if len(candidates) == 0 {
			return
		}
		a.mu.Lock()
		commenter := candidates[a.rng.Intn(len(candidates))]
		a.mu.Unlock()

		updated := p.Clone()
		updated.Comments = append(updated.Comments, models.Comment{
			ID:         models.NewID(models.CommentIDPrefix),
			AuthorID:   commenter.ID,
			AuthorName: commenter.Username,
			Content:    a.gen.Reply(),
			Timestamp:  a.timestamp(),
		})
		if err := a.gw.UpdatePost(bg, updated); err != nil {
			middleware.Logger.WarnContext(bg, "simulated reply failed",
				slog.String("post_id", postID),
				slog.String("error", err.Error()),
			)
			return
		}
		if err := a.Reload(bg); err != nil {
			middleware.Logger.WarnContext(bg, "reload after simulated reply failed",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// WaitForReplies blocks until every scheduled simulated reply has finished.
// Exposed for tests and graceful shutdown.
func (a *App) WaitForReplies() {
	a.replies.Wait()
}
