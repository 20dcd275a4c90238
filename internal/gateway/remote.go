package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"retrospace/internal/models"
	"retrospace/internal/observability"
)

// Remote is the Gateway implementation over the remote data service's JSON
// HTTP surface. Individual calls carry no timeout beyond what the caller's
// context imposes; only the startup probe is time-bounded.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote returns a gateway for the service at baseURL.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		client:  http.DefaultClient,
	}
}

// Mode reports ModeRemote.
func (g *Remote) Mode() Mode {
	return ModeRemote
}

// do issues the request and decodes a JSON response body into out when out is
// non-nil. Status codes are mapped onto the application error taxonomy.
func (g *Remote) do(ctx context.Context, method, path, operation string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return models.NewInternalError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return models.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		observability.RemoteCallErrors.WithLabelValues(operation).Inc()
		return models.NewUnreachableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		observability.RemoteCallErrors.WithLabelValues(operation).Inc()
		return models.NewConflictError("Username taken")
	case resp.StatusCode == http.StatusNotFound:
		observability.RemoteCallErrors.WithLabelValues(operation).Inc()
		return models.NewNotFoundError("Resource", path)
	case resp.StatusCode >= 400:
		observability.RemoteCallErrors.WithLabelValues(operation).Inc()
		return models.NewInternalError(fmt.Errorf("remote returned status %d for %s %s", resp.StatusCode, method, path))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return models.NewMalformedError(path, err)
	}
	return nil
}

func (g *Remote) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.do(ctx, http.MethodGet, "/users", "get_users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *Remote) CreateUser(ctx context.Context, user *models.User) error {
	return g.do(ctx, http.MethodPost, "/users", "create_user", user, nil)
}

func (g *Remote) UpdateUser(ctx context.Context, user *models.User) error {
	return g.do(ctx, http.MethodPut, "/users/"+user.ID, "update_user", user, nil)
}

func (g *Remote) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := g.do(ctx, http.MethodGet, "/posts", "get_posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (g *Remote) CreatePost(ctx context.Context, post *models.Post) error {
	return g.do(ctx, http.MethodPost, "/posts", "create_post", post, nil)
}

func (g *Remote) UpdatePost(ctx context.Context, post *models.Post) error {
	return g.do(ctx, http.MethodPut, "/posts/"+post.ID, "update_post", post, nil)
}

func (g *Remote) DeletePost(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/posts/"+id, "delete_post", nil, nil)
}

func (g *Remote) GetMessages(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	if err := g.do(ctx, http.MethodGet, "/messages", "get_messages", nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (g *Remote) CreateMessage(ctx context.Context, msg *models.Message) error {
	return g.do(ctx, http.MethodPost, "/messages", "create_message", msg, nil)
}

func (g *Remote) UpdateMessage(ctx context.Context, msg *models.Message) error {
	return g.do(ctx, http.MethodPut, "/messages/"+msg.ID, "update_message", msg, nil)
}
