// Package gateway is the uniform CRUD facade over the two interchangeable
// persistence backends: the remote data service and the local fallback
// document store.
//
// The backend is chosen exactly once per process by a reachability probe and
// then held fixed. There is deliberately no mid-session failover: once the
// two stores have diverged, switching between them gives inconsistent
// results, so a remote backend that dies later surfaces per-call errors
// instead of silently flipping to local data.
package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"retrospace/internal/config"
	"retrospace/internal/document"
	"retrospace/internal/middleware"
	"retrospace/internal/models"
	"retrospace/internal/observability"
)

// Mode identifies which backend a gateway talks to.
type Mode string

const (
	// ModeRemote means the remote data service answered the startup probe.
	ModeRemote Mode = "remote"
	// ModeLocal means the gateway operates on the local fallback store.
	ModeLocal Mode = "local"
)

// Gateway exposes get/create/update/delete for each entity collection.
// Every mutation is whole-record; callers observe results by re-fetching the
// full collections rather than patching in place.
type Gateway interface {
	Mode() Mode

	GetUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error

	GetPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error

	GetMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	UpdateMessage(ctx context.Context, msg *models.Message) error
}

// Probe checks whether the remote data service is alive. Only reachability
// matters; the response body is ignored.
func Probe(ctx context.Context, baseURL string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Select runs the one-time reachability probe and returns the gateway for
// the session. A failed probe degrades to the local store; that is an
// expected mode of operation, not an error.
func Select(ctx context.Context, cfg *config.Config, local document.Store) Gateway {
	if Probe(ctx, cfg.RemoteURL, cfg.ProbeTimeout()) {
		middleware.Logger.InfoContext(ctx, "remote backend selected",
			slog.String("url", cfg.RemoteURL),
		)
		return NewRemote(cfg.RemoteURL)
	}

	observability.GatewayFallbacks.Inc()
	middleware.Logger.WarnContext(ctx, "remote backend unreachable, falling back to local store",
		slog.String("url", cfg.RemoteURL),
	)
	return NewLocal(local)
}
