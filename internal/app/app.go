// Package app is the interaction layer: the single caller of the gateway
// that owns the viewer session and the in-memory snapshot of all three
// collections.
//
// Every mutation follows the same convention: write through the gateway,
// then reload the full snapshot. Handlers never patch the snapshot in place,
// so a successful reload is the only way state becomes observable.
package app

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"retrospace/internal/document"
	"retrospace/internal/gateway"
	"retrospace/internal/ideas"
	"retrospace/internal/middleware"
	"retrospace/internal/moderation"
	"retrospace/internal/models"
	"retrospace/internal/session"
	"retrospace/internal/social"
)

// App coordinates the gateway, session, graph, and moderation services on
// behalf of one viewer at a time.
type App struct {
	gw      gateway.Gateway
	session *session.Manager
	graph   *social.Service
	mod     *moderation.Service
	gen     ideas.Generator

	mu     sync.RWMutex
	users  []models.User
	posts  []models.Post
	msgs   []models.Message
	viewer *models.User

	// Simulated-commenter knobs; tests pin these to run deterministically.
	replyDelay  time.Duration
	replyChance float64
	rng         *rand.Rand
	replies     sync.WaitGroup

	now func() time.Time
}

// New wires an App over the chosen gateway. The local store backs the
// session pointer and the moderation wipe regardless of gateway mode.
func New(gw gateway.Gateway, local document.Store, gen ideas.Generator) *App {
	return &App{
		gw:          gw,
		session:     session.NewManager(local),
		graph:       social.NewService(gw),
		mod:         moderation.NewService(gw, local),
		gen:         gen,
		replyDelay:  8 * time.Second,
		replyChance: 0.4,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

// ConfigureAutoReply overrides the simulated commenter's delay and firing
// probability. Chance 0 disables it entirely.
func (a *App) ConfigureAutoReply(delay time.Duration, chance float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.replyDelay = delay
	a.replyChance = chance
}

// Start loads the initial snapshot and restores the persisted session.
func (a *App) Start(ctx context.Context) error {
	if err := a.Reload(ctx); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.viewer = a.session.Restore(ctx, a.users)
	return nil
}

// Reload refetches all three collections and re-resolves the viewer pointer
// against the fresh user list. A viewer whose record disappeared (wiped,
// remote reset) drops to logged out.
func (a *App) Reload(ctx context.Context) error {
	users, err := a.gw.GetUsers(ctx)
	if err != nil {
		return err
	}
	posts, err := a.gw.GetPosts(ctx)
	if err != nil {
		return err
	}
	msgs, err := a.gw.GetMessages(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.users, a.posts, a.msgs = users, posts, msgs
	if a.viewer != nil {
		a.viewer = findUser(a.users, a.viewer.ID)
	}
	return nil
}

// Viewer returns a copy of the active viewer, or nil when logged out.
func (a *App) Viewer() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.viewer == nil {
		return nil
	}
	return a.viewer.Clone()
}

// Users returns a copy of the user snapshot.
func (a *App) Users() []models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.User(nil), a.users...)
}

// Mode reports which backend serves this session.
func (a *App) Mode() gateway.Mode {
	return a.gw.Mode()
}

// Signup registers a new account and logs it in. The very first account and
// the reserved username "admin" get admin rights. Duplicate usernames are
// rejected by the gateway's freshest-read check.
func (a *App) Signup(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}

	existing, err := a.gw.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           models.NewID(models.UserIDPrefix),
		Username:     username,
		Mood:         a.gen.Mood(),
		Bio:          a.gen.Bio(),
		IsOnline:     true,
		IsAdmin:      len(existing) == 0 || strings.EqualFold(username, "admin"),
		Theme:        PresetThemes[0],
		BlockedUsers: []string{},
		Followers:    []string{},
		Following:    []string{},
	}
	if err := a.gw.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := a.session.Set(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.viewer = findUser(a.users, user.ID)
	a.mu.Unlock()
	middleware.Logger.InfoContext(ctx, "user signed up",
		slog.String("user_id", user.ID),
		slog.Bool("is_admin", user.IsAdmin),
	)
	return user, nil
}

// Login resolves the username case-insensitively against the freshest user
// collection. Banned accounts are refused here, before any session is set.
func (a *App) Login(ctx context.Context, username string) (*models.User, error) {
	users, err := a.gw.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	var match *models.User
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			match = &users[i]
			break
		}
	}
	if match == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	if match.IsBanned {
		return nil, models.NewBannedError()
	}

	if err := a.session.Set(ctx, match.ID); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.viewer = findUser(a.users, match.ID)
	v := a.viewer.Clone()
	a.mu.Unlock()
	return v, nil
}

// Logout clears the session and drops the viewer.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Set(ctx, ""); err != nil {
		return err
	}
	a.mu.Lock()
	a.viewer = nil
	a.mu.Unlock()
	return nil
}

// requireViewer returns the active viewer or an UNAUTHORIZED error.
func (a *App) requireViewer() (*models.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.viewer == nil {
		return nil, models.NewUnauthorizedError("Not logged in")
	}
	return a.viewer.Clone(), nil
}

// requireActive is the ban gate every authenticated write passes through.
func (a *App) requireActive() (*models.User, error) {
	v, err := a.requireViewer()
	if err != nil {
		return nil, err
	}
	if v.IsBanned {
		return nil, models.NewBannedError()
	}
	return v, nil
}

// requireAdmin gates the moderation surface.
func (a *App) requireAdmin() (*models.User, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}
	if !v.IsAdmin {
		return nil, models.NewUnauthorizedError("Admin rights required")
	}
	return v, nil
}

// timestamp renders the display-oriented creation stamp stored on posts,
// comments, and messages.
func (a *App) timestamp() string {
	return a.now().Format("Jan 2, 2006 3:04 PM")
}

func findUser(users []models.User, id string) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func findPost(posts []models.Post, id string) *models.Post {
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}
