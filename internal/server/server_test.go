package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"retrospace/internal/config"
	"retrospace/internal/document"
	"retrospace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := document.OpenFileStore(t.TempDir())
	require.NoError(t, err)
	cfg := &config.Config{
		Port:        "0",
		StoreEngine: config.EngineFile,
		Env:         "test",
	}
	return NewServer(cfg, store)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	resp.Body.Close()
	return v
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	resp := doJSON(t, s, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.User](t, resp))

	resp = doJSON(t, s, http.MethodPost, "/api/users", models.User{ID: "u1", Username: "alice", Mood: "chillin"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodPost, "/api/users", models.User{ID: "u2", Username: "ALICE"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeConflict, errBody.Code)

	// Shallow merge: only the patched field changes.
	resp = doJSON(t, s, http.MethodPut, "/api/users/u1", map[string]string{"mood": "vibing"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.User](t, resp)
	assert.Equal(t, "vibing", updated.Mood)
	assert.Equal(t, "alice", updated.Username)

	resp = doJSON(t, s, http.MethodPut, "/api/users/ghost", map[string]string{"mood": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateUserReplacesNestedObjectsWhole(t *testing.T) {
	s := newTestServer(t)

	user := models.User{
		ID:       "u1",
		Username: "alice",
		Theme:    models.UserTheme{BackgroundColor: "#000", TextColor: "#fff"},
	}
	resp := doJSON(t, s, http.MethodPost, "/api/users", user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	patch := map[string]interface{}{
		"theme": map[string]string{"backgroundColor": "#f0f"},
	}
	resp = doJSON(t, s, http.MethodPut, "/api/users/u1", patch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.User](t, resp)
	assert.Equal(t, "#f0f", updated.Theme.BackgroundColor)
	assert.Empty(t, updated.Theme.TextColor, "nested objects are replaced, not merged")
}

func TestPostLifecycle(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodPost, "/api/posts", models.Post{ID: "p1", AuthorID: "u1", Content: "first"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, s, http.MethodPost, "/api/posts", models.Post{ID: "p2", AuthorID: "u1", Content: "second"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodGet, "/api/posts", nil)
	posts := decode[[]models.Post](t, resp)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID, "newest first")

	resp = doJSON(t, s, http.MethodPut, "/api/posts/p1", map[string]interface{}{"content": "first, edited", "isEdited": true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	edited := decode[models.Post](t, resp)
	assert.True(t, edited.IsEdited)
	assert.Equal(t, "u1", edited.AuthorID, "untouched fields survive the merge")

	resp = doJSON(t, s, http.MethodDelete, "/api/posts/p1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, s, http.MethodDelete, "/api/posts/p1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "deleting an absent post still succeeds")
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodGet, "/api/posts", nil)
	assert.Len(t, decode[[]models.Post](t, resp), 1)
}

func TestMessageLifecycle(t *testing.T) {
	s := newTestServer(t)

	msg := models.Message{ID: "m1", SenderID: "u1", ReceiverID: "u2", Content: "hey"}
	resp := doJSON(t, s, http.MethodPost, "/api/messages", msg)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodPut, "/api/messages/m1", map[string]bool{"read": true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.Message](t, resp)
	assert.True(t, updated.Read)
	assert.Equal(t, "hey", updated.Content)

	resp = doJSON(t, s, http.MethodPut, "/api/messages/ghost", map[string]bool{"read": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodPost, "/api/users", models.User{Username: "no-id"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodPost, "/api/posts", models.Post{ID: "p1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodPost, "/api/messages", models.Message{ID: "m1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestNonAPIPathsServeShell(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/profile/u1", nil)
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "<html")

	req = httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp, err = s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "unknown API paths never fall through to the shell")
}
