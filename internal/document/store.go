// Package document implements the local document store: whole collections
// serialized as single JSON documents under well-known stable keys.
//
// Three interchangeable engines back the same Store interface: JSON files on
// disk, a GORM key/document table, and Redis. Absent or corrupt documents are
// read as empty collections, never as fatal errors.
package document

import (
	"context"
	"encoding/json"
	"log/slog"

	"retrospace/internal/middleware"
	"retrospace/internal/models"
)

// Stable document keys. The version suffix allows a future format change to
// start from a clean slate instead of migrating in place.
const (
	KeyUsers    = "retrospace_users_v1"
	KeyPosts    = "retrospace_posts_v1"
	KeyMessages = "retrospace_messages_v1"
	KeySession  = "retrospace_session_v1"
)

// Store is the injected local persistence abstraction. A nil, nil Read means
// the key is absent.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ReadJSON decodes the document at key into v. An absent document leaves v at
// its zero value. A corrupt document is logged and degraded to the zero value
// as well; only engine-level failures are returned.
func ReadJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := s.Read(ctx, key)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		malformed := models.NewMalformedError(key, err)
		middleware.Logger.WarnContext(ctx, "unreadable stored document, treating as empty",
			slog.String("key", key),
			slog.String("error", malformed.Error()),
		)
		return nil
	}
	return nil
}

// WriteJSON encodes v and stores it at key, replacing any previous document.
func WriteJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return models.NewInternalError(err)
	}
	return s.Write(ctx, key, data)
}
