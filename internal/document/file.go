package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"retrospace/internal/models"
	"retrospace/internal/observability"
)

// FileStore keeps one JSON file per document key inside a data directory.
type FileStore struct {
	dir string
}

// OpenFileStore creates the data directory if needed and returns a store
// rooted there.
func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the document bytes, or nil when the file does not exist.
func (s *FileStore) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		observability.StoreErrors.WithLabelValues("file", "read").Inc()
		return nil, models.NewInternalError(err)
	}
	return data, nil
}

// Write replaces the document atomically via a temp file rename so a crash
// mid-write never leaves a truncated document behind.
func (s *FileStore) Write(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		observability.StoreErrors.WithLabelValues("file", "write").Inc()
		return models.NewInternalError(err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		observability.StoreErrors.WithLabelValues("file", "write").Inc()
		return models.NewInternalError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		observability.StoreErrors.WithLabelValues("file", "write").Inc()
		return models.NewInternalError(err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		observability.StoreErrors.WithLabelValues("file", "write").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the document; deleting an absent key succeeds silently.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		observability.StoreErrors.WithLabelValues("file", "delete").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
