package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Backend names accepted by OpenStore.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const sqliteFileName = "setpace.db"

var (
	// ErrNotFound is returned by Store.Get for keys that were never written.
	ErrNotFound = errors.New("key not found")
	// ErrUnknownBackend indicates an unsupported storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Store is a namespaced key-value blob store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// OpenStore opens the named backend rooted at dir.
func OpenStore(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(filepath.Join(dir, "data")), nil
	case BackendSQLite:
		return OpenSQLiteStore(filepath.Join(dir, sqliteFileName))
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("open store %q: %w", backend, ErrUnknownBackend)
	}
}
