// Package storage provides the key-value slots the workspace persists into.
// Backends are selected by URL: file, sqlite, postgres, redis or memory.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Keys of the three persisted slots.
const (
	KeyDocument = "ats_app_package_data"
	KeyHistory  = "ats_app_package_history"
	KeyTemplate = "ats_active_template"
)

// Keys lists every slot in load order.
var Keys = []string{KeyDocument, KeyHistory, KeyTemplate}

// Store is a byte-valued key-value store.
type Store interface {
	// Get returns the value for key. The bool is false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Error is returned for backend failures.
type Error struct {
	Backend string
	Op      string
	Key     string
	Cause   error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s: %s %s: %v", e.Backend, e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("storage %s: %s: %v", e.Backend, e.Op, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// DefaultDir is the file store location used when no URL is configured.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-builder"
	}
	return filepath.Join(home, ".resume-builder")
}

// Open connects to the store described by rawURL. An empty URL opens the
// file store in DefaultDir; a value without a scheme is a directory path.
func Open(ctx context.Context, rawURL string) (Store, error) {
	var (
		store Store
		err   error
	)
	switch {
	case rawURL == "":
		store, err = fileStore(DefaultDir())
	case rawURL == "memory://" || rawURL == "memory":
		store = NewMemoryStore()
	case strings.HasPrefix(rawURL, "file://"):
		store, err = fileStore(strings.TrimPrefix(rawURL, "file://"))
	case strings.HasPrefix(rawURL, "sqlite://"):
		var s *SQLiteStore
		if s, err = OpenSQLite(ctx, strings.TrimPrefix(rawURL, "sqlite://")); err == nil {
			store = s
		}
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		var s *PostgresStore
		if s, err = ConnectPostgres(ctx, rawURL); err == nil {
			store = s
		}
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		var s *RedisStore
		if s, err = ConnectRedis(ctx, rawURL, DefaultRedisPrefix); err == nil {
			store = s
		}
	case strings.Contains(rawURL, "://"):
		err = fmt.Errorf("unsupported store URL %q: expected file, sqlite, postgres, redis or memory", rawURL)
	default:
		store, err = fileStore(rawURL)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

func fileStore(dir string) (Store, error) {
	s, err := NewFileStore(dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the directory backing s, or "" when s is not a file store.
func Dir(s Store) string {
	if fs, ok := s.(*FileStore); ok {
		return fs.dir
	}
	return ""
}
