package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one file per key in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Backend: "file", Op: "mkdir", Key: dir, Cause: err}
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file that holds key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Backend: "file", Op: "read", Key: key, Cause: err}
	}
	return data, true, nil
}

// Set writes to a temp file and renames it over the target so readers never
// see a partial value.
func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, "."+key+".*")
	if err != nil {
		return &Error{Backend: "file", Op: "write", Key: key, Cause: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &Error{Backend: "file", Op: "write", Key: key, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &Error{Backend: "file", Op: "write", Key: key, Cause: err}
	}
	if err := os.Rename(tmpName, f.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return &Error{Backend: "file", Op: "rename", Key: key, Cause: err}
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(f.Path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Backend: "file", Op: "delete", Key: key, Cause: err}
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
