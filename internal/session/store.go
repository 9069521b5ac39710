// Package session persists the authenticated session (token + user
// profile) in local storage. The lifecycle is simply absent -> present ->
// absent; there is no state machine beyond that.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/types"
)

// ErrNoSession is returned by Load when no session has been saved.
var ErrNoSession = errors.New("no stored session")

// Store persists and retrieves the current session.
type Store interface {
	// Save persists the session, overwriting any prior value.
	Save(s *types.Session) error
	// Load returns the persisted session, or ErrNoSession if absent.
	Load() (*types.Session, error)
	// Clear removes any persisted session. Clearing an empty store is a
	// no-op, not an error.
	Clear() error
}

// FileStore keeps the session in a single JSON file on disk, written with
// owner-only permissions and replaced atomically.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the conventional session file location under the
// user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", &apierror.StorageError{Op: "resolve path", Err: err}
	}
	return filepath.Join(dir, "recipenest", "session.json"), nil
}

func (fs *FileStore) Save(s *types.Session) error {
	if s == nil || s.Token == "" {
		return &apierror.StorageError{Op: "save", Err: fmt.Errorf("refusing to save empty session")}
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return &apierror.StorageError{Op: "save", Err: err}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return &apierror.StorageError{Op: "save", Err: err}
	}

	// Write to a temp file first so a crash mid-write never leaves a
	// truncated session behind.
	tmp, err := os.CreateTemp(filepath.Dir(fs.path), "session-*.tmp")
	if err != nil {
		return &apierror.StorageError{Op: "save", Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return &apierror.StorageError{Op: "save", Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &apierror.StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &apierror.StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return &apierror.StorageError{Op: "save", Err: err}
	}
	return nil
}

func (fs *FileStore) Load() (*types.Session, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, &apierror.StorageError{Op: "load", Err: err}
	}

	var s types.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &apierror.StorageError{Op: "load", Err: err}
	}
	if s.Token == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return &apierror.StorageError{Op: "clear", Err: err}
	}
	return nil
}
