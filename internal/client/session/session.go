// Package session persists the client's auth state between runs, the
// way the browser app kept token, user and theme in localStorage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// User is the public profile stored alongside the token. LoginTime is
// recorded client-side at login.
type User struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime"`
}

// Session is the whole persisted client state.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// LoggedIn reports whether the session carries credentials.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store at an explicit path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore places the session file under the user config dir.
func DefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return NewStore(filepath.Join(dir, "dashctl", "session.json")), nil
}

// Load hydrates the session from disk. A missing file is an empty
// session, not an error.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// a corrupt session file should not brick the client
		return &Session{}, nil
	}
	return &s, nil
}

// Save writes the session to disk, creating the directory if needed.
// The file holds a bearer token, so keep it owner-only.
func (st *Store) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the session file (logout).
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
