// Package session persists the client's identity (token + user) between runs.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MemberTrackr/MT-Backend/internal/client/api"
)

type Session struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// DefaultPath returns the per-user session file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "membertrackr", "session.json"), nil
}

// Load reads a stored session. A missing file is not an error; it just
// means no identity is held.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

func Save(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	// The token is a credential; keep the file private.
	return os.WriteFile(path, data, 0o600)
}

// Clear removes the stored session. Clearing an absent file is a no-op.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
