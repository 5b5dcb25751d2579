// ABOUTME: Local session storage for the API token and account identity
// ABOUTME: Lives in the XDG state dir so login survives across runs
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Session is the logged-in identity cached on disk.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DefaultPath returns the session file location under the XDG state dir.
func DefaultPath() (string, error) {
	return xdg.StateFile("portfolio/session.json")
}

// Load reads the stored session. A missing or unreadable file means no
// session, not an error.
func Load(path string) (Session, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil || s.Token == "" {
		return Session{}, false
	}
	return s, true
}

// Save writes the session with owner-only permissions.
func Save(path string, s Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing a missing file is a no-op.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
