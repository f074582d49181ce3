// Package session persists the authenticated session across launches when
// the user asked to be remembered. The store holds at most one session; a
// save replaces whatever was there before.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gmehub/gme-app/internal/platform"
)

// SessionFileName is the file kept under the app data directory.
const SessionFileName = "session.json"

// File permissions: the token must not be readable by other users.
const sessionFilePermissions = 0600

// PersistedSession is the on-disk session record. The base URL is stored so
// a token is never replayed against a different backend.
type PersistedSession struct {
	APIBaseURL   string `json:"api_base_url"`
	SessionToken string `json:"session_token"`
	UserLogin    string `json:"user_login"`
}

// Store reads and writes the persisted session file.
type Store struct {
	filePath string
	logger   *zap.Logger
}

// NewStore creates a session store rooted at the app data directory.
func NewStore(dataDir string, logger *zap.Logger) *Store {
	return &Store{
		filePath: filepath.Join(dataDir, SessionFileName),
		logger:   logger,
	}
}

// Load returns the persisted session, or nil when none exists. A corrupt
// file is removed and treated as absent.
func (s *Store) Load() *PersistedSession {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to read session file", zap.Error(err))
		}
		return nil
	}

	var persisted PersistedSession
	if err := json.Unmarshal(data, &persisted); err != nil || persisted.SessionToken == "" || persisted.APIBaseURL == "" {
		s.logger.Warn("discarding unreadable session file", zap.Error(err))
		s.Clear()
		return nil
	}

	return &persisted
}

// Save writes the session to disk, replacing any previous one.
func (s *Store) Save(persisted PersistedSession) error {
	if err := platform.EnsureDir(filepath.Dir(s.filePath)); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, sessionFilePermissions); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.logger.Debug("session persisted", zap.String("login", persisted.UserLogin))
	return nil
}

// Clear removes the persisted session. Missing file is not an error.
func (s *Store) Clear() {
	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("failed to remove session file", zap.Error(err))
	}
}
