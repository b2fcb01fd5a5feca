// Package prefstore is the durable local key-value store of the back
// office: one global slot for the bearer token and one small JSON document
// of UI preferences per franchisee. Persistence here is best-effort by
// design; callers are expected to treat any returned error the same way
// they treat an absent value, and never to fail an operation over it.
package prefstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/drivncook/backoffice/internal/api"
)

const (
	tokenFileName   = "accessToken"
	prefsFilePrefix = "profile-preferences"
)

// Store persists preferences and the auth token under a single directory.
// The filesystem is abstracted behind afero so tests run against an
// in-memory filesystem.
type Store struct {
	fs  afero.Fs
	dir string
}

// New creates a Store rooted at dir. The directory is created lazily on the
// first write.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// TokenPath returns the path of the token slot, for components that watch
// the store for external changes.
func (s *Store) TokenPath() string {
	return filepath.Join(s.dir, tokenFileName)
}

// prefsPath derives the preference file name from the fixed prefix and the
// franchisee id, so preferences for different franchisees never collide.
func (s *Store) prefsPath(franchiseeID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%d.json", prefsFilePrefix, franchiseeID))
}

// Token returns the stored bearer token, or "" when no token is stored or
// the store is unreadable.
func (s *Store) Token() string {
	data, err := afero.ReadFile(s.fs, s.TokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetToken stores the token; an empty token removes the stored value.
// The returned error is advisory only.
func (s *Store) SetToken(token string) error {
	if token == "" {
		err := s.fs.Remove(s.TokenPath())
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.TokenPath(), []byte(token), 0o600)
}

// Preferences returns the stored preferences for one franchisee. The second
// return value is false when nothing usable is stored, including when the
// stored JSON is malformed.
func (s *Store) Preferences(franchiseeID int64) (api.ProfilePreferences, bool) {
	var prefs api.ProfilePreferences

	data, err := afero.ReadFile(s.fs, s.prefsPath(franchiseeID))
	if err != nil {
		return prefs, false
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return api.ProfilePreferences{}, false
	}
	return prefs, true
}

// SavePreferences persists the preferences for one franchisee. The returned
// error is advisory only.
func (s *Store) SavePreferences(franchiseeID int64, prefs api.ProfilePreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.prefsPath(franchiseeID), data, 0o600)
}
