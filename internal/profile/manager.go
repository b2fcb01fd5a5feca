// Package profile orchestrates the current franchisee's profile and UI
// preferences for the whole session, independent of any particular page.
package profile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/prefstore"
)

// DefaultAccentColor is applied when neither the store nor the caller
// provides one.
const DefaultAccentColor = "#2F5D50"

// Merge resolves preferences in priority order: an explicit patch value
// wins, then the prior (stored or in-memory) value, then the default.
// Both the load and submit paths go through this single function so their
// semantics cannot diverge.
func Merge(defaults, prior, patch api.ProfilePreferences) api.ProfilePreferences {
	return api.ProfilePreferences{
		AccentColor:   firstNonEmpty(patch.AccentColor, prior.AccentColor, defaults.AccentColor),
		AvatarDataURL: firstNonEmpty(patch.AvatarDataURL, prior.AvatarDataURL, defaults.AvatarDataURL),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Snapshot is a copy of the manager's state safe to hand to a renderer.
type Snapshot struct {
	Franchisee  *api.Franchisee
	Loading     bool
	Err         string
	Preferences api.ProfilePreferences
}

// Manager holds the session-scoped profile state. It moves between four
// implicit states: idle, loading, loaded and errored.
type Manager struct {
	franchisees *api.FranchiseesService
	store       *prefstore.Store
	defaults    api.ProfilePreferences

	mu         sync.Mutex
	franchisee *api.Franchisee
	prefs      api.ProfilePreferences
	loading    bool
	errMsg     string
}

// NewManager creates a Manager. Initial preferences, when given, seed the
// defaults that Reset restores and Merge falls back to.
func NewManager(franchisees *api.FranchiseesService, store *prefstore.Store, initial api.ProfilePreferences) *Manager {
	defaults := api.ProfilePreferences{
		AccentColor:   firstNonEmpty(initial.AccentColor, DefaultAccentColor),
		AvatarDataURL: initial.AvatarDataURL,
	}
	return &Manager{
		franchisees: franchisees,
		store:       store,
		defaults:    defaults,
		prefs:       defaults,
	}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Franchisee:  m.franchisee,
		Loading:     m.loading,
		Err:         m.errMsg,
		Preferences: m.prefs,
	}
}

// Load fetches the current franchisee and resolves its preferences from the
// store. On failure the held franchisee is cleared, a display message is
// recorded and the error is returned for the caller to handle.
func (m *Manager) Load(ctx context.Context) (*api.Franchisee, error) {
	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	data, err := m.franchisees.Current(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	if err != nil {
		m.franchisee = nil
		m.errMsg = api.ErrorMessage(err, "Unable to load profile")
		return nil, err
	}

	m.franchisee = data
	stored, _ := m.store.Preferences(data.ID)
	m.prefs = Merge(m.defaults, stored, api.ProfilePreferences{})
	return data, nil
}

// Submit sends the profile patch to the backend, then merges and persists
// the given preferences under the updated franchisee's id. Errors from the
// backend propagate untranslated; preference persistence failures are
// logged only.
func (m *Manager) Submit(ctx context.Context, patch api.FranchiseePatch, prefs api.ProfilePreferences) error {
	updated, err := m.franchisees.UpdateCurrent(ctx, patch)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.franchisee = updated
	merged := Merge(m.defaults, m.prefs, prefs)
	m.prefs = merged
	m.mu.Unlock()

	if err := m.store.SavePreferences(updated.ID, merged); err != nil {
		slog.Warn("Unable to persist profile preferences", "franchisee_id", updated.ID, "error", err)
	}
	return nil
}

// Reset clears the franchisee and error and restores the default
// preferences. Used on logout. Calling it twice is a no-op.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.franchisee = nil
	m.errMsg = ""
	m.prefs = m.defaults
}
