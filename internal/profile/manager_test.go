package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/prefstore"
)

func TestMergePriorityOrder(t *testing.T) {
	defaults := api.ProfilePreferences{AccentColor: "#111111"}
	prior := api.ProfilePreferences{AccentColor: "#222222", AvatarDataURL: "data:prior"}
	patch := api.ProfilePreferences{AccentColor: "#333333"}

	merged := Merge(defaults, prior, patch)
	assert.Equal(t, "#333333", merged.AccentColor, "explicit patch value wins")
	assert.Equal(t, "data:prior", merged.AvatarDataURL, "prior fills what the patch omits")

	merged = Merge(defaults, prior, api.ProfilePreferences{})
	assert.Equal(t, "#222222", merged.AccentColor, "prior wins over defaults")

	merged = Merge(defaults, api.ProfilePreferences{}, api.ProfilePreferences{})
	assert.Equal(t, "#111111", merged.AccentColor, "defaults apply last")
}

func TestMergeIsIdempotent(t *testing.T) {
	defaults := api.ProfilePreferences{AccentColor: DefaultAccentColor}
	prior := api.ProfilePreferences{AccentColor: "#000000", AvatarDataURL: "data:x"}

	once := Merge(defaults, prior, api.ProfilePreferences{})
	twice := Merge(defaults, once, api.ProfilePreferences{})
	assert.Equal(t, once, twice)
}

// newTestManager wires a Manager against a fake upstream and an in-memory
// preference store.
func newTestManager(t *testing.T, handler http.HandlerFunc) (*Manager, *prefstore.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := prefstore.New(afero.NewMemMapFs(), "state")
	client := api.NewClient(srv.URL, nil)
	return NewManager(client.Franchisees, store, api.ProfilePreferences{}), store
}

func TestLoadMergesStoredPreferences(t *testing.T) {
	me := api.Franchisee{ID: 9, FirstName: "Ada", LastName: "Martin", CompanyName: "Ada Food"}
	manager, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/franchisees/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(me)
	})

	// A stored black accent is a deliberate choice and must survive the merge.
	require.NoError(t, store.SavePreferences(9, api.ProfilePreferences{AccentColor: "#000000"}))

	got, err := manager.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, me, *got)

	snap := manager.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	assert.Equal(t, "#000000", snap.Preferences.AccentColor)
}

func TestLoadWithoutStoredPreferencesUsesDefaults(t *testing.T) {
	manager, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Franchisee{ID: 4})
	})

	_, err := manager.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultAccentColor, manager.Snapshot().Preferences.AccentColor)
}

func TestLoadFailureClearsFranchisee(t *testing.T) {
	manager, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	})

	_, err := manager.Load(context.Background())
	require.Error(t, err)

	snap := manager.Snapshot()
	assert.Nil(t, snap.Franchisee)
	assert.False(t, snap.Loading)
	assert.Equal(t, "token expired", snap.Err)
}

func TestSubmitPersistsMergedPreferences(t *testing.T) {
	updated := api.Franchisee{ID: 9, FirstName: "Ada", CompanyName: "Ada Food & Co"}
	manager, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			_ = json.NewEncoder(w).Encode(updated)
		default:
			_ = json.NewEncoder(w).Encode(api.Franchisee{ID: 9, FirstName: "Ada"})
		}
	})

	_, err := manager.Load(context.Background())
	require.NoError(t, err)

	err = manager.Submit(context.Background(),
		api.FranchiseePatch{CompanyName: api.Ptr("Ada Food & Co")},
		api.ProfilePreferences{AccentColor: "#ff0000"},
	)
	require.NoError(t, err)

	snap := manager.Snapshot()
	assert.Equal(t, "Ada Food & Co", snap.Franchisee.CompanyName)
	assert.Equal(t, "#ff0000", snap.Preferences.AccentColor)

	stored, ok := store.Preferences(9)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", stored.AccentColor)
}

func TestSubmitWithEmptyPreferencesKeepsCurrent(t *testing.T) {
	manager, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Franchisee{ID: 9})
	})

	_, err := manager.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, manager.Submit(context.Background(),
		api.FranchiseePatch{}, api.ProfilePreferences{AvatarDataURL: "data:a"}))
	require.NoError(t, manager.Submit(context.Background(),
		api.FranchiseePatch{}, api.ProfilePreferences{}))

	snap := manager.Snapshot()
	assert.Equal(t, "data:a", snap.Preferences.AvatarDataURL, "empty submission does not erase preferences")
}

func TestSubmitErrorLeavesStateUntouched(t *testing.T) {
	manager, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid phone"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(api.Franchisee{ID: 9, FirstName: "Ada"})
	})

	_, err := manager.Load(context.Background())
	require.NoError(t, err)

	err = manager.Submit(context.Background(),
		api.FranchiseePatch{Phone: api.Ptr("not-a-phone")},
		api.ProfilePreferences{AccentColor: "#123456"},
	)
	require.Error(t, err)
	assert.Equal(t, "invalid phone", api.ErrorMessage(err, "fallback"))

	snap := manager.Snapshot()
	assert.Equal(t, "Ada", snap.Franchisee.FirstName)
	assert.NotEqual(t, "#123456", snap.Preferences.AccentColor)

	_, ok := store.Preferences(9)
	assert.False(t, ok, "nothing persisted on a rejected submission")
}

func TestResetIsIdempotent(t *testing.T) {
	manager, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Franchisee{ID: 9})
	})

	_, err := manager.Load(context.Background())
	require.NoError(t, err)

	manager.Reset()
	first := manager.Snapshot()
	manager.Reset()
	second := manager.Snapshot()

	assert.Nil(t, first.Franchisee)
	assert.Equal(t, DefaultAccentColor, first.Preferences.AccentColor)
	assert.Equal(t, first, second)
}
