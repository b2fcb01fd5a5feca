package prefstore

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivncook/backoffice/internal/api"
)

func newTestStore() *Store {
	return New(afero.NewMemMapFs(), "state")
}

func TestTokenRoundTrip(t *testing.T) {
	store := newTestStore()

	assert.Empty(t, store.Token(), "fresh store holds no token")

	require.NoError(t, store.SetToken("tok-abc"))
	assert.Equal(t, "tok-abc", store.Token())

	require.NoError(t, store.SetToken("tok-def"))
	assert.Equal(t, "tok-def", store.Token())
}

func TestSetTokenEmptyRemovesSlot(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.SetToken("tok"))
	require.NoError(t, store.SetToken(""))
	assert.Empty(t, store.Token())

	// Clearing an already-empty slot is not an error.
	require.NoError(t, store.SetToken(""))
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := newTestStore()

	_, ok := store.Preferences(1)
	assert.False(t, ok, "nothing stored yet")

	prefs := api.ProfilePreferences{AccentColor: "#000000", AvatarDataURL: "data:image/png;base64,AAAA"}
	require.NoError(t, store.SavePreferences(1, prefs))

	got, ok := store.Preferences(1)
	require.True(t, ok)
	assert.Equal(t, prefs, got)

	// Preferences are keyed per franchisee.
	_, ok = store.Preferences(2)
	assert.False(t, ok)
}

func TestPreferencesMalformedJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := New(fs, "state")

	require.NoError(t, afero.WriteFile(fs, "state/profile-preferences-7.json", []byte("{not json"), 0o600))

	got, ok := store.Preferences(7)
	assert.False(t, ok, "malformed documents read as absent")
	assert.Zero(t, got)
}
