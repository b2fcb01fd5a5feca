package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivncook/backoffice/internal/prefstore"
	"github.com/drivncook/backoffice/internal/session"
)

func newTestSession(t *testing.T, token string) *session.Session {
	t.Helper()
	store := prefstore.New(afero.NewMemMapFs(), "state")
	if token != "" {
		require.NoError(t, store.SetToken(token))
	}
	return session.New(store, nil)
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/franchisees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth(newTestSession(t, ""))(func(c echo.Context) error {
		return c.String(http.StatusOK, "protected")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/franchisees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth(newTestSession(t, "tok"))(func(c echo.Context) error {
		return c.String(http.StatusOK, "protected")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "protected", rec.Body.String())
}
