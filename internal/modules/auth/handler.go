package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/session"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the auth module's HTTP handlers.
type Handler struct {
	client   *api.Client
	session  *session.Session
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new auth handler with its dependencies.
func NewHandler(client *api.Client, sess *session.Session, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, session: sess, profiles: profiles, renderer: r}
}

// loginForm is the browser-side login payload.
type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginGet serves the login page. An already-authenticated visitor is sent
// straight to the dashboard.
func (h *Handler) LoginGet(c echo.Context) error {
	if h.session.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.renderer.RenderPage(c, http.StatusOK, LoginPage(c, ""))
}

// LoginPost exchanges credentials for an upstream bearer token and stores it
// in the session.
func (h *Handler) LoginPost(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderer.RenderPage(c, http.StatusBadRequest, LoginPage(c, "Invalid form submission."))
	}
	if err := c.Validate(&form); err != nil {
		return h.renderer.RenderPage(c, http.StatusBadRequest, LoginPage(c, "Email and password are required."))
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	token, err := h.client.Auth.Login(ctx, api.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		logger.Warn("Login rejected", "email", form.Email, "error", err)
		msg := api.ErrorMessage(err, "Unable to sign in. Check your credentials.")
		return h.renderer.RenderPage(c, http.StatusUnauthorized, LoginPage(c, msg))
	}

	h.session.SetToken(ctx, token.AccessToken)
	if _, err := h.profiles.Load(ctx); err != nil {
		logger.Warn("Profile load after login failed", "error", err)
	}

	view.SetFlashSuccess(c, "Welcome back!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session token and profile state.
func (h *Handler) Logout(c echo.Context) error {
	h.session.Clear(c.Request().Context())
	h.profiles.Reset()
	view.SetFlashSuccess(c, "You have been signed out.")
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}
