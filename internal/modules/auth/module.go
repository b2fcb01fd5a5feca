package auth

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/module"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/registry"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/session"
)

// AuthModule serves the login and logout pages and owns the translation
// between browser credentials and the upstream bearer token.
type AuthModule struct {
	module.BaseModule
	client   *api.Client
	session  *session.Session
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the AuthModule requires to operate.
type Dependencies struct {
	Client   *api.Client
	Session  *session.Session
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the AuthModule, injecting its dependencies.
func New(deps Dependencies) *AuthModule {
	return &AuthModule{
		client:   deps.Client,
		session:  deps.Session,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Boot sets up the login and logout routes. The group is mounted at /auth
// and is deliberately left outside the authenticated area.
func (m *AuthModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting AuthModule: Setting up routes...")
	handler := NewHandler(m.client, m.session, m.profiles, m.renderer)

	g.GET("/login", handler.LoginGet)
	g.POST("/login", handler.LoginPost, middleware.RateLimiter())
	g.GET("/logout", handler.Logout)

	return nil
}
