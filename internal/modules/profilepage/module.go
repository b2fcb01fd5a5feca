package profilepage

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/module"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/registry"
	"github.com/drivncook/backoffice/internal/rendering"
)

// ProfileModule serves the current franchisee's profile and preference
// screen, backed by the session-wide profile manager.
type ProfileModule struct {
	module.BaseModule
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the ProfileModule requires.
type Dependencies struct {
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the ProfileModule.
func New(deps Dependencies) *ProfileModule {
	return &ProfileModule{
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *ProfileModule) Name() string {
	return "profile"
}

// Boot sets up the profile routes.
func (m *ProfileModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting ProfileModule: Setting up routes...")
	handler := NewHandler(m.profiles, m.renderer)

	g.GET("", handler.ProfileGet)
	g.POST("", handler.ProfilePost)
	g.POST("/reset", handler.ResetPost)

	return nil
}
