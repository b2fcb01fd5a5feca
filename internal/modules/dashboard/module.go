package dashboard

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/module"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/registry"
	"github.com/drivncook/backoffice/internal/rendering"
)

// DashboardModule serves the landing page with franchise-wide figures.
type DashboardModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the DashboardModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the DashboardModule.
func New(deps Dependencies) *DashboardModule {
	return &DashboardModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *DashboardModule) Name() string {
	return "dashboard"
}

// Boot sets up the dashboard route.
func (m *DashboardModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting DashboardModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.DashboardGet)

	return nil
}
