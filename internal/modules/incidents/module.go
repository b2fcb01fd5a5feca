package incidents

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

// IncidentsModule serves the network-wide incident board.
type IncidentsModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the IncidentsModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the IncidentsModule.
func New(deps Dependencies) *IncidentsModule {
	return &IncidentsModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *IncidentsModule) Name() string {
	return "incidents"
}

// Boot sets up the incident board routes.
func (m *IncidentsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting IncidentsModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.POST("/:id/status", handler.StatusPost)

	return nil
}
