package trucks

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

// TrucksModule serves the fleet screens: the truck roster, assignment,
// incident reporting and maintenance history.
type TrucksModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the TrucksModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the TrucksModule.
func New(deps Dependencies) *TrucksModule {
	return &TrucksModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *TrucksModule) Name() string {
	return "trucks"
}

// Boot sets up the fleet routes.
func (m *TrucksModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting TrucksModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.POST("", handler.CreatePost)
	g.GET("/:id", handler.DetailGet)
	g.POST("/:id/assign", handler.AssignPost)
	g.POST("/:id/incidents", handler.IncidentPost)
	g.POST("/:id/maintenance", handler.MaintenancePost)

	return nil
}
