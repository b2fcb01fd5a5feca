package supplyorders

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

// SupplyOrdersModule serves the supply order workflow: drafting, item
// selection, warehouse availability checks and status transitions.
type SupplyOrdersModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the SupplyOrdersModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the SupplyOrdersModule.
func New(deps Dependencies) *SupplyOrdersModule {
	return &SupplyOrdersModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *SupplyOrdersModule) Name() string {
	return "supplyorders"
}

// Boot sets up the supply order routes.
func (m *SupplyOrdersModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting SupplyOrdersModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.POST("", handler.CreatePost)
	g.GET("/:id", handler.DetailGet)
	g.POST("/:id/status", handler.StatusPost)
	g.POST("/:id/items", handler.ItemPost)

	return nil
}
