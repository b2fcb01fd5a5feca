package warehouses

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

// WarehousesModule serves the warehouse directory and stock screens.
type WarehousesModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the WarehousesModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the WarehousesModule.
func New(deps Dependencies) *WarehousesModule {
	return &WarehousesModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *WarehousesModule) Name() string {
	return "warehouses"
}

// Boot sets up the warehouse routes.
func (m *WarehousesModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting WarehousesModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.GET("/:id/inventory", handler.InventoryGet)
	g.POST("/:id/inventory", handler.InventoryItemPost)
	g.POST("/:id/inventory/:item", handler.InventoryItemUpdatePost)

	return nil
}
