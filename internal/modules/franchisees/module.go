package franchisees

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

// FranchiseesModule serves the franchisee directory and detail pages.
type FranchiseesModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the FranchiseesModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the FranchiseesModule.
func New(deps Dependencies) *FranchiseesModule {
	return &FranchiseesModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *FranchiseesModule) Name() string {
	return "franchisees"
}

// Boot sets up the franchisee routes.
func (m *FranchiseesModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting FranchiseesModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.GET("/:id", handler.DetailGet)

	return nil
}
