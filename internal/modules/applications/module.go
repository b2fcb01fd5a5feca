package applications

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

// ApplicationsModule serves the franchise application review screens.
type ApplicationsModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the ApplicationsModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the ApplicationsModule.
func New(deps Dependencies) *ApplicationsModule {
	return &ApplicationsModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *ApplicationsModule) Name() string {
	return "applications"
}

// Boot sets up the application review routes.
func (m *ApplicationsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting ApplicationsModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.POST("/:id/status", handler.StatusPost)
	g.POST("/:id/payment", handler.PaymentPost)

	return nil
}
