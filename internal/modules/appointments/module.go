package appointments

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

// AppointmentsModule serves the pickup scheduling screens.
type AppointmentsModule struct {
	module.BaseModule
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// Dependencies holds all the services that the AppointmentsModule requires.
type Dependencies struct {
	Client   *api.Client
	Profiles *profile.Manager
	Renderer rendering.Renderer
}

// New creates a new instance of the AppointmentsModule.
func New(deps Dependencies) *AppointmentsModule {
	return &AppointmentsModule{
		client:   deps.Client,
		profiles: deps.Profiles,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *AppointmentsModule) Name() string {
	return "appointments"
}

// Boot sets up the appointment routes.
func (m *AppointmentsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting AppointmentsModule: Setting up routes...")
	handler := NewHandler(m.client, m.profiles, m.renderer)

	g.GET("", handler.ListGet)
	g.POST("", handler.CreatePost)
	g.POST("/:id/cancel", handler.CancelPost)

	return nil
}
