package server

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	appmw "github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/module"
	"github.com/drivncook/backoffice/internal/modules/applications"
	"github.com/drivncook/backoffice/internal/modules/appointments"
	"github.com/drivncook/backoffice/internal/modules/auth"
	"github.com/drivncook/backoffice/internal/modules/dashboard"
	"github.com/drivncook/backoffice/internal/modules/franchisees"
	"github.com/drivncook/backoffice/internal/modules/incidents"
	"github.com/drivncook/backoffice/internal/modules/profilepage"
	"github.com/drivncook/backoffice/internal/modules/reports"
	"github.com/drivncook/backoffice/internal/modules/supplyorders"
	"github.com/drivncook/backoffice/internal/modules/trucks"
	"github.com/drivncook/backoffice/internal/modules/warehouses"
	"github.com/drivncook/backoffice/internal/registry"
)

// mountedModule pairs a module with the path it is mounted under and
// whether it sits behind the auth redirect.
type mountedModule struct {
	mod       module.Module
	path      string
	protected bool
}

// appModules assembles every page module with its dependencies, resolved
// through the typed registry. This is the central point for module
// registration.
func (s *Server) appModules() []mountedModule {
	client := registry.MustGet(s.Registry, registry.APIClientKey)
	sess := registry.MustGet(s.Registry, registry.SessionKey)
	profiles := registry.MustGet(s.Registry, registry.ProfileManagerKey)
	renderer := registry.MustGet(s.Registry, registry.RendererKey)

	return []mountedModule{
		{
			mod: auth.New(auth.Dependencies{
				Client:   client,
				Session:  sess,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path: "/auth",
		},
		{
			mod: dashboard.New(dashboard.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "",
			protected: true,
		},
		{
			mod: franchisees.New(franchisees.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/franchisees",
			protected: true,
		},
		{
			mod: applications.New(applications.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/franchise-applications",
			protected: true,
		},
		{
			mod: warehouses.New(warehouses.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/warehouses",
			protected: true,
		},
		{
			mod: supplyorders.New(supplyorders.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/supply-orders",
			protected: true,
		},
		{
			mod: appointments.New(appointments.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/appointments",
			protected: true,
		},
		{
			mod: trucks.New(trucks.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/trucks",
			protected: true,
		},
		{
			mod: incidents.New(incidents.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/incidents",
			protected: true,
		},
		{
			mod: reports.New(reports.Dependencies{
				Client:   client,
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/reports",
			protected: true,
		},
		{
			mod: profilepage.New(profilepage.Dependencies{
				Profiles: profiles,
				Renderer: renderer,
			}),
			path:      "/profile",
			protected: true,
		},
	}
}

// BootModules registers and boots every module against its route group.
func (s *Server) BootModules(ctx context.Context) error {
	requireAuth := appmw.RequireAuth(s.session)

	for _, m := range s.appModules() {
		if err := m.mod.Register(s.Registry); err != nil {
			return err
		}

		var g *echo.Group
		if m.protected {
			g = s.E.Group(m.path, requireAuth)
		} else {
			g = s.E.Group(m.path)
		}

		if err := m.mod.Boot(ctx, g, s.Registry); err != nil {
			return err
		}
		slog.Info("Module booted", "module", m.mod.Name(), "path", m.path)
	}
	return nil
}
