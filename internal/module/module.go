// Package module defines the lifecycle contract every back-office section
// implements. The server registers all sections first, then boots each one
// against its own route group, and shuts them down on exit.
package module

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/registry"
)

// Module is one mountable section of the back office (dashboard, trucks,
// reports, ...). Registration completes for every section before any of
// them boots, so Boot may look up services another section published.
type Module interface {
	// Name identifies the section in logs and boot errors.
	Name() string

	// Register publishes the section's services into the shared registry.
	Register(reg *registry.Registry) error

	// Boot wires the section's routes onto its group and may start
	// background work scoped to ctx.
	Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error

	// Shutdown stops whatever Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule supplies no-op lifecycle methods so a section only implements
// the hooks it actually needs.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }

func (m *BaseModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	return nil
}

func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
