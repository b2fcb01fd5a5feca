package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
)

// Handler holds dependencies for the dashboard HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new dashboard handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

// DashboardGet aggregates franchise-wide counts for the landing page. Each
// figure degrades independently: a failed upstream call surfaces as a dash
// instead of failing the whole page.
func (h *Handler) DashboardGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	stats := Stats{}

	if franchisees, err := h.client.Franchisees.List(ctx); err == nil {
		stats.Franchisees = count(len(franchisees))
	} else {
		logger.Warn("Dashboard: franchisee count unavailable", "error", err)
	}

	if pending, err := h.client.Applications.ListAdmin(ctx, api.ApplicationPending); err == nil {
		stats.PendingApplications = count(len(pending))
	} else {
		logger.Warn("Dashboard: application count unavailable", "error", err)
	}

	if trucks, err := h.client.Trucks.List(ctx); err == nil {
		stats.Trucks = count(len(trucks))
	} else {
		logger.Warn("Dashboard: truck count unavailable", "error", err)
	}

	if incidents, err := h.client.Incidents.List(ctx); err == nil {
		open := 0
		for _, in := range incidents {
			if in.Status != api.IncidentResolved {
				open++
			}
		}
		stats.OpenIncidents = count(open)
	} else {
		logger.Warn("Dashboard: incident count unavailable", "error", err)
	}

	accent := h.profiles.Snapshot().Preferences.AccentColor
	return h.renderer.RenderPage(c, http.StatusOK, Page(c, accent, stats))
}
