package incidents

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the incident board handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new incidents handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

// statusForm moves an incident through its lifecycle.
type statusForm struct {
	Status string `form:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED"`
}

// ListGet serves the incident board across the whole fleet.
func (h *Handler) ListGet(c echo.Context) error {
	list, err := h.client.Incidents.List(c.Request().Context())
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load incidents."))
	}

	accent := h.profiles.Snapshot().Preferences.AccentColor
	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, accent, list))
}

// StatusPost moves an incident to the requested status.
func (h *Handler) StatusPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid incident id")
	}

	var form statusForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Unknown incident status.")
		return c.Redirect(http.StatusSeeOther, "/incidents")
	}

	status := api.IncidentStatus(form.Status)
	if _, err := h.client.Incidents.Update(c.Request().Context(), id, api.IncidentPatch{Status: &status}); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to update the incident."))
	} else {
		view.SetFlashSuccess(c, "Incident updated.")
	}
	return c.Redirect(http.StatusSeeOther, "/incidents")
}
