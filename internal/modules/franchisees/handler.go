package franchisees

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the franchisee HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new franchisees handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

func (h *Handler) accent() string {
	return h.profiles.Snapshot().Preferences.AccentColor
}

// ListGet serves the franchisee directory.
func (h *Handler) ListGet(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := h.client.Franchisees.List(ctx)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load franchisees."))
	}
	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, h.accent(), list))
}

// DetailGet serves a single franchisee's admin view, preferences included.
func (h *Handler) DetailGet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid franchisee id")
	}

	detail, err := h.client.Franchisees.Get(c.Request().Context(), id)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.Status == http.StatusNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "franchisee not found")
		}
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load franchisee."))
		return c.Redirect(http.StatusSeeOther, "/franchisees")
	}
	return h.renderer.RenderPage(c, http.StatusOK, DetailPage(c, h.accent(), detail))
}
