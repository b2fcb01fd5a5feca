package appointments

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the appointment HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new appointments handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

// createForm books a pickup slot.
type createForm struct {
	Type          string `form:"type" validate:"required,oneof=SUPPLY_PICKUP TRUCK_PICKUP"`
	WarehouseID   int64  `form:"warehouseId" validate:"required,gt=0"`
	Datetime      string `form:"datetime" validate:"required"`
	SupplyOrderID int64  `form:"supplyOrderId"`
	TruckID       int64  `form:"truckId"`
}

// ListGet serves the appointment calendar, filtered by type and date range.
func (h *Handler) ListGet(c echo.Context) error {
	opts := api.AppointmentListOptions{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
		Type: api.AppointmentType(c.QueryParam("type")),
	}

	ctx := c.Request().Context()
	list, err := h.client.Appointments.List(ctx, opts)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load appointments."))
	}

	warehouses, err := h.client.Warehouses.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Appointments: warehouse list unavailable", "error", err)
	}

	accent := h.profiles.Snapshot().Preferences.AccentColor
	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, accent, opts, list, warehouses))
}

// CreatePost books a new pickup slot.
func (h *Handler) CreatePost(c echo.Context) error {
	var form createForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Type, warehouse and date are required.")
		return c.Redirect(http.StatusSeeOther, "/appointments")
	}

	payload := api.AppointmentCreate{
		Type:          api.AppointmentType(form.Type),
		WarehouseID:   form.WarehouseID,
		Datetime:      form.Datetime,
		SupplyOrderID: form.SupplyOrderID,
		TruckID:       form.TruckID,
	}
	if _, err := h.client.Appointments.Create(c.Request().Context(), payload); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to book the appointment."))
	} else {
		view.SetFlashSuccess(c, "Appointment booked.")
	}
	return c.Redirect(http.StatusSeeOther, "/appointments")
}

// CancelPost cancels a scheduled appointment.
func (h *Handler) CancelPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	status := api.AppointmentCancelled
	if _, err := h.client.Appointments.Update(c.Request().Context(), id, api.AppointmentPatch{Status: &status}); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to cancel the appointment."))
	} else {
		view.SetFlashSuccess(c, "Appointment cancelled.")
	}
	return c.Redirect(http.StatusSeeOther, "/appointments")
}
