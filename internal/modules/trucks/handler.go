package trucks

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the fleet HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new trucks handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

func (h *Handler) accent() string {
	return h.profiles.Snapshot().Preferences.AccentColor
}

// createForm registers a truck in the fleet.
type createForm struct {
	PlateNumber string `form:"plateNumber" validate:"required"`
	Name        string `form:"name"`
	WarehouseID int64  `form:"warehouseId" validate:"required,gt=0"`
}

// assignForm binds a truck to a franchisee; an empty value releases it.
type assignForm struct {
	FranchiseeID string `form:"franchiseeId"`
}

// incidentForm reports a problem with a truck.
type incidentForm struct {
	Description string `form:"description" validate:"required"`
}

// maintenanceForm records a service intervention.
type maintenanceForm struct {
	Date        string `form:"date" validate:"required"`
	Description string `form:"description" validate:"required"`
}

// ListGet serves the fleet roster.
func (h *Handler) ListGet(c echo.Context) error {
	ctx := c.Request().Context()

	trucks, err := h.client.Trucks.List(ctx)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load the fleet."))
	}

	warehouses, err := h.client.Warehouses.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Trucks: warehouse list unavailable", "error", err)
	}

	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, h.accent(), trucks, warehouses))
}

// CreatePost registers a new truck.
func (h *Handler) CreatePost(c echo.Context) error {
	var form createForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Plate number and warehouse are required.")
		return c.Redirect(http.StatusSeeOther, "/trucks")
	}

	payload := api.TruckCreate{
		PlateNumber:        form.PlateNumber,
		Name:               form.Name,
		CurrentWarehouseID: form.WarehouseID,
		Status:             api.TruckInService,
	}
	if _, err := h.client.Trucks.Create(c.Request().Context(), payload); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to register the truck."))
	} else {
		view.SetFlashSuccess(c, "Truck registered.")
	}
	return c.Redirect(http.StatusSeeOther, "/trucks")
}

// DetailGet serves one truck with its incidents and maintenance history.
func (h *Handler) DetailGet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid truck id")
	}
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	truck, err := h.client.Trucks.Get(ctx, id)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.Status == http.StatusNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "truck not found")
		}
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load the truck."))
		return c.Redirect(http.StatusSeeOther, "/trucks")
	}

	incidents, err := h.client.Trucks.Incidents(ctx, id)
	if err != nil {
		logger.Warn("Truck incidents unavailable", "truck_id", id, "error", err)
	}
	records, err := h.client.Trucks.MaintenanceRecords(ctx, id)
	if err != nil {
		logger.Warn("Truck maintenance history unavailable", "truck_id", id, "error", err)
	}

	franchisees, err := h.client.Franchisees.List(ctx)
	if err != nil {
		logger.Warn("Trucks: franchisee list unavailable", "error", err)
	}

	return h.renderer.RenderPage(c, http.StatusOK, DetailPage(c, h.accent(), truck, incidents, records, franchisees))
}

// AssignPost binds the truck to a franchisee, or releases it when the field
// is left empty.
func (h *Handler) AssignPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid truck id")
	}

	var form assignForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	var franchiseeID *int64
	if form.FranchiseeID != "" {
		parsed, err := strconv.ParseInt(form.FranchiseeID, 10, 64)
		if err != nil {
			view.SetFlashError(c, "Invalid franchisee id.")
			return c.Redirect(http.StatusSeeOther, truckPath(id))
		}
		franchiseeID = &parsed
	}

	if _, err := h.client.Trucks.Assign(c.Request().Context(), id, franchiseeID); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to update the assignment."))
	} else if franchiseeID == nil {
		view.SetFlashSuccess(c, "Truck released.")
	} else {
		view.SetFlashSuccess(c, "Truck assigned.")
	}
	return c.Redirect(http.StatusSeeOther, truckPath(id))
}

// IncidentPost reports an incident on the truck.
func (h *Handler) IncidentPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid truck id")
	}

	var form incidentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "A description is required.")
		return c.Redirect(http.StatusSeeOther, truckPath(id))
	}

	payload := api.IncidentCreate{Description: form.Description}
	if _, err := h.client.Trucks.CreateIncident(c.Request().Context(), id, payload); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to report the incident."))
	} else {
		view.SetFlashSuccess(c, "Incident reported.")
	}
	return c.Redirect(http.StatusSeeOther, truckPath(id))
}

// MaintenancePost records a maintenance intervention.
func (h *Handler) MaintenancePost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid truck id")
	}

	var form maintenanceForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Date and description are required.")
		return c.Redirect(http.StatusSeeOther, truckPath(id))
	}

	payload := api.MaintenanceRecordCreate{Date: form.Date, Description: form.Description}
	if _, err := h.client.Trucks.CreateMaintenanceRecord(c.Request().Context(), id, payload); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to record the intervention."))
	} else {
		view.SetFlashSuccess(c, "Maintenance recorded.")
	}
	return c.Redirect(http.StatusSeeOther, truckPath(id))
}

func truckPath(id int64) string {
	return fmt.Sprintf("/trucks/%d", id)
}
