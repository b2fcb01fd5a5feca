package supplyorders

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

// Handler holds dependencies for the supply order HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new supply orders handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

func (h *Handler) accent() string {
	return h.profiles.Snapshot().Preferences.AccentColor
}

// createForm opens a draft order, optionally pinned to a pickup warehouse.
type createForm struct {
	WarehouseID int64 `form:"warehouseId"`
}

// statusForm moves an order through its lifecycle.
type statusForm struct {
	Status string `form:"status" validate:"required,oneof=DRAFT CONFIRMED READY COLLECTED"`
}

// itemForm adds a line to a draft order.
type itemForm struct {
	InventoryItemID int64 `form:"inventoryItemId" validate:"required,gt=0"`
	Quantity        int64 `form:"quantity" validate:"required,gt=0"`
}

// ListGet serves the supply order listing with status and paid filters.
func (h *Handler) ListGet(c echo.Context) error {
	opts := api.SupplyOrderListOptions{
		Status: api.SupplyOrderStatus(c.QueryParam("status")),
	}
	if p := c.QueryParam("paid"); p != "" {
		paid := p == "true"
		opts.Paid = &paid
	}
	if f := c.QueryParam("franchiseeId"); f != "" {
		opts.FranchiseeID, _ = strconv.ParseInt(f, 10, 64)
	}

	orders, err := h.client.SupplyOrders.List(c.Request().Context(), opts)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load supply orders."))
	}

	warehouses, err := h.client.Warehouses.List(c.Request().Context())
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Supply orders: warehouse list unavailable", "error", err)
	}

	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, h.accent(), opts.Status, orders, warehouses))
}

// CreatePost opens a new draft order.
func (h *Handler) CreatePost(c echo.Context) error {
	var form createForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	payload := api.SupplyOrderCreate{PickupWarehouseID: form.WarehouseID}
	order, err := h.client.SupplyOrders.Create(c.Request().Context(), payload)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to open a supply order."))
		return c.Redirect(http.StatusSeeOther, "/supply-orders")
	}

	view.SetFlashSuccess(c, "Draft order opened.")
	return c.Redirect(http.StatusSeeOther, orderPath(order.ID))
}

// DetailGet serves one order with its lines and, for drafts, the per-warehouse
// availability check.
func (h *Handler) DetailGet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	ctx := c.Request().Context()

	orders, err := h.client.SupplyOrders.List(ctx, api.SupplyOrderListOptions{})
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load the order."))
		return c.Redirect(http.StatusSeeOther, "/supply-orders")
	}
	var order *api.SupplyOrder
	for i := range orders {
		if orders[i].ID == id {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		return echo.NewHTTPError(http.StatusNotFound, "supply order not found")
	}

	items, err := h.client.SupplyOrders.Items(ctx, id)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load order lines."))
	}

	var availability []api.WarehouseAvailability
	if order.Status == api.SupplyOrderDraft && len(items) > 0 {
		availability, err = h.client.Warehouses.Availability(ctx, id)
		if err != nil {
			middleware.FromContext(ctx).Warn("Supply order availability check failed", "order_id", id, "error", err)
		}
	}

	return h.renderer.RenderPage(c, http.StatusOK, DetailPage(c, h.accent(), order, items, availability))
}

// StatusPost moves an order to the requested status.
func (h *Handler) StatusPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var form statusForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Unknown order status.")
		return c.Redirect(http.StatusSeeOther, orderPath(id))
	}

	status := api.SupplyOrderStatus(form.Status)
	if _, err := h.client.SupplyOrders.Update(c.Request().Context(), id, api.SupplyOrderPatch{Status: &status}); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to update the order."))
	} else {
		view.SetFlashSuccess(c, "Order moved to "+form.Status+".")
	}
	return c.Redirect(http.StatusSeeOther, orderPath(id))
}

// ItemPost adds a line to a draft order.
func (h *Handler) ItemPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var form itemForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "An item and a positive quantity are required.")
		return c.Redirect(http.StatusSeeOther, orderPath(id))
	}

	payload := api.SupplyOrderItemCreate{
		InventoryItemID: form.InventoryItemID,
		Quantity:        form.Quantity,
	}
	if _, err := h.client.SupplyOrders.AddItem(c.Request().Context(), id, payload); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to add the line."))
	} else {
		view.SetFlashSuccess(c, "Line added.")
	}
	return c.Redirect(http.StatusSeeOther, orderPath(id))
}

func orderPath(id int64) string {
	return fmt.Sprintf("/supply-orders/%d", id)
}
