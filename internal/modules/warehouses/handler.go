package warehouses

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the warehouse HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new warehouses handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

func (h *Handler) accent() string {
	return h.profiles.Snapshot().Preferences.AccentColor
}

// inventoryItemForm creates a stock line.
type inventoryItemForm struct {
	Name     string `form:"name" validate:"required"`
	Unit     string `form:"unit" validate:"required"`
	Quantity int64  `form:"quantity" validate:"gte=0"`
}

// quantityForm adjusts an existing stock line.
type quantityForm struct {
	Quantity int64 `form:"quantity" validate:"gte=0"`
}

// ListGet serves the warehouse directory.
func (h *Handler) ListGet(c echo.Context) error {
	list, err := h.client.Warehouses.List(c.Request().Context())
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load warehouses."))
	}
	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, h.accent(), list))
}

// InventoryGet serves a warehouse's stock listing.
func (h *Handler) InventoryGet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	items, err := h.client.Warehouses.Inventory(c.Request().Context(), id)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load the inventory."))
	}
	return h.renderer.RenderPage(c, http.StatusOK, InventoryPage(c, h.accent(), id, items))
}

// InventoryItemPost adds a stock line to a warehouse.
func (h *Handler) InventoryItemPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	var form inventoryItemForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Name, unit and a non-negative quantity are required.")
		return c.Redirect(http.StatusSeeOther, inventoryPath(id))
	}

	payload := api.InventoryItemCreate{
		Name:              form.Name,
		Unit:              form.Unit,
		AvailableQuantity: form.Quantity,
	}
	if _, err := h.client.Warehouses.CreateInventoryItem(c.Request().Context(), id, payload); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to add the item."))
	} else {
		view.SetFlashSuccess(c, "Item added.")
	}
	return c.Redirect(http.StatusSeeOther, inventoryPath(id))
}

// InventoryItemUpdatePost adjusts the available quantity of a stock line.
func (h *Handler) InventoryItemUpdatePost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}
	itemID, err := strconv.ParseInt(c.Param("item"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var form quantityForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Quantity must be zero or more.")
		return c.Redirect(http.StatusSeeOther, inventoryPath(id))
	}

	patch := api.InventoryItemPatch{AvailableQuantity: form.Quantity}
	if _, err := h.client.Warehouses.UpdateInventoryItem(c.Request().Context(), id, itemID, patch); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to update the item."))
	} else {
		view.SetFlashSuccess(c, "Quantity updated.")
	}
	return c.Redirect(http.StatusSeeOther, inventoryPath(id))
}

func inventoryPath(id int64) string {
	return fmt.Sprintf("/warehouses/%d/inventory", id)
}
