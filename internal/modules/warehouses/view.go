package warehouses

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// ListPage renders the warehouse directory.
func ListPage(c echo.Context, accent string, list []api.Warehouse) cmp.Node {
	data := layouts.NewPageData(c, "Warehouses", true, accent)

	rows := make([]cmp.Node, 0, len(list))
	for _, w := range list {
		rows = append(rows, g.Tr(
			g.Td(g.A(g.Href(inventoryPath(w.ID)), cmp.Text(w.Name))),
			g.Td(cmp.Text(w.Address)),
			g.Td(cmp.Text(w.Phone)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(3, "No warehouses configured."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Warehouses")),
		components.Table([]string{"Name", "Address", "Phone"}, rows),
	)
}

// InventoryPage renders a warehouse's stock listing and the add-item form.
func InventoryPage(c echo.Context, accent string, warehouseID int64, items []api.InventoryItem) cmp.Node {
	data := layouts.NewPageData(c, "Inventory", true, accent)

	rows := make([]cmp.Node, 0, len(items))
	for _, item := range items {
		rows = append(rows, g.Tr(
			g.Td(cmp.Text(item.Name)),
			g.Td(cmp.Text(item.Unit)),
			g.Td(cmp.Text(strconv.FormatInt(item.AvailableQuantity, 10))),
			g.Td(quantityUpdateForm(warehouseID, item)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(4, "This warehouse holds no stock."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Warehouse inventory")),
		components.Table([]string{"Item", "Unit", "Available", "Adjust"}, rows),
		g.Div(
			g.Class("card"),
			g.H2(cmp.Text("Add an item")),
			g.Form(
				g.Method("post"),
				g.Action(inventoryPath(warehouseID)),
				components.Field("Name", "name", "text", ""),
				components.Field("Unit", "unit", "text", ""),
				components.Field("Quantity", "quantity", "number", "0"),
				components.SubmitButton("Add item"),
			),
		),
	)
}

func quantityUpdateForm(warehouseID int64, item api.InventoryItem) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action(fmt.Sprintf("/warehouses/%d/inventory/%d", warehouseID, item.ID)),
		g.Input(
			g.Type("number"),
			g.Name("quantity"),
			g.Value(strconv.FormatInt(item.AvailableQuantity, 10)),
			g.Min("0"),
		),
		g.Button(g.Type("submit"), g.Class("btn btn-secondary"), cmp.Text("Save")),
	)
}
