package supplyorders

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

var statusFilters = []api.SupplyOrderStatus{
	api.SupplyOrderDraft,
	api.SupplyOrderConfirmed,
	api.SupplyOrderReady,
	api.SupplyOrderCollected,
}

// nextStatus maps each order status to its single forward transition.
var nextStatus = map[api.SupplyOrderStatus]api.SupplyOrderStatus{
	api.SupplyOrderDraft:     api.SupplyOrderConfirmed,
	api.SupplyOrderConfirmed: api.SupplyOrderReady,
	api.SupplyOrderReady:     api.SupplyOrderCollected,
}

// ListPage renders the supply order listing with filters and the new-order
// form.
func ListPage(c echo.Context, accent string, active api.SupplyOrderStatus, orders []api.SupplyOrder, warehouses []api.Warehouse) cmp.Node {
	data := layouts.NewPageData(c, "Supply orders", true, accent)

	rows := make([]cmp.Node, 0, len(orders))
	for _, o := range orders {
		paid := "No"
		if o.Paid {
			paid = "Yes"
		}
		rows = append(rows, g.Tr(
			g.Td(g.A(g.Href(orderPath(o.ID)), cmp.Text(orderLabel(o)))),
			g.Td(cmp.Text(string(o.Status))),
			g.Td(cmp.Text(paid)),
			g.Td(cmp.Text(fmt.Sprintf("%.2f", o.TotalCash))),
			g.Td(cmp.Text(o.UpdatedAt)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(5, "No supply orders match this filter."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Supply orders")),
		filterBar(active),
		components.Table([]string{"Order", "Status", "Paid", "Total", "Updated"}, rows),
		newOrderCard(warehouses),
	)
}

func orderLabel(o api.SupplyOrder) string {
	if o.Code != "" {
		return o.Code
	}
	return fmt.Sprintf("#%d", o.ID)
}

func filterBar(active api.SupplyOrderStatus) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.A(
			g.Class(filterClass(active == "")),
			g.Href("/supply-orders"),
			cmp.Text("ALL"),
		),
		cmp.Map(statusFilters, func(s api.SupplyOrderStatus) cmp.Node {
			return g.A(
				g.Class(filterClass(s == active)),
				g.Href("/supply-orders?status="+string(s)),
				cmp.Text(string(s)),
			)
		}),
	)
}

func filterClass(active bool) string {
	if active {
		return "btn btn-primary"
	}
	return "btn btn-secondary"
}

func newOrderCard(warehouses []api.Warehouse) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.H2(cmp.Text("Open a draft order")),
		g.Form(
			g.Method("post"),
			g.Action("/supply-orders"),
			g.Div(
				g.Class("field"),
				g.Label(g.For("warehouseId"), cmp.Text("Pickup warehouse")),
				g.Select(
					g.Name("warehouseId"), g.ID("warehouseId"),
					g.Option(g.Value("0"), cmp.Text("Decide later")),
					cmp.Map(warehouses, func(w api.Warehouse) cmp.Node {
						return g.Option(g.Value(strconv.FormatInt(w.ID, 10)), cmp.Text(w.Name))
					}),
				),
			),
			components.SubmitButton("Open order"),
		),
	)
}

// DetailPage renders one order with its lines, availability and actions.
func DetailPage(c echo.Context, accent string, order *api.SupplyOrder, items []api.SupplyOrderItem, availability []api.WarehouseAvailability) cmp.Node {
	data := layouts.NewPageData(c, "Supply order "+orderLabel(*order), true, accent)

	itemRows := make([]cmp.Node, 0, len(items))
	for _, item := range items {
		itemRows = append(itemRows, g.Tr(
			g.Td(cmp.Text(strconv.FormatInt(item.InventoryItemID, 10))),
			g.Td(cmp.Text(strconv.FormatInt(item.Quantity, 10))),
		))
	}
	if len(itemRows) == 0 {
		itemRows = append(itemRows, components.EmptyRow(2, "No lines yet."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Supply order "+orderLabel(*order))),
		g.Div(
			g.Class("card"),
			g.P(g.Strong(cmp.Text("Status: ")), cmp.Text(string(order.Status))),
			g.P(g.Strong(cmp.Text("Total: ")), cmp.Text(fmt.Sprintf("%.2f", order.TotalCash))),
			transitionForm(order),
		),
		g.H2(cmp.Text("Lines")),
		components.Table([]string{"Inventory item", "Quantity"}, itemRows),
		cmp.If(order.Status == api.SupplyOrderDraft, addLineCard(order.ID)),
		availabilitySection(availability),
	)
}

func transitionForm(order *api.SupplyOrder) cmp.Node {
	next, ok := nextStatus[order.Status]
	if !ok {
		return nil
	}
	return g.Form(
		g.Method("post"),
		g.Action(orderPath(order.ID)+"/status"),
		g.Input(g.Type("hidden"), g.Name("status"), g.Value(string(next))),
		g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text("Move to "+string(next))),
	)
}

func addLineCard(orderID int64) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.H2(cmp.Text("Add a line")),
		g.Form(
			g.Method("post"),
			g.Action(orderPath(orderID)+"/items"),
			components.Field("Inventory item id", "inventoryItemId", "number", ""),
			components.Field("Quantity", "quantity", "number", "1"),
			components.SubmitButton("Add line"),
		),
	)
}

func availabilitySection(availability []api.WarehouseAvailability) cmp.Node {
	if len(availability) == 0 {
		return nil
	}
	return g.Div(
		g.H2(cmp.Text("Warehouse availability")),
		cmp.Map(availability, func(wa api.WarehouseAvailability) cmp.Node {
			verdict := "Insufficient stock"
			if wa.Sufficient {
				verdict = "Can fulfil this order"
			}
			rows := make([]cmp.Node, 0, len(wa.Items))
			for _, item := range wa.Items {
				rows = append(rows, g.Tr(
					g.Td(cmp.Text(item.Name)),
					g.Td(cmp.Text(strconv.FormatInt(item.RequestedQuantity, 10))),
					g.Td(cmp.Text(strconv.FormatInt(item.AvailableQuantity, 10))),
				))
			}
			return g.Div(
				g.Class("card"),
				g.H3(cmp.Text(wa.WarehouseName)),
				g.P(cmp.Text(verdict)),
				components.Table([]string{"Item", "Requested", "Available"}, rows),
			)
		}),
	)
}
