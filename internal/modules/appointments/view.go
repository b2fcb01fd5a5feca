package appointments

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

// ListPage renders the appointment listing, filters and booking form.
func ListPage(c echo.Context, accent string, opts api.AppointmentListOptions, list []api.Appointment, warehouses []api.Warehouse) cmp.Node {
	data := layouts.NewPageData(c, "Appointments", true, accent)

	rows := make([]cmp.Node, 0, len(list))
	for _, a := range list {
		rows = append(rows, g.Tr(
			g.Td(cmp.Text(a.Datetime)),
			g.Td(cmp.Text(string(a.Type))),
			g.Td(cmp.Text(strconv.FormatInt(a.WarehouseID, 10))),
			g.Td(cmp.Text(string(a.Status))),
			g.Td(cancelForm(a)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(5, "No appointments in this window."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Appointments")),
		filterCard(opts),
		components.Table([]string{"When", "Type", "Warehouse", "Status", ""}, rows),
		bookingCard(warehouses),
	)
}

func filterCard(opts api.AppointmentListOptions) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.Form(
			g.Method("get"),
			g.Action("/appointments"),
			components.Field("From", "from", "date", opts.From),
			components.Field("To", "to", "date", opts.To),
			components.SelectField("Type", "type", string(opts.Type),
				[]string{"", string(api.AppointmentSupplyPickup), string(api.AppointmentTruckPickup)},
				func(v string) string {
					if v == "" {
						return "All types"
					}
					return v
				},
			),
			components.SubmitButton("Filter"),
		),
	)
}

func bookingCard(warehouses []api.Warehouse) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.H2(cmp.Text("Book a slot")),
		g.Form(
			g.Method("post"),
			g.Action("/appointments"),
			components.SelectField("Type", "type", string(api.AppointmentSupplyPickup),
				[]string{string(api.AppointmentSupplyPickup), string(api.AppointmentTruckPickup)},
				func(v string) string { return v },
			),
			g.Div(
				g.Class("field"),
				g.Label(g.For("warehouseId"), cmp.Text("Warehouse")),
				g.Select(
					g.Name("warehouseId"), g.ID("warehouseId"),
					cmp.Map(warehouses, func(w api.Warehouse) cmp.Node {
						return g.Option(g.Value(strconv.FormatInt(w.ID, 10)), cmp.Text(w.Name))
					}),
				),
			),
			components.Field("Date and time", "datetime", "datetime-local", ""),
			components.Field("Supply order id (optional)", "supplyOrderId", "number", ""),
			components.Field("Truck id (optional)", "truckId", "number", ""),
			components.SubmitButton("Book"),
		),
	)
}

func cancelForm(a api.Appointment) cmp.Node {
	if a.Status != api.AppointmentScheduled {
		return nil
	}
	return g.Form(
		g.Method("post"),
		g.Action(fmt.Sprintf("/appointments/%d/cancel", a.ID)),
		g.Button(g.Type("submit"), g.Class("btn btn-secondary"), cmp.Text("Cancel")),
	)
}
