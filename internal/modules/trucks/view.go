package trucks

import (
	"strconv"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// ListPage renders the fleet roster and the registration form.
func ListPage(c echo.Context, accent string, trucks []api.Truck, warehouses []api.Warehouse) cmp.Node {
	data := layouts.NewPageData(c, "Trucks", true, accent)

	rows := make([]cmp.Node, 0, len(trucks))
	for _, t := range trucks {
		assigned := "—"
		if t.AssignedFranchiseeID != 0 {
			assigned = strconv.FormatInt(t.AssignedFranchiseeID, 10)
		}
		rows = append(rows, g.Tr(
			g.Td(g.A(g.Href(truckPath(t.ID)), cmp.Text(t.PlateNumber))),
			g.Td(cmp.Text(t.Name)),
			g.Td(cmp.Text(string(t.Status))),
			g.Td(cmp.Text(t.CurrentWarehouseName)),
			g.Td(cmp.Text(assigned)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(5, "The fleet is empty."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Fleet")),
		components.Table([]string{"Plate", "Name", "Status", "Warehouse", "Franchisee"}, rows),
		registrationCard(warehouses),
	)
}

func registrationCard(warehouses []api.Warehouse) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.H2(cmp.Text("Register a truck")),
		g.Form(
			g.Method("post"),
			g.Action("/trucks"),
			components.Field("Plate number", "plateNumber", "text", ""),
			components.Field("Name", "name", "text", ""),
			g.Div(
				g.Class("field"),
				g.Label(g.For("warehouseId"), cmp.Text("Home warehouse")),
				g.Select(
					g.Name("warehouseId"), g.ID("warehouseId"),
					cmp.Map(warehouses, func(w api.Warehouse) cmp.Node {
						return g.Option(g.Value(strconv.FormatInt(w.ID, 10)), cmp.Text(w.Name))
					}),
				),
			),
			components.SubmitButton("Register"),
		),
	)
}

// DetailPage renders one truck with assignment, incidents and maintenance.
func DetailPage(c echo.Context, accent string, truck *api.Truck, incidents []api.Incident, records []api.MaintenanceRecord, franchisees []api.Franchisee) cmp.Node {
	data := layouts.NewPageData(c, "Truck "+truck.PlateNumber, true, accent)

	incidentRows := make([]cmp.Node, 0, len(incidents))
	for _, in := range incidents {
		incidentRows = append(incidentRows, g.Tr(
			g.Td(cmp.Text(in.CreatedAt)),
			g.Td(cmp.Text(in.Description)),
			g.Td(cmp.Text(string(in.Status))),
		))
	}
	if len(incidentRows) == 0 {
		incidentRows = append(incidentRows, components.EmptyRow(3, "No incidents reported."))
	}

	recordRows := make([]cmp.Node, 0, len(records))
	for _, rec := range records {
		recordRows = append(recordRows, g.Tr(
			g.Td(cmp.Text(rec.Date)),
			g.Td(cmp.Text(rec.Description)),
		))
	}
	if len(recordRows) == 0 {
		recordRows = append(recordRows, components.EmptyRow(2, "No maintenance recorded."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Truck "+truck.PlateNumber)),
		g.Div(
			g.Class("card"),
			g.P(g.Strong(cmp.Text("Status: ")), cmp.Text(string(truck.Status))),
			g.P(g.Strong(cmp.Text("Warehouse: ")), cmp.Text(truck.CurrentWarehouseName)),
			assignmentForm(truck, franchisees),
		),
		g.H2(cmp.Text("Incidents")),
		components.Table([]string{"Reported", "Description", "Status"}, incidentRows),
		g.Div(
			g.Class("card"),
			g.H3(cmp.Text("Report an incident")),
			g.Form(
				g.Method("post"),
				g.Action(truckPath(truck.ID)+"/incidents"),
				components.Field("Description", "description", "text", ""),
				components.SubmitButton("Report"),
			),
		),
		g.H2(cmp.Text("Maintenance")),
		components.Table([]string{"Date", "Description"}, recordRows),
		g.Div(
			g.Class("card"),
			g.H3(cmp.Text("Record an intervention")),
			g.Form(
				g.Method("post"),
				g.Action(truckPath(truck.ID)+"/maintenance"),
				components.Field("Date", "date", "date", ""),
				components.Field("Description", "description", "text", ""),
				components.SubmitButton("Record"),
			),
		),
	)
}

func assignmentForm(truck *api.Truck, franchisees []api.Franchisee) cmp.Node {
	current := strconv.FormatInt(truck.AssignedFranchiseeID, 10)
	return g.Form(
		g.Method("post"),
		g.Action(truckPath(truck.ID)+"/assign"),
		g.Div(
			g.Class("field"),
			g.Label(g.For("franchiseeId"), cmp.Text("Assigned franchisee")),
			g.Select(
				g.Name("franchiseeId"), g.ID("franchiseeId"),
				g.Option(g.Value(""), cmp.Text("Unassigned")),
				cmp.Map(franchisees, func(f api.Franchisee) cmp.Node {
					value := strconv.FormatInt(f.ID, 10)
					return g.Option(
						g.Value(value),
						cmp.If(value == current && truck.AssignedFranchiseeID != 0, g.Selected()),
						cmp.Text(f.FirstName+" "+f.LastName),
					)
				}),
			),
		),
		components.SubmitButton("Update assignment"),
	)
}
