package incidents

import (
	"fmt"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// nextStatus maps each incident status to its forward transition.
var nextStatus = map[api.IncidentStatus]api.IncidentStatus{
	api.IncidentOpen:       api.IncidentInProgress,
	api.IncidentInProgress: api.IncidentResolved,
}

// ListPage renders the incident board.
func ListPage(c echo.Context, accent string, list []api.Incident) cmp.Node {
	data := layouts.NewPageData(c, "Incidents", true, accent)

	rows := make([]cmp.Node, 0, len(list))
	for _, in := range list {
		rows = append(rows, g.Tr(
			g.Td(cmp.Text(in.CreatedAt)),
			g.Td(cmp.Text(in.TruckPlateNumber)),
			g.Td(cmp.Text(in.FranchiseeName)),
			g.Td(cmp.Text(in.Description)),
			g.Td(cmp.Text(string(in.Status))),
			g.Td(transitionForm(in)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(6, "No incidents on record."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Incidents")),
		components.Table([]string{"Reported", "Truck", "Franchisee", "Description", "Status", ""}, rows),
	)
}

func transitionForm(in api.Incident) cmp.Node {
	next, ok := nextStatus[in.Status]
	if !ok {
		return nil
	}
	return g.Form(
		g.Method("post"),
		g.Action(fmt.Sprintf("/incidents/%d/status", in.ID)),
		g.Input(g.Type("hidden"), g.Name("status"), g.Value(string(next))),
		g.Button(g.Type("submit"), g.Class("btn btn-secondary"), cmp.Text("Move to "+string(next))),
	)
}
