package dashboard

import (
	"strconv"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// Stats holds the dashboard figures as display strings; an empty value
// renders as a dash.
type Stats struct {
	Franchisees         string
	PendingApplications string
	Trucks              string
	OpenIncidents       string
}

func count(n int) string { return strconv.Itoa(n) }

// Page renders the dashboard landing page.
func Page(c echo.Context, accent string, stats Stats) cmp.Node {
	data := layouts.NewPageData(c, "Dashboard", true, accent)
	return layouts.Base(data,
		g.H1(cmp.Text("Network overview")),
		g.Div(
			g.Class("stat-grid"),
			statCard("Franchisees", stats.Franchisees),
			statCard("Pending applications", stats.PendingApplications),
			statCard("Trucks", stats.Trucks),
			statCard("Open incidents", stats.OpenIncidents),
		),
	)
}

func statCard(label, value string) cmp.Node {
	if value == "" {
		value = "—"
	}
	return g.Div(
		g.Class("card"),
		g.Div(g.Class("stat-value"), cmp.Text(value)),
		g.Div(g.Class("stat-label"), cmp.Text(label)),
	)
}
