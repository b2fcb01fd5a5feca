package reports

import (
	"strconv"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// FormPage renders the report request form.
func FormPage(c echo.Context, accent string, franchisees []api.Franchisee) cmp.Node {
	data := layouts.NewPageData(c, "Reports", true, accent)

	return layouts.Base(data,
		g.H1(cmp.Text("Reports")),
		g.Div(
			g.Class("card"),
			g.Form(
				g.Method("post"),
				g.Action("/reports/download"),
				components.SelectField("Report", "type", string(api.ReportSalesStats),
					[]string{string(api.ReportSalesStats), string(api.ReportTopItems), string(api.ReportRevenue)},
					reportLabel,
				),
				components.Field("From", "from", "date", ""),
				components.Field("To", "to", "date", ""),
				g.Div(
					g.Class("field"),
					g.Label(g.For("franchiseeId"), cmp.Text("Franchisee")),
					g.Select(
						g.Name("franchiseeId"), g.ID("franchiseeId"),
						g.Option(g.Value("0"), cmp.Text("Whole network")),
						cmp.Map(franchisees, func(f api.Franchisee) cmp.Node {
							return g.Option(
								g.Value(strconv.FormatInt(f.ID, 10)),
								cmp.Text(f.FirstName+" "+f.LastName),
							)
						}),
					),
				),
				components.SubmitButton("Download PDF"),
			),
		),
	)
}

func reportLabel(v string) string {
	switch api.ReportType(v) {
	case api.ReportSalesStats:
		return "Sales statistics"
	case api.ReportTopItems:
		return "Top items"
	case api.ReportRevenue:
		return "Revenue"
	default:
		return v
	}
}
