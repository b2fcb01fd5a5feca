package franchisees

import (
	"fmt"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// ListPage renders the franchisee directory.
func ListPage(c echo.Context, accent string, list []api.Franchisee) cmp.Node {
	data := layouts.NewPageData(c, "Franchisees", true, accent)

	rows := make([]cmp.Node, 0, len(list))
	for _, f := range list {
		rows = append(rows, g.Tr(
			g.Td(g.A(
				g.Href(fmt.Sprintf("/franchisees/%d", f.ID)),
				cmp.Text(f.FirstName+" "+f.LastName),
			)),
			g.Td(cmp.Text(f.CompanyName)),
			g.Td(cmp.Text(f.Email)),
			g.Td(cmp.Text(f.Phone)),
			g.Td(cmp.Text(f.CreatedAt)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(5, "No franchisees yet."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Franchisees")),
		components.Table([]string{"Name", "Company", "Email", "Phone", "Joined"}, rows),
	)
}

// DetailPage renders the admin view of one franchisee.
func DetailPage(c echo.Context, accent string, detail *api.FranchiseeDetail) cmp.Node {
	f := detail.Franchisee
	data := layouts.NewPageData(c, f.CompanyName, true, accent)

	return layouts.Base(data,
		g.H1(cmp.Text(f.FirstName+" "+f.LastName)),
		g.Div(
			g.Class("card"),
			detailRow("Company", f.CompanyName),
			detailRow("Email", f.Email),
			detailRow("Phone", f.Phone),
			detailRow("Address", f.Address),
			detailRow("Joined", f.CreatedAt),
		),
		preferencesCard(detail.Preferences),
	)
}

func detailRow(label, value string) cmp.Node {
	if value == "" {
		value = "—"
	}
	return g.P(g.Strong(cmp.Text(label+": ")), cmp.Text(value))
}

func preferencesCard(prefs *api.ProfilePreferences) cmp.Node {
	if prefs == nil {
		return nil
	}
	return g.Div(
		g.Class("card"),
		g.H2(cmp.Text("Preferences")),
		cmp.If(prefs.AvatarDataURL != "",
			g.Img(g.Class("avatar-preview"), g.Src(prefs.AvatarDataURL), g.Alt("Avatar")),
		),
		cmp.If(prefs.AccentColor != "",
			detailRow("Accent color", prefs.AccentColor),
		),
	)
}
