package profilepage

import (
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// Page renders the profile and preference editor from a manager snapshot.
func Page(c echo.Context, snap profile.Snapshot) cmp.Node {
	data := layouts.NewPageData(c, "My profile", true, snap.Preferences.AccentColor)

	return layouts.Base(data,
		g.H1(cmp.Text("My profile")),
		cmp.If(snap.Err != "", g.Div(g.Class("error-banner"), cmp.Text(snap.Err))),
		cmp.If(snap.Loading, g.P(cmp.Text("Loading profile..."))),
		editorCard(snap),
		g.Div(
			g.Class("card"),
			g.Form(
				g.Method("post"),
				g.Action("/profile/reset"),
				g.Button(g.Type("submit"), g.Class("btn btn-secondary"), cmp.Text("Reset preferences")),
			),
		),
	)
}

func editorCard(snap profile.Snapshot) cmp.Node {
	if snap.Franchisee == nil {
		return nil
	}
	f := snap.Franchisee

	return g.Div(
		g.Class("card"),
		cmp.If(snap.Preferences.AvatarDataURL != "",
			g.Img(g.Class("avatar-preview"), g.Src(snap.Preferences.AvatarDataURL), g.Alt("Avatar")),
		),
		g.Form(
			g.Method("post"),
			g.Action("/profile"),
			components.Field("First name", "firstName", "text", f.FirstName),
			components.Field("Last name", "lastName", "text", f.LastName),
			components.Field("Phone", "phone", "tel", f.Phone),
			components.Field("Company", "companyName", "text", f.CompanyName),
			components.Field("Address", "address", "text", f.Address),
			components.Field("Accent color", "accentColor", "color", snap.Preferences.AccentColor),
			components.Field("Avatar (data URI)", "avatarDataUrl", "text", snap.Preferences.AvatarDataURL),
			components.SubmitButton("Save"),
		),
	)
}
