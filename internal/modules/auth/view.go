package auth

import (
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

// LoginPage renders the credential form, with an optional inline error.
func LoginPage(c echo.Context, errMsg string) cmp.Node {
	data := layouts.NewPageData(c, "Sign in", false, profile.DefaultAccentColor)
	return layouts.Base(data,
		g.Div(
			g.Class("card"),
			g.H1(cmp.Text("Back-office sign in")),
			cmp.If(errMsg != "", g.Div(g.Class("error-banner"), cmp.Text(errMsg))),
			g.Form(
				g.Method("post"),
				g.Action("/auth/login"),
				components.Field("Email", "email", "email", ""),
				components.Field("Password", "password", "password", ""),
				components.SubmitButton("Sign in"),
			),
		),
	)
}
