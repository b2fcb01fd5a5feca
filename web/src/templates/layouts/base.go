package layouts

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
	hx "maragu.dev/gomponents-htmx"

	"github.com/drivncook/backoffice/internal/view"
	"github.com/drivncook/backoffice/web/src/templates/components"
)

// PageData carries the ambient state every page shares.
type PageData struct {
	Title         string
	Authenticated bool
	AccentColor   string
	Flash         view.FlashData
}

// Base wraps page content in the HTML shell: head, accent theme, navigation,
// flash banners and the websocket feed that keeps the nav bar in sync when
// the session changes out-of-band.
func Base(data PageData, content ...cmp.Node) cmp.Node {
	return gc.HTML5(gc.HTML5Props{
		Title:    pageTitle(data.Title),
		Language: "en",
		Head: []cmp.Node{
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
			g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js")),
			accentStyle(data.AccentColor),
		},
		Body: []cmp.Node{
			g.Div(
				hx.Ext("ws"),
				cmp.Attr("ws-connect", "/ws/session"),
				components.Nav(data.Authenticated, false),
				components.Flashes(data.Flash),
				g.Main(g.Class("content"), cmp.Group(content)),
			),
		},
	})
}

// pageTitle handles the conditional logic for the page title.
func pageTitle(title string) string {
	if title != "" {
		return title + " - Driv'n Cook"
	}
	return "Driv'n Cook"
}

func accentStyle(accent string) cmp.Node {
	if accent == "" {
		return nil
	}
	return g.StyleEl(cmp.Raw(fmt.Sprintf(":root { --accent: %s; }", accent)))
}
