package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/view"
)

// Flashes renders one-shot success and error banners.
func Flashes(data view.FlashData) cmp.Node {
	if len(data.Success) == 0 && len(data.Error) == 0 {
		return nil
	}
	return g.Div(
		g.Class("flashes"),
		cmp.Map(data.Success, func(msg string) cmp.Node {
			return g.Div(g.Class("flash flash-success"), cmp.Text(msg))
		}),
		cmp.Map(data.Error, func(msg string) cmp.Node {
			return g.Div(g.Class("flash flash-error"), cmp.Text(msg))
		}),
	)
}
