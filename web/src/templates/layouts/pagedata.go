package layouts

import (
	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/view"
)

// NewPageData assembles the shared layout state for a request, consuming any
// pending flash messages.
func NewPageData(c echo.Context, title string, authenticated bool, accent string) PageData {
	return PageData{
		Title:         title,
		Authenticated: authenticated,
		AccentColor:   accent,
		Flash:         view.GetFlashData(c),
	}
}
