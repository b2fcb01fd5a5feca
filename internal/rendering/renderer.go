package rendering

import (
	"bytes"
	"context"
	"io"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// Renderer defines the contract for rendering gomponents views either into
// a full HTTP response or into a detached byte slice for HTMX fragments and
// websocket pushes.
type Renderer interface {
	// RenderComponent renders a component to bytes.
	RenderComponent(ctx context.Context, component cmp.Node) ([]byte, error)

	// RenderPage writes a full page response through Echo's context.
	RenderPage(c echo.Context, status int, component cmp.Node) error
}

// GomponentsRenderer is the concrete Renderer for this application's
// gomponents-based views.
type GomponentsRenderer struct{}

// NewGomponentsRenderer creates a new GomponentsRenderer instance.
func NewGomponentsRenderer() *GomponentsRenderer {
	return &GomponentsRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *GomponentsRenderer) RenderComponent(ctx context.Context, component cmp.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (r *GomponentsRenderer) RenderPage(c echo.Context, status int, component cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Response().Writer)
}

// Render implements the echo.Renderer interface so handlers can also use
// c.Render(status, "", component).
func (r *GomponentsRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	component, ok := data.(cmp.Node)
	if !ok {
		return echo.ErrInternalServerError
	}
	return component.Render(w)
}
