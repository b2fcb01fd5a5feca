package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the routes that live outside any page module.
func (s *Server) RegisterRoutes() {
	s.E.GET("/ws/session", s.serveSessionWS)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
