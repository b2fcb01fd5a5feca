package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/hub"
	"github.com/drivncook/backoffice/internal/pubsub"
	appsession "github.com/drivncook/backoffice/internal/session"
	"github.com/drivncook/backoffice/web/src/templates/components"
)

// startSessionFeed subscribes to token changes and pushes a re-rendered
// navigation bar to every connected page through the hub.
func (s *Server) startSessionFeed(ctx context.Context) error {
	return pubsub.SubscribeTyped(ctx, s.bridge, appsession.TokenChangedEvent,
		func(ctx context.Context, payload appsession.TokenChanged) error {
			fragment, err := s.renderer.RenderComponent(ctx, components.Nav(payload.Authenticated, true))
			if err != nil {
				return err
			}
			s.htmlHub.Broadcast <- fragment
			return nil
		})
}

// serveSessionWS upgrades the connection and streams nav fragments to the
// page until it disconnects.
func (s *Server) serveSessionWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The back office runs on a single trusted origin behind its own
		// session cookie, so origin checking is left to the deployment.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to upgrade to WebSocket")
	}

	sub := hub.NewSubscriber()
	s.htmlHub.Register <- sub

	ctx := c.Request().Context()
	defer func() {
		s.htmlHub.Unregister <- sub
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	// Reads are discarded; the feed is one-way. CloseRead surfaces client
	// disconnects through the returned context.
	readCtx := conn.CloseRead(ctx)

	for {
		select {
		case <-readCtx.Done():
			return nil
		case fragment, ok := <-sub.Send:
			if !ok {
				return nil
			}
			if err := conn.Write(readCtx, websocket.MessageText, fragment); err != nil {
				slog.Debug("Session feed write failed, dropping connection", "error", err)
				return nil
			}
		}
	}
}
