package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start boots the background services and runs the HTTP server until an
// interrupt arrives, then shuts everything down gracefully.
func (s *Server) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.BootModules(ctx); err != nil {
		s.E.Logger.Fatalf("booting modules: %v", err)
	}
	if err := s.startSessionFeed(ctx); err != nil {
		s.E.Logger.Fatalf("starting session feed: %v", err)
	}

	go s.htmlHub.Run(ctx)

	// Watch the preference store so a token written by drivnctl on the same
	// machine is picked up without a restart.
	go func() {
		if err := s.session.Watch(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("Preference store watcher stopped", "error", err)
		}
	}()

	go func() {
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && err != http.ErrServerClosed {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := s.bridge.Close(); err != nil {
		slog.Warn("Closing pub/sub bridge", "error", err)
	}
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		s.E.Logger.Fatal(err)
	}
}
