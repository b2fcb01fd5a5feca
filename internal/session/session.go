// Package session holds the process-wide auth session: the single bearer
// token used against the upstream API. It is initialized from the durable
// preference store at startup, mutated only through SetToken, and announces
// every change on the pub/sub bus so interested components (navigation,
// connected pages) can react without polling.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/drivncook/backoffice/internal/prefstore"
	"github.com/drivncook/backoffice/internal/pubsub"
)

// TokenChanged is the payload of the auth.token.changed event.
type TokenChanged struct {
	Authenticated bool `json:"authenticated"`
}

// TokenChangedEvent fires whenever the token is set or cleared.
var TokenChangedEvent = pubsub.NewEvent[TokenChanged]("auth.token.changed")

// Session is the explicit session context. At most one token is active per
// process; an empty token means unauthenticated.
type Session struct {
	mu    sync.RWMutex
	token string

	store *prefstore.Store
	pub   pubsub.Publisher
}

// New creates a Session seeded from the durable store.
func New(store *prefstore.Store, pub pubsub.Publisher) *Session {
	return &Session{
		token: store.Token(),
		store: store,
		pub:   pub,
	}
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is currently held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken replaces the active token; an empty string clears it. The token
// is persisted best-effort and the change is published on the bus.
func (s *Session) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.store.SetToken(token); err != nil {
		// Persistence is best-effort; the in-memory token stays usable.
		slog.Warn("Unable to persist auth token", "error", err)
	}

	s.publish(ctx, token != "")
}

// Clear drops the active token. Used on logout.
func (s *Session) Clear(ctx context.Context) {
	s.SetToken(ctx, "")
}

// reload re-reads the token from the durable store. It publishes only when
// the value actually changed, so watcher noise does not spam the bus.
func (s *Session) reload(ctx context.Context) {
	stored := s.store.Token()

	s.mu.Lock()
	changed := stored != s.token
	s.token = stored
	s.mu.Unlock()

	if changed {
		slog.Info("Auth token changed on disk, session reloaded", "authenticated", stored != "")
		s.publish(ctx, stored != "")
	}
}

func (s *Session) publish(ctx context.Context, authenticated bool) {
	err := pubsub.Publish(ctx, s.pub, TokenChangedEvent, TokenChanged{Authenticated: authenticated})
	if err != nil {
		slog.Error("Failed to publish token change", "error", err)
	}
}
