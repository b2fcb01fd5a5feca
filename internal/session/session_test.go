package session

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivncook/backoffice/internal/prefstore"
	"github.com/drivncook/backoffice/internal/pubsub"
)

// capturePublisher records published messages for assertions.
type capturePublisher struct {
	mu       sync.Mutex
	messages []pubsub.Message
}

func (p *capturePublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) published() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]pubsub.Message, len(p.messages))
	copy(out, p.messages)
	return out
}

func decodeTokenChanged(t *testing.T, msg pubsub.Message) TokenChanged {
	t.Helper()
	var payload TokenChanged
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	return payload
}

func TestSessionSeedsFromStore(t *testing.T) {
	store := prefstore.New(afero.NewMemMapFs(), "state")
	require.NoError(t, store.SetToken("persisted"))

	sess := New(store, &capturePublisher{})
	assert.Equal(t, "persisted", sess.Token())
	assert.True(t, sess.Authenticated())
}

func TestSetTokenPersistsAndPublishes(t *testing.T) {
	store := prefstore.New(afero.NewMemMapFs(), "state")
	pub := &capturePublisher{}
	sess := New(store, pub)

	sess.SetToken(context.Background(), "tok-1")

	assert.Equal(t, "tok-1", store.Token(), "token persisted to the store")

	msgs := pub.published()
	require.Len(t, msgs, 1)
	assert.Equal(t, TokenChangedEvent.Name(), msgs[0].Topic)
	assert.True(t, decodeTokenChanged(t, msgs[0]).Authenticated)
}

func TestClearDropsTokenAndPublishes(t *testing.T) {
	store := prefstore.New(afero.NewMemMapFs(), "state")
	require.NoError(t, store.SetToken("tok-1"))
	pub := &capturePublisher{}
	sess := New(store, pub)

	sess.Clear(context.Background())

	assert.False(t, sess.Authenticated())
	assert.Empty(t, store.Token())

	msgs := pub.published()
	require.Len(t, msgs, 1)
	assert.False(t, decodeTokenChanged(t, msgs[0]).Authenticated)
}

func TestReloadPublishesOnlyOnChange(t *testing.T) {
	store := prefstore.New(afero.NewMemMapFs(), "state")
	pub := &capturePublisher{}
	sess := New(store, pub)

	// Nothing on disk, nothing held: reload is a no-op.
	sess.reload(context.Background())
	assert.Empty(t, pub.published())

	// Another process (drivnctl) writes a token.
	require.NoError(t, store.SetToken("external"))
	sess.reload(context.Background())
	assert.Equal(t, "external", sess.Token())

	msgs := pub.published()
	require.Len(t, msgs, 1)
	assert.True(t, decodeTokenChanged(t, msgs[0]).Authenticated)

	// Re-reading the same value publishes nothing new.
	sess.reload(context.Background())
	assert.Len(t, pub.published(), 1)
}
