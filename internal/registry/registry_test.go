package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name string
}

func TestSetAndGet(t *testing.T) {
	r := New(nil)
	key := Key[*fakeService]("test.service")

	Set(r, key, &fakeService{name: "svc"})

	got, ok := Get(r, key)
	require.True(t, ok)
	assert.Equal(t, "svc", got.name)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	r := New(nil)

	_, ok := Get(r, Key[*fakeService]("test.absent"))
	assert.False(t, ok)
}

func TestMustGetPanicsOnMissingKey(t *testing.T) {
	r := New(nil)

	assert.Panics(t, func() {
		MustGet(r, Key[*fakeService]("test.absent"))
	})
}
