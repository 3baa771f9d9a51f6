package session

import (
	"fmt"
	"testing"
	"time"

	"catalog-backend/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(idle time.Duration) (*Registry, *time.Time) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seq := 0
	r := NewRegistry(func(id string) *Session {
		return New(id, Deps{Store: storetest.New()})
	}, idle, nil)
	r.now = func() time.Time { return now }
	r.newID = func() string {
		seq++
		return fmt.Sprintf("sess-%d", seq)
	}
	return r, &now
}

func TestRegistryResolve(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	s, created := r.Resolve("")
	require.True(t, created)
	assert.Equal(t, "sess-1", s.ID())

	again, created := r.Resolve("sess-1")
	assert.False(t, created)
	assert.Same(t, s, again)

	_, created = r.Resolve("forged")
	assert.True(t, created)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryExpiresIdleSessions(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	first := r.Create()
	*now = now.Add(30 * time.Second)
	second := r.Create()

	*now = now.Add(45 * time.Second)
	assert.Equal(t, 1, r.Sweep())

	_, ok := r.Get(first.ID())
	assert.False(t, ok)
	_, ok = r.Get(second.ID())
	assert.True(t, ok)
}

func TestRegistryGetDropsExpired(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	s := r.Create()
	*now = now.Add(2 * time.Minute)

	_, ok := r.Get(s.ID())
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestRegistryUseExtendsLifetime(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	s := r.Create()
	for i := 0; i < 3; i++ {
		*now = now.Add(50 * time.Second)
		_, ok := r.Get(s.ID())
		require.True(t, ok)
	}
	assert.Zero(t, r.Sweep())
}
