package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheRoundTrip(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	c := NewRedis(server.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "meta:https://example.test")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "meta:https://example.test", []byte(`{"title":"x"}`), time.Minute))
	assert.True(t, server.Exists("catalog:meta:https://example.test"))

	got, ok, err := c.Get(ctx, "meta:https://example.test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"title":"x"}`, string(got))

	server.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "meta:https://example.test")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheDelete(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	c, err := NewRedisFromURL("redis://" + server.Addr() + "/0")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoopCacheAlwaysMisses(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONHelpers(t *testing.T) {
	server := miniredis.RunT(t)
	c := NewRedis(server.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	type item struct {
		Title string `json:"title"`
	}
	require.NoError(t, SetJSON(ctx, c, "item", item{Title: "Tower"}, time.Minute))

	var got item
	require.True(t, GetJSON(ctx, c, "item", &got))
	assert.Equal(t, "Tower", got.Title)

	require.NoError(t, server.Set("catalog:broken", "{not json"))
	assert.False(t, GetJSON(ctx, c, "broken", &got))
	assert.False(t, GetJSON(ctx, c, "missing", &got))
}
