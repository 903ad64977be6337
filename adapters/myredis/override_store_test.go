package myredis

import (
	"context"
	"sync"
	"testing"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOverridePrefix = "test_moduleRegistry"

func TestOverrideStore_Load(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t, testOverridePrefix)
	defer cleanup()

	store := NewOverrideStore(client, testOverridePrefix)

	t.Run("absent payload is empty", func(t *testing.T) {
		got, err := store.Load(ctx, "client-1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("corrupt payload is empty", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testOverridePrefix+":client-2", "{not json", 0).Err())
		got, err := store.Load(ctx, "client-2")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("null payload is empty", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testOverridePrefix+":client-3", "null", 0).Err())
		got, err := store.Load(ctx, "client-3")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestOverrideStore_UpsertAndClear(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t, testOverridePrefix)
	defer cleanup()

	store := NewOverrideStore(client, testOverridePrefix)
	a := domain.ModuleDescriptor{Name: "a", URL: "u1", Module: "./App", Paths: []string{"a"}}
	b := domain.ModuleDescriptor{Name: "b", URL: "u1", Module: "./App", Paths: []string{"b"}}

	_, err := store.Upsert(ctx, "client-1", a)
	require.NoError(t, err)
	_, err = store.Upsert(ctx, "client-1", b)
	require.NoError(t, err)

	a2 := a
	a2.URL = "u2"
	updated, err := store.Upsert(ctx, "client-1", a2)
	require.NoError(t, err)
	assert.Equal(t, domain.OverrideSet{"a": a2, "b": b}, updated)

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "u2", loaded["a"].URL)
	assert.Equal(t, b, loaded["b"])

	other, err := store.Load(ctx, "client-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, store.Clear(ctx, "client-1"))
	loaded, err = store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestOverrideStore_ConcurrentUpsertsKeepEveryRecord(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t, testOverridePrefix)
	defer cleanup()

	store := NewOverrideStore(client, testOverridePrefix)
	names := []string{"a", "b", "c"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := store.Upsert(ctx, "client-1", domain.ModuleDescriptor{Name: name, URL: "u", Module: "./App", Paths: []string{name}})
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Len(t, loaded, len(names))
}

func TestOverrideStore_ClosedClientReturnsInternalServerError(t *testing.T) {
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)
	client.Close()

	store := NewOverrideStore(client, testOverridePrefix)
	_, err = store.Load(context.Background(), "client-1")
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))

	err = store.Clear(context.Background(), "client-1")
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
