package myredis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"
const testPrefix = "test_manifest"

// setupTestRedis connects to the local redis and wipes keys under prefix.
// Tests are skipped when no redis is listening.
func setupTestRedis(t *testing.T, prefix string) (redis.UniversalClient, func()) {
	t.Helper()
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis is not reachable at %s: %v", testRedisAddr, err)
	}

	wipe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		keys, err := client.Keys(ctx, prefix+":*").Result()
		if err == nil && len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	}
	wipe()

	cleanup := func() {
		wipe()
		client.Close()
	}
	return client, cleanup
}

func marshalDescriptor(d domain.ModuleDescriptor) ([]byte, error) { return json.Marshal(d) }
func unmarshalDescriptor(b []byte) (domain.ModuleDescriptor, error) {
	var d domain.ModuleDescriptor
	err := json.Unmarshal(b, &d)
	return d, err
}

func TestCache_WriteAndReadValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t, testPrefix)
	defer cleanup()

	cache := NewCache[domain.ModuleDescriptor](client, testPrefix, marshalDescriptor, unmarshalDescriptor)
	d := domain.ModuleDescriptor{
		Name:   "app2",
		URL:    "https://x/apps/app2/feature-x/bundle.abc.js",
		Module: "./App",
		Paths:  []string{"webclient/app2"},
	}

	t.Run("success", func(t *testing.T) {
		err := cache.WriteValue(ctx, "app2/feature-x", d, 60000)
		require.NoError(t, err)

		got, err := cache.ReadValue(ctx, "app2/feature-x")
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})

	t.Run("missing key returns entity not found", func(t *testing.T) {
		_, err := cache.ReadValue(ctx, "app2/unknown")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("invalid JSON in redis yields entity not found", func(t *testing.T) {
		err := client.Set(ctx, testPrefix+":badjson", "invalid json", 0).Err()
		require.NoError(t, err)

		_, err = cache.ReadValue(ctx, "badjson")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("when Redis write fails returns internal_server_error", func(t *testing.T) {
		closedClient, err := NewRedisUniversalClient(testRedisAddr)
		require.NoError(t, err)
		closedClient.Close()
		cacheClosed := NewCache[domain.ModuleDescriptor](closedClient, testPrefix, marshalDescriptor, unmarshalDescriptor)

		err = cacheClosed.WriteValue(ctx, "x", d, 60000)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})
}

func TestCache_DeleteValue(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t, testPrefix)
	defer cleanup()

	cache := NewCache[domain.ModuleDescriptor](client, testPrefix, marshalDescriptor, unmarshalDescriptor)
	err := cache.WriteValue(ctx, "app3/main", domain.ModuleDescriptor{Name: "app3"}, 60000)
	require.NoError(t, err)

	err = cache.DeleteValue(ctx, "app3/main")
	require.NoError(t, err)

	_, err = cache.ReadValue(ctx, "app3/main")
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
}
