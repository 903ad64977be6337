package memory

import (
	"context"
	"testing"

	"github.com/farism/mfe-host/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideStore(t *testing.T) {
	ctx := context.Background()
	store := NewOverrideStore()

	empty, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a := domain.ModuleDescriptor{Name: "a", URL: "u1", Module: "./App", Paths: []string{"a"}}
	b := domain.ModuleDescriptor{Name: "b", URL: "u1", Module: "./App", Paths: []string{"b"}}
	_, err = store.Upsert(ctx, "client-1", a)
	require.NoError(t, err)
	_, err = store.Upsert(ctx, "client-1", b)
	require.NoError(t, err)

	a2 := a.Clone()
	a2.URL = "u2"
	updated, err := store.Upsert(ctx, "client-1", a2)
	require.NoError(t, err)
	assert.Equal(t, domain.OverrideSet{"a": a2, "b": b}, updated)

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "u2", loaded["a"].URL)
	assert.Equal(t, b, loaded["b"])

	t.Run("returned sets are copies", func(t *testing.T) {
		loaded["b"] = domain.ModuleDescriptor{Name: "b", URL: "mutated"}
		again, err := store.Load(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, "u1", again["b"].URL)
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		other, err := store.Load(ctx, "client-2")
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("clear then load is empty", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx, "client-1"))
		cleared, err := store.Load(ctx, "client-1")
		require.NoError(t, err)
		assert.Empty(t, cleared)
	})
}
