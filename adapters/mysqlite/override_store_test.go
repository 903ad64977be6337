package mysqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "overrides.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOverrideStore_Load(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewOverrideStore(db)

	t.Run("absent row is empty", func(t *testing.T) {
		got, err := store.Load(ctx, "client-1")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("corrupt payload is empty", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO module_overrides (scope, payload) VALUES (?, ?)`, "client-2", "{broken")
		require.NoError(t, err)

		got, err := store.Load(ctx, "client-2")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestOverrideStore_UpsertAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewOverrideStore(openTestDB(t))

	a := domain.ModuleDescriptor{Name: "a", URL: "u1", Module: "./App", Paths: []string{"a"}}
	b := domain.ModuleDescriptor{Name: "b", URL: "u1", Module: "./App", Paths: []string{"b"}}
	_, err := store.Upsert(ctx, "client-1", a)
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
	assert.Equal(t, domain.OverrideSet{"a": a2, "b": b}, loaded)

	require.NoError(t, store.Clear(ctx, "client-1"))
	loaded, err = store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestOverrideStore_ConcurrentUpsertAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewOverrideStore(openTestDB(t))

	record := func(i int) domain.ModuleDescriptor {
		name := fmt.Sprintf("app%d", i)
		return domain.ModuleDescriptor{Name: name, URL: "https://localhost/" + name + ".js", Module: "./App", Paths: []string{name}}
	}
	const writers = 8

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Upsert(ctx, "client-1", record(i))
			assert.NoError(t, err)
		}(i)
	}
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loaded, err := store.Load(ctx, "client-1")
			if !assert.NoError(t, err) {
				return
			}
			for name, got := range loaded {
				var idx int
				if _, err := fmt.Sscanf(name, "app%d", &idx); assert.NoError(t, err) {
					assert.Equal(t, record(idx), got)
				}
			}
		}()
	}
	wg.Wait()

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Len(t, loaded, writers)
}

func TestOverrideStore_ClosedDBReturnsInternalServerError(t *testing.T) {
	db := openTestDB(t)
	store := NewOverrideStore(db)
	require.NoError(t, db.Close())

	_, err := store.Load(context.Background(), "client-1")
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
