package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMapOverrideStore returns an override store mock backed by a map of scopes.
func newMapOverrideStore() *mock.OverrideStoreMock {
	var mu sync.Mutex
	scopes := map[string]domain.OverrideSet{}
	return &mock.OverrideStoreMock{
		LoadFunc: func(ctx context.Context, scope string) (domain.OverrideSet, error) {
			mu.Lock()
			defer mu.Unlock()
			return scopes[scope].Clone(), nil
		},
		UpsertFunc: func(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error) {
			mu.Lock()
			defer mu.Unlock()
			set := scopes[scope].Clone()
			set[record.Name] = record
			scopes[scope] = set
			return set.Clone(), nil
		},
		ClearFunc: func(ctx context.Context, scope string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(scopes, scope)
			return nil
		},
	}
}

type hostFixture struct {
	host      *ModuleHost
	registry  *mock.RegistrySourceMock
	manifests *mock.ManifestSourceMock
	store     *mock.OverrideStoreMock
}

func newHostFixture(base []domain.ModuleDescriptor) *hostFixture {
	f := &hostFixture{
		registry: &mock.RegistrySourceMock{
			FetchRegistryFunc: func(ctx context.Context) ([]domain.ModuleDescriptor, error) {
				return base, nil
			},
		},
		manifests: &mock.ManifestSourceMock{
			FetchManifestFunc: func(ctx context.Context, name, branch string) (domain.BranchManifest, error) {
				return manifestFor(name), nil
			},
			EntryURLFunc: entryURL,
		},
		store: newMapOverrideStore(),
	}
	metrics := NewMetrics()
	resolver := NewQueryOverrideResolver(f.manifests, newMapCache(), 0, metrics, log.NewNopLogger())
	f.host = NewModuleHost(f.registry, f.store, resolver, metrics, log.NewNopLogger())
	return f
}

func TestModuleHost_ViewIsEmptyBeforeRefresh(t *testing.T) {
	f := newHostFixture(testBase())

	view, err := f.host.View(context.Background(), "client-1", "", "")
	require.NoError(t, err)
	assert.Empty(t, view)
	assert.False(t, f.host.Loaded())
}

func TestModuleHost_Refresh(t *testing.T) {
	f := newHostFixture(testBase())
	f.host.Refresh(context.Background())

	assert.True(t, f.host.Loaded())
	assert.Equal(t, testBase(), f.host.Base())

	t.Run("transport failure keeps the current registry", func(t *testing.T) {
		f.registry.FetchRegistryFunc = func(ctx context.Context) ([]domain.ModuleDescriptor, error) {
			return nil, assert.AnError
		}
		f.host.Refresh(context.Background())
		assert.Equal(t, testBase(), f.host.Base())
	})

	t.Run("unavailable registry keeps the loaded registry", func(t *testing.T) {
		f.registry.FetchRegistryFunc = func(ctx context.Context) ([]domain.ModuleDescriptor, error) {
			return nil, fmt.Errorf("%w: status 503", ErrRegistryUnavailable)
		}
		f.host.Refresh(context.Background())
		assert.Equal(t, testBase(), f.host.Base())

		view, err := f.host.View(context.Background(), "client-1", "", "")
		require.NoError(t, err)
		assert.Len(t, view, len(testBase()))
	})

	t.Run("published empty list empties the registry", func(t *testing.T) {
		f.registry.FetchRegistryFunc = func(ctx context.Context) ([]domain.ModuleDescriptor, error) {
			return []domain.ModuleDescriptor{}, nil
		}
		f.host.Refresh(context.Background())
		assert.Empty(t, f.host.Base())
		assert.True(t, f.host.Loaded())
	})
}

func TestModuleHost_RefreshBeforeFirstLoad(t *testing.T) {
	t.Run("unavailable registry loads empty", func(t *testing.T) {
		f := newHostFixture(testBase())
		f.registry.FetchRegistryFunc = func(ctx context.Context) ([]domain.ModuleDescriptor, error) {
			return nil, fmt.Errorf("%w: status 403", ErrRegistryUnavailable)
		}
		f.host.Refresh(context.Background())
		assert.True(t, f.host.Loaded())
		assert.Empty(t, f.host.Base())
	})

	t.Run("transport failure stays unloaded", func(t *testing.T) {
		f := newHostFixture(testBase())
		f.registry.FetchRegistryFunc = func(ctx context.Context) ([]domain.ModuleDescriptor, error) {
			return nil, assert.AnError
		}
		f.host.Refresh(context.Background())
		assert.False(t, f.host.Loaded())
		assert.Empty(t, f.host.Base())
	})
}

func TestModuleHost_BranchOverrideScenario(t *testing.T) {
	base := []domain.ModuleDescriptor{{
		Name:   "app2",
		URL:    "https://x/master/app2.js",
		Module: "./App",
		Paths:  []string{"webclient/app2"},
	}}
	f := newHostFixture(base)
	f.manifests.FetchManifestFunc = func(ctx context.Context, name, branch string) (domain.BranchManifest, error) {
		assert.Equal(t, "app2", name)
		assert.Equal(t, "feature-x", branch)
		return domain.BranchManifest{
			MFE:   domain.ManifestModule{Name: "app2", Module: "./App", Paths: []string{"webclient/app2"}},
			Files: map[string]string{"app2.js": "bundle.abc.js"},
		}, nil
	}
	f.host.Refresh(context.Background())

	view, err := f.host.View(context.Background(), "client-1", "?mfe_branch_app2=feature-x", "")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "https://x/apps/app2/feature-x/bundle.abc.js", view[0].Descriptor.URL)
	assert.True(t, view[0].Overridden)
	assert.Equal(t, domain.SourceQuery, view[0].Source)
}

func TestModuleHost_QueryOverridesBeatPersistent(t *testing.T) {
	f := newHostFixture(testBase())
	f.host.Refresh(context.Background())
	ctx := context.Background()

	_, err := f.host.UpsertOverride(ctx, "client-1", descriptor("app2", "https://localhost:3002/app2.js"))
	require.NoError(t, err)

	view, err := f.host.View(ctx, "client-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:3002/app2.js", view[1].Descriptor.URL)
	assert.Equal(t, domain.SourcePersistent, view[1].Source)

	view, err = f.host.View(ctx, "client-1", "mfe_branch_app2=feature-x", "")
	require.NoError(t, err)
	assert.Equal(t, "https://x/apps/app2/feature-x/bundle.abc.js", view[1].Descriptor.URL)
	assert.Equal(t, domain.SourceQuery, view[1].Source)

	t.Run("other clients see the published registry", func(t *testing.T) {
		view, err := f.host.View(ctx, "client-2", "", "")
		require.NoError(t, err)
		assert.False(t, view[1].Overridden)
	})

	t.Run("failed branch falls back to persistent", func(t *testing.T) {
		f.manifests.FetchManifestFunc = func(ctx context.Context, name, branch string) (domain.BranchManifest, error) {
			return domain.BranchManifest{}, NewUpstreamUnavailableError("manifest returned 404", nil)
		}
		view, err := f.host.View(ctx, "client-1", "mfe_branch_app2=gone", "")
		require.NoError(t, err)
		assert.Equal(t, "https://localhost:3002/app2.js", view[1].Descriptor.URL)
		assert.Equal(t, domain.SourcePersistent, view[1].Source)
	})

	t.Run("reset restores the published registry", func(t *testing.T) {
		require.NoError(t, f.host.ResetOverrides(ctx, "client-1"))
		view, err := f.host.View(ctx, "client-1", "", "")
		require.NoError(t, err)
		assert.Equal(t, testBase(), view.Descriptors())
	})
}

func TestModuleHost_View_StorageFailureDegradesToBase(t *testing.T) {
	f := newHostFixture(testBase())
	f.store.LoadFunc = func(ctx context.Context, scope string) (domain.OverrideSet, error) {
		return nil, NewInternalServerError("redis down", nil)
	}
	f.host.Refresh(context.Background())

	view, err := f.host.View(context.Background(), "client-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, testBase(), view.Descriptors())

	_, err = f.host.Overrides(context.Background(), "client-1")
	require.Error(t, err)
	assert.True(t, IsInternalServerError(err))
}

func TestModuleHost_View_Search(t *testing.T) {
	f := newHostFixture(testBase())
	f.host.Refresh(context.Background())

	view, err := f.host.View(context.Background(), "client-1", "", "app3")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "app3", view[0].Descriptor.Name)
}

func TestModuleHost_View_CanceledContext(t *testing.T) {
	f := newHostFixture(testBase())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.host.View(ctx, "client-1", "", "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestModuleHost_UpsertOverride(t *testing.T) {
	f := newHostFixture(testBase())

	t.Run("name is required", func(t *testing.T) {
		_, err := f.host.UpsertOverride(context.Background(), "client-1", domain.ModuleDescriptor{URL: "u"})
		require.Error(t, err)
		assert.True(t, IsBadParameterError(err))
		assert.Empty(t, f.store.UpsertCalls())
	})

	t.Run("returns the full set", func(t *testing.T) {
		_, err := f.host.UpsertOverride(context.Background(), "client-1", descriptor("app1", "u1"))
		require.NoError(t, err)
		set, err := f.host.UpsertOverride(context.Background(), "client-1", descriptor("app2", "u2"))
		require.NoError(t, err)
		assert.Len(t, set, 2)

		loaded, err := f.host.Overrides(context.Background(), "client-1")
		require.NoError(t, err)
		assert.Equal(t, set, loaded)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		f.store.UpsertFunc = func(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error) {
			return nil, assert.AnError
		}
		_, err := f.host.UpsertOverride(context.Background(), "client-1", descriptor("app1", "u1"))
		require.Error(t, err)
		assert.True(t, IsInternalServerError(err))
	})
}

func TestModuleHost_RefreshLoop(t *testing.T) {
	f := newHostFixture(testBase())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.host.RefreshLoop(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, f.host.Loaded, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RefreshLoop did not stop")
	}
}
