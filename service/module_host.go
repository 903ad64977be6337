package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var _ interfaces.ModuleHost = (*ModuleHost)(nil)

// ErrRegistryUnavailable is returned by a RegistrySource when the storage answers
// but publishes no readable registry.
var ErrRegistryUnavailable = errors.New("module registry unavailable")

// ModuleHost is the composition root of registry resolution. It owns the published registry,
// the persistent override store and the branch override resolver, and derives a fresh
// RegistryView for every request. Until the first Refresh completes the registry is empty.
type ModuleHost struct {
	registry  interfaces.RegistrySource
	overrides interfaces.OverrideStore
	resolver  *QueryOverrideResolver
	metrics   *Metrics
	logger    log.Logger

	mu     sync.RWMutex
	base   []domain.ModuleDescriptor
	loaded bool
}

// NewModuleHost creates a ModuleHost. Panics on nil dependencies.
func NewModuleHost(
	registry interfaces.RegistrySource,
	overrides interfaces.OverrideStore,
	resolver *QueryOverrideResolver,
	metrics *Metrics,
	logger log.Logger,
) *ModuleHost {
	return &ModuleHost{
		registry:  helpers.MustNonNil(registry, "service.module_host.go: registry is required"),
		overrides: helpers.MustNonNil(overrides, "service.module_host.go: overrides is required"),
		resolver:  helpers.MustNonNil(resolver, "service.module_host.go: resolver is required"),
		metrics:   helpers.MustNonNil(metrics, "service.module_host.go: metrics is required"),
		logger:    log.WithPrefix(helpers.MustNonNil(logger, "service.module_host.go: logger is required"), "component", "ModuleHost"),
		base:      []domain.ModuleDescriptor{},
	}
}

// Refresh fetches the published registry and replaces the current one.
// Any failure keeps the current registry. An unavailable registry before the first
// successful load counts as loaded and empty.
func (h *ModuleHost) Refresh(ctx context.Context) {
	modules, err := h.registry.FetchRegistry(ctx)
	if errors.Is(err, ErrRegistryUnavailable) {
		h.metrics.RegistryFetches.WithLabelValues("unavailable").Inc()
		level.Warn(h.logger).Log("msg", "Module registry unavailable", "err", err)

		h.mu.Lock()
		h.loaded = true
		h.mu.Unlock()
		return
	}
	if err != nil {
		h.metrics.RegistryFetches.WithLabelValues("error").Inc()
		level.Warn(h.logger).Log("msg", "Module registry unreachable", "err", err)
		return
	}
	h.metrics.RegistryFetches.WithLabelValues("ok").Inc()
	h.metrics.RegistryModules.Set(float64(len(modules)))

	base := make([]domain.ModuleDescriptor, 0, len(modules))
	for _, m := range modules {
		base = append(base, m.Clone())
	}

	h.mu.Lock()
	h.base = base
	h.loaded = true
	h.mu.Unlock()

	level.Info(h.logger).Log("msg", "Module registry loaded", "modules", len(base))
}

// RefreshLoop calls Refresh every interval until ctx is done.
func (h *ModuleHost) RefreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Base returns a copy of the published registry.
func (h *ModuleHost) Base() []domain.ModuleDescriptor {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.ModuleDescriptor, 0, len(h.base))
	for _, m := range h.base {
		out = append(out, m.Clone())
	}
	return out
}

// Loaded reports whether the registry has been fetched successfully at least once.
func (h *ModuleHost) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loaded
}

// View merges the published registry with the client's persistent overrides and the branch
// overrides of rawQuery. Storage failures degrade to no persistent overrides; failed branch
// overrides are left out. Only entries whose name contains search are returned.
func (h *ModuleHost) View(ctx context.Context, scope, rawQuery, search string) (domain.RegistryView, error) {
	persistent, err := h.overrides.Load(ctx, scope)
	if err != nil {
		level.Warn(h.logger).Log("msg", "Persistent overrides unavailable", "scope", scope, "err", err)
		persistent = domain.OverrideSet{}
	}

	query := domain.OverrideSet{}
	if branches := ParseBranchOverrides(rawQuery); len(branches) > 0 {
		query = h.resolver.Resolve(ctx, branches)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := Merge(h.Base(), persistent, query)
	if search == "" {
		return view, nil
	}

	filtered := make(domain.RegistryView, 0, len(view))
	for _, e := range view {
		if strings.Contains(e.Descriptor.Name, search) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Overrides returns the persistent overrides of the client.
func (h *ModuleHost) Overrides(ctx context.Context, scope string) (domain.OverrideSet, error) {
	set, err := h.overrides.Load(ctx, scope)
	if err != nil {
		return nil, NewInternalServerError("can't load overrides", err)
	}
	return set, nil
}

// UpsertOverride stores record as a persistent override of the client.
func (h *ModuleHost) UpsertOverride(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error) {
	if record.Name == "" {
		return nil, NewBadParameterError("name is required", nil)
	}
	set, err := h.overrides.Upsert(ctx, scope, record)
	if err != nil {
		return nil, NewInternalServerError("can't save override", err)
	}
	level.Info(h.logger).Log("msg", "Override saved", "scope", scope, "module", record.Name, "url", record.URL)
	return set, nil
}

// ResetOverrides drops every persistent override of the client.
func (h *ModuleHost) ResetOverrides(ctx context.Context, scope string) error {
	if err := h.overrides.Clear(ctx, scope); err != nil {
		return NewInternalServerError("can't reset overrides", err)
	}
	level.Info(h.logger).Log("msg", "Overrides reset", "scope", scope)
	return nil
}
