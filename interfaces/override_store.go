package interfaces

import (
	"context"

	"github.com/farism/mfe-host/domain"
)

// OverrideStore persists the overrides a client entered by hand, one blob per client scope.
//
//go:generate moq -stub -out mock/override_store.go -pkg mock . OverrideStore
type OverrideStore interface {
	// Load returns every override persisted for scope.
	// Returns:
	// 1) (overrides, nil), possibly empty, also when the stored payload is absent or corrupt;
	// 2) (nil, internal_server_error) when the storage cannot be read.
	Load(ctx context.Context, scope string) (domain.OverrideSet, error)

	// Upsert writes or replaces the override for record.Name and persists the whole set.
	// A concurrent Load never observes a half-written set.
	// Returns:
	// 1) (updated overrides, nil) on success;
	// 2) (nil, internal_server_error) when the storage read or write fails.
	Upsert(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error)

	// Clear deletes every override persisted for scope.
	// Returns:
	// 1) nil on success, also when nothing was stored;
	// 2) internal_server_error when the storage delete fails.
	Clear(ctx context.Context, scope string) error
}
