package interfaces

import (
	"context"

	"github.com/farism/mfe-host/domain"
)

// ModuleHost resolves the registry a client sees and manages its persistent overrides.
//
//go:generate moq -stub -out mock/module_host.go -pkg mock . ModuleHost
type ModuleHost interface {
	// View merges the published registry with the client's persistent overrides and the
	// branch overrides found in rawQuery. Only entries whose name contains search are kept.
	View(ctx context.Context, scope, rawQuery, search string) (domain.RegistryView, error)

	// Overrides returns the persistent overrides of the client.
	Overrides(ctx context.Context, scope string) (domain.OverrideSet, error)

	// UpsertOverride stores record as a persistent override and returns the updated set.
	UpsertOverride(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error)

	// ResetOverrides drops every persistent override of the client.
	ResetOverrides(ctx context.Context, scope string) error
}
