package interfaces

import (
	"context"

	"github.com/farism/mfe-host/domain"
)

// RegistrySource provides the canonical list of published modules.
//
//go:generate moq -stub -out mock/registry_source.go -pkg mock . RegistrySource
type RegistrySource interface {
	// FetchRegistry returns the published modules in publication order.
	// Returns:
	// 1) (modules, nil) on success;
	// 2) (nil, err wrapping service.ErrRegistryUnavailable) when the registry answers non-2xx
	//    or with an unparsable body;
	// 3) (nil, err) on transport failure.
	FetchRegistry(ctx context.Context) ([]domain.ModuleDescriptor, error)
}

// ManifestSource provides per-branch manifests of a module.
//
//go:generate moq -stub -out mock/manifest_source.go -pkg mock . ManifestSource
type ManifestSource interface {
	// FetchManifest returns the manifest of module name built from branch.
	// Returns:
	// 1) (manifest, nil) on success;
	// 2) (zero, upstream_unavailable) on non-2xx, transport or parse failure.
	FetchManifest(ctx context.Context, name, branch string) (domain.BranchManifest, error)

	// EntryURL returns the absolute URL of file inside the branch build of module name.
	EntryURL(name, branch, file string) (string, error)
}
