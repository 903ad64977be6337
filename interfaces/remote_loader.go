package interfaces

import (
	"context"

	"github.com/farism/mfe-host/domain"
)

// RemoteLoader loads federation entry scripts and hands out their exposed modules.
// Each URL is loaded at most once, even under concurrent requests.
//
//go:generate moq -stub -out mock/remote_loader.go -pkg mock . RemoteLoader
type RemoteLoader interface {
	// Load makes sure remote.URL is loaded and returns the factory of remote.Module.
	// Returns:
	// 1) (factory, nil) once the container is ready;
	// 2) (nil, upstream_unavailable) when fetching or evaluating the script fails;
	// 3) (nil, entity_not_found) when the container does not expose remote.Module.
	Load(ctx context.Context, remote domain.ModuleDescriptor) (domain.ModuleFactory, error)

	// State returns the load state of url; idle when it was never requested.
	State(url string) domain.LoadState
}

// ScriptSource downloads remote entry scripts.
//
//go:generate moq -stub -out mock/script_source.go -pkg mock . ScriptSource
type ScriptSource interface {
	FetchScript(ctx context.Context, url string) ([]byte, error)
}

// ContainerRuntime evaluates an entry script and returns the federation container it registers.
//
//go:generate moq -stub -out mock/container_runtime.go -pkg mock . ContainerRuntime
type ContainerRuntime interface {
	// Evaluate runs src (downloaded from url) and looks up the container registered as scope.
	Evaluate(scope, url string, src []byte) (Container, error)
}

// Container is an initialized module federation container.
//
//go:generate moq -stub -out mock/container.go -pkg mock . Container
type Container interface {
	// Get returns the factory of an exposed module.
	Get(module string) (domain.ModuleFactory, error)
}
