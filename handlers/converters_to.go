package handlers

import (
	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"
)

func toRegistryResponse(view domain.RegistryView) RegistryResponse {
	out := make([]RegistryEntry, 0, len(view))
	for _, e := range view {
		out = append(out, RegistryEntry{
			Name:       e.Descriptor.Name,
			Url:        e.Descriptor.URL,
			Module:     e.Descriptor.Module,
			Paths:      toPaths(e.Descriptor.Paths),
			Overridden: e.Overridden,
			Source:     RegistryEntrySource(e.Source),
		})
	}
	return RegistryResponse{Modules: out}
}

func toOverridesResponse(set domain.OverrideSet) OverridesResponse {
	out := make(map[string]ModuleDescriptor, len(set))
	for name, d := range set {
		out[name] = ModuleDescriptor{
			Name:   d.Name,
			Url:    d.URL,
			Module: d.Module,
			Paths:  toPaths(d.Paths),
		}
	}
	return OverridesResponse{Overrides: out}
}

// toRoutesResponse converts routes and attaches the load state reported by state.
func toRoutesResponse(routes []domain.Route, state func(url string) domain.LoadState) RoutesResponse {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, Route{
			Path:   r.Path,
			Name:   r.Remote.Name,
			Url:    r.Remote.URL,
			Module: r.Remote.Module,
			State:  LoadState(state(r.Remote.URL)),
		})
	}
	return RoutesResponse{Routes: out}
}

func toRemoteStatus(e domain.RegistryEntry, state domain.LoadState) RemoteStatus {
	return RemoteStatus{
		Name:       e.Descriptor.Name,
		Url:        e.Descriptor.URL,
		Module:     e.Descriptor.Module,
		Paths:      toPaths(e.Descriptor.Paths),
		Overridden: e.Overridden,
		Source:     RemoteStatusSource(e.Source),
		State:      LoadState(state),
	}
}

func toHostError(err error) *HostError {
	hostErr := service.ToHostError(err)
	if hostErr == nil {
		hostErr = service.NewInternalServerError("unexpected error", err)
	}
	return &HostError{Code: hostErr.Code, Message: hostErr.Message}
}

// toPaths keeps paths a JSON array when the descriptor has none.
func toPaths(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return paths
}
