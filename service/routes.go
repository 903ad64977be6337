package service

import (
	"strings"

	"github.com/farism/mfe-host/domain"
)

// BuildRoutes registers one route per paths entry of every view entry, in view order.
// Duplicate paths across modules are kept so that both modules are mounted.
func BuildRoutes(view domain.RegistryView) []domain.Route {
	routes := make([]domain.Route, 0, len(view))
	for _, e := range view {
		for _, p := range e.Descriptor.Paths {
			routes = append(routes, domain.Route{
				Path:   normalizePath(p),
				Remote: e.Descriptor.Clone(),
			})
		}
	}
	return routes
}

// MatchRoutes returns the routes mounted at path. A route matches when its path is a
// segment prefix of path, so "/webclient/app2" matches "/webclient/app2/settings"
// but not "/webclient/app22".
func MatchRoutes(routes []domain.Route, path string) []domain.Route {
	path = normalizePath(path)
	matched := make([]domain.Route, 0)
	for _, r := range routes {
		if r.Path == "/" || path == r.Path || strings.HasPrefix(path, r.Path+"/") {
			matched = append(matched, r)
		}
	}
	return matched
}

func normalizePath(p string) string {
	return "/" + strings.Trim(strings.TrimSpace(p), "/")
}
