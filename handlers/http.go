// Package handlers contains http handlers for the module host.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/module-host.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/module-host.openapi.yaml
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/interfaces"
	"github.com/farism/mfe-host/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*HTTPServer)(nil)

// HTTPServer implements ServerInterface generated from the OpenAPI document.
type HTTPServer struct {
	host   interfaces.ModuleHost
	loader interfaces.RemoteLoader
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(host interfaces.ModuleHost, loader interfaces.RemoteLoader, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		host:   helpers.MustNonNil(host, "handlers.http.go: host is required"),
		loader: helpers.MustNonNil(loader, "handlers.http.go: loader is required"),
		logger: logger,
	}
}

// GetRegistry (GET /v1/registry) returns the registry merged with the client's overrides and
// the mfe_branch_* overrides of the query string.
func (h *HTTPServer) GetRegistry(ectx echo.Context, params GetRegistryParams) error {
	view, err := h.view(ectx, service.Value(params.Search))
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toRegistryResponse(view))
}

// GetOverrides (GET /v1/overrides) returns the persistent overrides of the client.
func (h *HTTPServer) GetOverrides(ectx echo.Context) error {
	set, err := h.host.Overrides(ectx.Request().Context(), clientScope(ectx))
	if err != nil {
		return fmt.Errorf("getOverrides failed to load overrides, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toOverridesResponse(set))
}

// UpsertOverride (POST /v1/overrides) stores one override and returns the full set.
// Returns 400 on parse/validation error, 500 on storage error.
func (h *HTTPServer) UpsertOverride(ectx echo.Context) error {
	var req UpsertOverrideJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	record, err := fromUpsertOverrideRequest(req)
	if err != nil {
		return fmt.Errorf("upsertOverride failed to convert request to descriptor, err: %w", err)
	}

	set, err := h.host.UpsertOverride(ectx.Request().Context(), clientScope(ectx), record)
	if err != nil {
		return fmt.Errorf("upsertOverride failed to save override, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toOverridesResponse(set))
}

// ResetOverrides (DELETE /v1/overrides) drops every persistent override of the client.
func (h *HTTPServer) ResetOverrides(ectx echo.Context) error {
	if err := h.host.ResetOverrides(ectx.Request().Context(), clientScope(ectx)); err != nil {
		return fmt.Errorf("resetOverrides failed to clear overrides, err: %w", err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// GetRoutes (GET /v1/routes) returns the routes of the client's view, optionally only
// those mounted at params.Path.
func (h *HTTPServer) GetRoutes(ectx echo.Context, params GetRoutesParams) error {
	view, err := h.view(ectx, "")
	if err != nil {
		return err
	}

	routes := service.BuildRoutes(view)
	if params.Path != nil {
		routes = service.MatchRoutes(routes, *params.Path)
	}

	return ectx.JSON(http.StatusOK, toRoutesResponse(routes, h.loader.State))
}

// GetRemote (GET /v1/remotes/{name}) returns the resolved descriptor of one module with its
// load state. Returns 404 when the module is not in the registry.
func (h *HTTPServer) GetRemote(ectx echo.Context, name string) error {
	view, err := h.view(ectx, "")
	if err != nil {
		return err
	}

	entry, ok := view.Find(name)
	if !ok {
		return service.NewEntityNotFoundError("module "+name+" is not in the registry", nil)
	}

	return ectx.JSON(http.StatusOK, toRemoteStatus(entry, h.loader.State(entry.Descriptor.URL)))
}

// MountResponse lists the modules mounted at a path.
type MountResponse struct {
	Path    string          `json:"path"`
	Modules []MountedModule `json:"modules"`
}

// MountedModule is the outcome of loading one route's module.
type MountedModule struct {
	Route  string     `json:"route"`
	Name   string     `json:"name"`
	Url    string     `json:"url"`
	Module string     `json:"module"`
	State  LoadState  `json:"state"`
	Error  *HostError `json:"error,omitempty"`
}

// Mount (GET /*) loads the module of every route matching the request path. A failing
// module is reported in its own entry and does not affect the others.
// Returns 404 when no route matches.
func (h *HTTPServer) Mount(ectx echo.Context) error {
	view, err := h.view(ectx, "")
	if err != nil {
		return err
	}

	path := ectx.Request().URL.Path
	routes := service.MatchRoutes(service.BuildRoutes(view), path)
	if len(routes) == 0 {
		return service.NewEntityNotFoundError("no module is mounted at "+path, nil)
	}

	ctx := ectx.Request().Context()
	mounted := make([]MountedModule, len(routes))
	var wg sync.WaitGroup
	for i, r := range routes {
		i, r := i, r
		wg.Add(1)
		go func() {
			defer wg.Done()
			mounted[i] = h.mount(ctx, r)
		}()
	}
	wg.Wait()

	return ectx.JSON(http.StatusOK, MountResponse{Path: path, Modules: mounted})
}

func (h *HTTPServer) mount(ctx context.Context, r domain.Route) MountedModule {
	m := MountedModule{
		Route:  r.Path,
		Name:   r.Remote.Name,
		Url:    r.Remote.URL,
		Module: r.Remote.Module,
	}

	factory, err := h.loader.Load(ctx, r.Remote)
	if err == nil {
		_, err = factory()
	}
	m.State = LoadState(h.loader.State(r.Remote.URL))
	if err != nil {
		level.Warn(h.logger).Log("msg", "Module failed to mount", "route", r.Path, "module", r.Remote.Name, "err", err)
		m.Error = toHostError(err)
	}
	return m
}

func (h *HTTPServer) view(ectx echo.Context, search string) (domain.RegistryView, error) {
	req := ectx.Request()
	view, err := h.host.View(req.Context(), clientScope(ectx), req.URL.RawQuery, search)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve registry view, err: %w", err)
	}
	return view, nil
}
