package handlers

import (
	"strings"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"
)

// fromUpsertOverrideRequest converts UpsertOverrideRequest to domain.ModuleDescriptor.
// Returns service.BadParameterError on validation failure.
func fromUpsertOverrideRequest(req UpsertOverrideRequest) (domain.ModuleDescriptor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ModuleDescriptor{}, service.NewBadParameterError("name is required", nil)
	}
	url := strings.TrimSpace(req.Url)
	if url == "" {
		return domain.ModuleDescriptor{}, service.NewBadParameterError("url is required", nil)
	}
	module := strings.TrimSpace(req.Module)
	if module == "" {
		return domain.ModuleDescriptor{}, service.NewBadParameterError("module is required", nil)
	}
	paths, err := fromPaths(req.Paths)
	if err != nil {
		return domain.ModuleDescriptor{}, err
	}

	return domain.ModuleDescriptor{
		Name:   name,
		URL:    url,
		Module: module,
		Paths:  paths,
	}, nil
}

// fromPaths accepts a list of paths or one comma separated string.
// Entries are trimmed and empty ones dropped; at least one must remain.
func fromPaths(p UpsertOverrideRequest_Paths) ([]string, error) {
	raw, err := p.AsUpsertOverrideRequestPaths0()
	if err != nil {
		joined, strErr := p.AsUpsertOverrideRequestPaths1()
		if strErr != nil {
			return nil, service.NewBadParameterError("paths must be a list or a comma separated string", err)
		}
		raw = strings.Split(joined, ",")
	}

	paths := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			paths = append(paths, s)
		}
	}
	if len(paths) == 0 {
		return nil, service.NewBadParameterError("paths is required", nil)
	}
	return paths, nil
}
