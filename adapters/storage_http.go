package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/service"

	"github.com/go-resty/resty/v2"
)

// StorageHTTP creates a client of the static module storage (the bucket remotes are published to):
// GET baseURL/registryPath for the registry and GET baseURL/apps/{name}/{branch}/manifest.json for
// branch builds. Requests are never retried. Panics on empty baseURL or registryPath.
//
// Called from cmd/mfehost and cmd/mferesolve; the result serves as both
// interfaces.RegistrySource and interfaces.ManifestSource.
func StorageHTTP(baseURL, registryPath string, timeout time.Duration) *storageHTTP {
	client := resty.New().
		SetTimeout(helpers.MustPositive(timeout, "adapters.storage_http.go: timeout must be positive")).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &storageHTTP{
		baseURL:      helpers.MustNonEmpty(baseURL, "adapters.storage_http.go: baseURL is required"),
		registryPath: helpers.MustNonEmpty(registryPath, "adapters.storage_http.go: registryPath is required"),
		client:       client,
	}
}

type storageHTTP struct {
	baseURL      string
	registryPath string
	client       *resty.Client
}

// FetchRegistry performs GET baseURL/registryPath. A non-2xx status or a body that is not a JSON
// array of descriptors is reported as service.ErrRegistryUnavailable.
// Entries are passed through without validation.
func (s *storageHTTP) FetchRegistry(ctx context.Context) ([]domain.ModuleDescriptor, error) {
	reqURL, err := url.JoinPath(s.baseURL, s.registryPath)
	if err != nil {
		return nil, fmt.Errorf("build registry url: %w", err)
	}

	resp, err := s.client.R().SetContext(ctx).Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", service.ErrRegistryUnavailable, resp.StatusCode())
	}

	var modules []domain.ModuleDescriptor
	if err := json.Unmarshal(resp.Body(), &modules); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrRegistryUnavailable, err)
	}
	if modules == nil {
		return nil, fmt.Errorf("%w: registry is not a list", service.ErrRegistryUnavailable)
	}
	return modules, nil
}

// FetchManifest performs GET baseURL/apps/{name}/{branch}/manifest.json.
// Any failure is reported as upstream_unavailable.
func (s *storageHTTP) FetchManifest(ctx context.Context, name, branch string) (domain.BranchManifest, error) {
	reqURL, err := s.EntryURL(name, branch, "manifest.json")
	if err != nil {
		return domain.BranchManifest{}, service.NewBadParameterError("invalid manifest location", err)
	}

	resp, err := s.client.R().SetContext(ctx).Get(reqURL)
	if err != nil {
		return domain.BranchManifest{}, service.NewUpstreamUnavailableError("manifest request failed", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return domain.BranchManifest{}, service.NewUpstreamUnavailableError(
			fmt.Sprintf("manifest of %s@%s returned %d", name, branch, resp.StatusCode()), nil)
	}

	var manifest domain.BranchManifest
	if err := json.Unmarshal(resp.Body(), &manifest); err != nil {
		return domain.BranchManifest{}, service.NewUpstreamUnavailableError("manifest is not valid JSON", err)
	}
	return manifest, nil
}

// EntryURL joins baseURL/apps/{name}/{branch}/{file}.
func (s *storageHTTP) EntryURL(name, branch, file string) (string, error) {
	return url.JoinPath(s.baseURL, "apps", name, branch, file)
}
