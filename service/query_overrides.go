package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/helpers"
	"github.com/farism/mfe-host/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// BranchOverridePrefix marks query keys that pin a module to a branch build: mfe_branch_<name>=<branch>.
const BranchOverridePrefix = "mfe_branch_"

var moduleNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ParseBranchOverrides extracts branch overrides from a raw query string (leading "?" allowed).
// Unprefixed keys, empty values, and names or branches that would leave the module's storage
// folder are ignored. The first value of a repeated key wins. The result is sorted by name.
func ParseBranchOverrides(rawQuery string) []domain.BranchOverride {
	// ParseQuery keeps every pair it could decode, so a malformed pair only drops itself.
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	out := make([]domain.BranchOverride, 0)
	for key, vs := range values {
		name, ok := strings.CutPrefix(key, BranchOverridePrefix)
		if !ok || !validModuleName(name) || len(vs) == 0 {
			continue
		}
		branch := strings.TrimSpace(vs[0])
		if !validBranch(branch) {
			continue
		}
		out = append(out, domain.BranchOverride{Name: name, Branch: branch})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func validModuleName(name string) bool {
	return moduleNamePattern.MatchString(name) && name != "." && name != ".."
}

// validBranch accepts slash separated branch names ("feature/x") without empty or dot segments.
func validBranch(branch string) bool {
	if branch == "" {
		return false
	}
	for _, seg := range strings.Split(branch, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}

// DescriptorFromManifest maps a branch manifest to the descriptor of that build.
// The entry script is files["<mfe.name>.js"], resolved inside the branch folder by entryURL.
func DescriptorFromManifest(m domain.BranchManifest, branch string, entryURL func(name, branch, file string) (string, error)) (domain.ModuleDescriptor, error) {
	if m.MFE.Name == "" {
		return domain.ModuleDescriptor{}, NewUpstreamUnavailableError("manifest has no mfe.name", nil)
	}
	file, ok := m.EntryFile()
	if !ok {
		return domain.ModuleDescriptor{}, NewUpstreamUnavailableError(fmt.Sprintf("manifest of %s@%s lists no %s.js", m.MFE.Name, branch, m.MFE.Name), nil)
	}
	u, err := entryURL(m.MFE.Name, branch, file)
	if err != nil {
		return domain.ModuleDescriptor{}, NewUpstreamUnavailableError("can't build entry url", err)
	}

	return domain.ModuleDescriptor{
		Name:   m.MFE.Name,
		URL:    u,
		Module: m.MFE.Module,
		Paths:  append([]string(nil), m.MFE.Paths...),
	}, nil
}

// QueryOverrideResolver turns branch overrides into descriptors by fetching each branch manifest.
type QueryOverrideResolver struct {
	manifests interfaces.ManifestSource
	cache     interfaces.Cache[domain.ModuleDescriptor]
	cacheTTL  time.Duration
	metrics   *Metrics
	logger    log.Logger
}

// NewQueryOverrideResolver creates a resolver. Resolved descriptors are cached for cacheTTL;
// a non-positive cacheTTL disables caching. Panics on nil dependencies.
func NewQueryOverrideResolver(
	manifests interfaces.ManifestSource,
	cache interfaces.Cache[domain.ModuleDescriptor],
	cacheTTL time.Duration,
	metrics *Metrics,
	logger log.Logger,
) *QueryOverrideResolver {
	return &QueryOverrideResolver{
		manifests: helpers.MustNonNil(manifests, "service.query_overrides.go: manifests is required"),
		cache:     helpers.MustNonNil(cache, "service.query_overrides.go: cache is required"),
		cacheTTL:  cacheTTL,
		metrics:   helpers.MustNonNil(metrics, "service.query_overrides.go: metrics is required"),
		logger:    log.WithPrefix(helpers.MustNonNil(logger, "service.query_overrides.go: logger is required"), "component", "QueryOverrideResolver"),
	}
}

// Resolve resolves every override concurrently. A failed override is logged and left out,
// so the module falls back to its persistent override or to the published entry.
// The set is keyed by the name the manifest declares.
func (r *QueryOverrideResolver) Resolve(ctx context.Context, overrides []domain.BranchOverride) domain.OverrideSet {
	resolved := make([]*domain.ModuleDescriptor, len(overrides))

	var wg sync.WaitGroup
	for i, o := range overrides {
		i, o := i, o
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := r.resolveOne(ctx, o)
			if err != nil {
				r.metrics.OverrideResolutions.WithLabelValues("failed").Inc()
				level.Warn(r.logger).Log("msg", "Branch override ignored", "module", o.Name, "branch", o.Branch, "err", err)
				return
			}
			resolved[i] = &d
		}()
	}
	wg.Wait()

	set := make(domain.OverrideSet, len(overrides))
	for _, d := range resolved {
		if d != nil {
			set[d.Name] = *d
		}
	}
	return set
}

func (r *QueryOverrideResolver) resolveOne(ctx context.Context, o domain.BranchOverride) (domain.ModuleDescriptor, error) {
	key := o.Name + "@" + o.Branch
	if r.cacheTTL > 0 {
		d, err := r.cache.ReadValue(ctx, key)
		if err == nil {
			r.metrics.OverrideResolutions.WithLabelValues("cached").Inc()
			return d, nil
		}
		if !IsEntityNotFoundError(err) {
			level.Debug(r.logger).Log("msg", "Manifest cache read failed", "key", key, "err", err)
		}
	}

	m, err := r.manifests.FetchManifest(ctx, o.Name, o.Branch)
	if err != nil {
		return domain.ModuleDescriptor{}, err
	}
	d, err := DescriptorFromManifest(m, o.Branch, r.manifests.EntryURL)
	if err != nil {
		return domain.ModuleDescriptor{}, err
	}
	r.metrics.OverrideResolutions.WithLabelValues("fetched").Inc()

	if r.cacheTTL > 0 {
		if err := r.cache.WriteValue(ctx, key, d, int(r.cacheTTL/time.Millisecond)); err != nil {
			level.Debug(r.logger).Log("msg", "Manifest cache write failed", "key", key, "err", err)
		}
	}
	return d, nil
}
