package service

import "github.com/farism/mfe-host/domain"

// Merge combines the published registry with the persistent and query overrides of one client.
// Precedence is query > persistent > base. The result keeps base order; overrides naming a
// module that is not published are ignored. Merge never mutates its inputs.
func Merge(base []domain.ModuleDescriptor, persistent, query domain.OverrideSet) domain.RegistryView {
	view := make(domain.RegistryView, 0, len(base))
	for _, entry := range base {
		if q, ok := query[entry.Name]; ok {
			view = append(view, domain.RegistryEntry{Descriptor: q.Clone(), Overridden: true, Source: domain.SourceQuery})
			continue
		}
		if p, ok := persistent[entry.Name]; ok {
			view = append(view, domain.RegistryEntry{Descriptor: p.Clone(), Overridden: true, Source: domain.SourcePersistent})
			continue
		}
		view = append(view, domain.RegistryEntry{Descriptor: entry.Clone(), Source: domain.SourceBase})
	}
	return view
}
