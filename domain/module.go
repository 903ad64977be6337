package domain

// ModuleDescriptor represents one loadable remote module.
// Fields match API: name, url, module, paths.
type ModuleDescriptor struct {
	Name   string   `json:"name"`   // unique module identifier
	URL    string   `json:"url"`    // federation entry script
	Module string   `json:"module"` // exposed submodule inside the container
	Paths  []string `json:"paths"`  // route path segments the module is mounted under
}

// Clone returns a copy of d that shares no memory with it.
func (d ModuleDescriptor) Clone() ModuleDescriptor {
	out := d
	if d.Paths != nil {
		out.Paths = append([]string(nil), d.Paths...)
	}
	return out
}

// OverrideSet maps module name to the descriptor that replaces the published one.
type OverrideSet map[string]ModuleDescriptor

// Clone returns a deep copy of s. A nil set clones to an empty one.
func (s OverrideSet) Clone() OverrideSet {
	out := make(OverrideSet, len(s))
	for name, d := range s {
		out[name] = d.Clone()
	}
	return out
}

// Source tells where a registry entry came from.
type Source string

const (
	SourceBase       Source = "base"
	SourcePersistent Source = "persistent"
	SourceQuery      Source = "query"
)

// RegistryEntry is one module of a RegistryView.
type RegistryEntry struct {
	Descriptor ModuleDescriptor
	Overridden bool
	Source     Source
}

// RegistryView is the merged registry, ordered like the base registry.
type RegistryView []RegistryEntry

// Descriptors returns the descriptors of the view in order.
func (v RegistryView) Descriptors() []ModuleDescriptor {
	out := make([]ModuleDescriptor, 0, len(v))
	for _, e := range v {
		out = append(out, e.Descriptor)
	}
	return out
}

// Find returns the entry named name.
func (v RegistryView) Find(name string) (RegistryEntry, bool) {
	for _, e := range v {
		if e.Descriptor.Name == name {
			return e, true
		}
	}
	return RegistryEntry{}, false
}

// Route binds a mount path to the module served under it.
type Route struct {
	Path   string
	Remote ModuleDescriptor
}
