package domain

// BranchOverride asks for module Name to be served from build Branch.
type BranchOverride struct {
	Name   string
	Branch string
}

// ManifestModule is the "mfe" section of a per-branch manifest.
type ManifestModule struct {
	Name   string   `json:"name"`
	Module string   `json:"module"`
	Paths  []string `json:"paths"`
}

// BranchManifest is the manifest.json published for every branch build of a module.
// Files maps logical file names ("<name>.js") to their hashed relative paths.
type BranchManifest struct {
	MFE   ManifestModule    `json:"mfe"`
	Files map[string]string `json:"files"`
}

// EntryFile returns the relative path of the module's federation entry script.
func (m BranchManifest) EntryFile() (string, bool) {
	f, ok := m.Files[m.MFE.Name+".js"]
	if !ok || f == "" {
		return "", false
	}
	return f, true
}
