package models

// PackageManifest is the parsed dependency manifest (package.json). A nil
// manifest is a valid state: operations that can proceed without it degrade
// their output fields instead of failing.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"dev_dependencies"`
}

// Has reports whether the manifest declares name as a runtime or dev
// dependency.
func (m *PackageManifest) Has(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasPrefix reports whether any declared dependency name starts with prefix.
func (m *PackageManifest) HasPrefix(prefix string) bool {
	if m == nil {
		return false
	}
	for name := range m.Dependencies {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
	}
	for name := range m.DevDependencies {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// ErrorResult is the structured error payload returned in place of a report
// when an analysis invocation fails. No error ever escapes the invocation
// boundary in any other shape.
type ErrorResult struct {
	Error string `json:"error"`
}
