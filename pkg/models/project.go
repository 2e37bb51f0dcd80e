package models

import "time"

// FrameworkFlags are manifest-derived presence flags for the stacks the
// report consumers care about most.
type FrameworkFlags struct {
	HasReact      bool `json:"has_react"`
	HasNext       bool `json:"has_next"`
	HasSupabase   bool `json:"has_supabase"`
	HasTailwind   bool `json:"has_tailwind"`
	HasTypeScript bool `json:"has_typescript"`
}

// ProjectReport is the structure overview of a project: manifest metadata,
// file counts, and framework flags. PackageName is "Unknown" when no
// manifest exists.
type ProjectReport struct {
	Root             string         `json:"root"`
	PackageName      string         `json:"package_name"`
	PackageVersion   string         `json:"package_version,omitempty"`
	TotalFiles       int            `json:"total_files"`
	FilesByExtension map[string]int `json:"files_by_extension"`
	TopLevelDirs     []string       `json:"top_level_dirs"`
	Frameworks       FrameworkFlags `json:"frameworks"`
	AnalyzedAt       time.Time      `json:"analyzed_at"`
}

// StructureReport is the lighter file-tree listing served by the structure
// resource, capped to a fixed number of entries.
type StructureReport struct {
	Root       string    `json:"root"`
	Files      []string  `json:"files"`
	TotalFiles int       `json:"total_files"`
	Truncated  bool      `json:"truncated"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}
