package analyzer

import (
	"sort"
	"strings"
	"time"

	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// UnknownPackageName is reported when no manifest exists at the root.
const UnknownPackageName = "Unknown"

// StructureAnalyzer builds the project overview and the flat file listing.
type StructureAnalyzer struct {
	cfg *config.Config
}

// NewStructureAnalyzer creates a structure analyzer.
func NewStructureAnalyzer(cfg *config.Config) *StructureAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &StructureAnalyzer{cfg: cfg}
}

// frameworkFlags derives stack presence from the manifest alone. A nil
// manifest means all flags stay false.
func frameworkFlags(m *models.PackageManifest) models.FrameworkFlags {
	if m == nil {
		return models.FrameworkFlags{}
	}
	return models.FrameworkFlags{
		HasReact:      m.Has("react"),
		HasNext:       m.Has("next"),
		HasSupabase:   m.HasPrefix("@supabase/") || m.Has("supabase"),
		HasTailwind:   m.Has("tailwindcss"),
		HasTypeScript: m.Has("typescript"),
	}
}

// AnalyzeProject builds the overview report from the enumerated records and
// an optional manifest. It never reads file contents.
func (a *StructureAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, m *models.PackageManifest) *models.ProjectReport {
	byExt := make(map[string]int)
	dirSeen := make(map[string]bool)
	var dirs []string

	for _, rec := range records {
		byExt[rec.Ext]++
		if i := strings.IndexByte(rec.RelPath, '/'); i > 0 {
			dir := rec.RelPath[:i]
			if !dirSeen[dir] {
				dirSeen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}
	sort.Strings(dirs)

	report := &models.ProjectReport{
		Root:             root,
		PackageName:      UnknownPackageName,
		TotalFiles:       len(records),
		FilesByExtension: byExt,
		TopLevelDirs:     dirs,
		Frameworks:       frameworkFlags(m),
		AnalyzedAt:       time.Now().UTC(),
	}
	if m != nil {
		if m.Name != "" {
			report.PackageName = m.Name
		}
		report.PackageVersion = m.Version
	}
	return report
}

// AnalyzeStructure builds the capped flat file listing.
func (a *StructureAnalyzer) AnalyzeStructure(root string, records []scanner.FileRecord) *models.StructureReport {
	files := make([]string, 0, len(records))
	for _, rec := range records {
		files = append(files, rec.RelPath)
	}

	capped, truncated := capList(files, a.cfg.Limits.MaxStructureFiles)

	return &models.StructureReport{
		Root:       root,
		Files:      capped,
		TotalFiles: len(records),
		Truncated:  truncated,
		AnalyzedAt: time.Now().UTC(),
	}
}
