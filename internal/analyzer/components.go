package analyzer

import (
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/castellan/webscope/internal/fileproc"
	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// componentMarkers are the presence-flag rules applied to every component
// file. Flags are independent; each sets one field on the fact.
var componentMarkers = struct {
	defaultExport *regexp.Regexp
	namedExport   *regexp.Regexp
	props         *regexp.Regexp
	state         *regexp.Regexp
	effect        *regexp.Regexp
	jsx           *regexp.Regexp
}{
	defaultExport: regexp.MustCompile(`\bexport\s+default\b`),
	namedExport:   regexp.MustCompile(`\bexport\s+(?:const|function|class|let|var)\s+[A-Z]`),
	props:         regexp.MustCompile(`\bprops\b|\(\s*\{[^)]*\}\s*[:)]`),
	state:         regexp.MustCompile(`\buseState\b|\buseReducer\b|\bthis\.state\b`),
	effect:        regexp.MustCompile(`\buseEffect\b|\buseLayoutEffect\b|\bcomponentDidMount\b`),
	jsx:           regexp.MustCompile(`<[A-Za-z][\w.]*(?:\s[^>]*)?/?>`),
}

// ComponentsAnalyzer catalogs UI components by presence heuristics.
type ComponentsAnalyzer struct {
	cfg *config.Config
}

// NewComponentsAnalyzer creates a components analyzer.
func NewComponentsAnalyzer(cfg *config.Config) *ComponentsAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ComponentsAnalyzer{cfg: cfg}
}

// ExtractFile derives one component descriptor from raw text. Pure and
// stateless: no cross-file state survives a call.
func (a *ComponentsAnalyzer) ExtractFile(text, relPath string) models.ComponentInfo {
	base := path.Base(relPath)
	name := strings.TrimSuffix(base, path.Ext(base))

	return models.ComponentInfo{
		Name:             name,
		File:             relPath,
		HasDefaultExport: componentMarkers.defaultExport.MatchString(text),
		HasNamedExport:   componentMarkers.namedExport.MatchString(text),
		UsesProps:        componentMarkers.props.MatchString(text),
		UsesState:        componentMarkers.state.MatchString(text),
		UsesEffect:       componentMarkers.effect.MatchString(text),
		HasJSX:           componentMarkers.jsx.MatchString(text),
	}
}

// AnalyzeProject extracts component facts from every record and aggregates
// them into the bounded catalog report.
func (a *ComponentsAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, onProgress fileproc.ProgressFunc) *models.ComponentsReport {
	texts := loadAll(root, records, a.cfg.Scan.MaxWorkers, onProgress)

	components := make([]models.ComponentInfo, 0, len(records))
	summary := models.ComponentSummary{FilesScanned: len(records)}

	for i, rec := range records {
		if !texts[i].Ok {
			continue
		}
		info := a.ExtractFile(texts[i].Value, rec.RelPath)
		components = append(components, info)

		summary.TotalComponents++
		if info.UsesState {
			summary.WithState++
		}
		if info.UsesEffect {
			summary.WithEffects++
		}
		if info.UsesProps {
			summary.WithProps++
		}
	}

	capped, truncated := capList(components, a.cfg.Limits.MaxComponents)
	summary.Truncated = truncated

	return &models.ComponentsReport{
		Root:       root,
		Components: capped,
		Summary:    summary,
		AnalyzedAt: time.Now().UTC(),
	}
}
