package analyzer

import (
	"regexp"
	"strings"
	"time"

	"github.com/castellan/webscope/internal/fileproc"
	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// schemaRule is one schema-declaration shape. The name is always the first
// submatch; SQL rules match case-insensitively.
type schemaRule struct {
	pattern *regexp.Regexp
	kind    models.SchemaArtifactKind
	// filter, when set, rejects captured names that do not look schema-related.
	filter *regexp.Regexp
}

var schemaRules = []schemaRule{
	{
		pattern: regexp.MustCompile(`(?i)\bCREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?["']?([\w.]+)["']?`),
		kind:    models.SchemaTable,
	},
	{
		pattern: regexp.MustCompile(`(?i)\bCREATE\s+POLICY\s+["']([^"']+)["']`),
		kind:    models.SchemaPolicy,
	},
	{
		pattern: regexp.MustCompile(`(?i)\bCREATE\s+(?:OR\s+REPLACE\s+)?(?:FUNCTION|PROCEDURE)\s+["']?([\w.]+)["']?`),
		kind:    models.SchemaFunction,
	},
	{
		pattern: regexp.MustCompile(`(?i)\bREFERENCES\s+["']?([\w.]+)["']?`),
		kind:    models.SchemaForeignKey,
	},
	{
		pattern: regexp.MustCompile(`\b(?:type|interface)\s+(\w+)`),
		kind:    models.SchemaTypeDecl,
		filter:  regexp.MustCompile(`(?i)table|row|insert|update|database|schema`),
	},
}

// SchemaAnalyzer extracts database-schema declarations from SQL and typed
// source files.
type SchemaAnalyzer struct {
	cfg *config.Config
}

// NewSchemaAnalyzer creates a schema analyzer.
func NewSchemaAnalyzer(cfg *config.Config) *SchemaAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &SchemaAnalyzer{cfg: cfg}
}

// preview returns the single-line matched text truncated to the configured
// bound.
func (a *SchemaAnalyzer) preview(matched string) string {
	line := strings.Join(strings.Fields(matched), " ")
	max := a.cfg.Limits.SchemaPreviewLen
	if max > 0 && len(line) > max {
		line = line[:max]
	}
	return line
}

// ExtractFile yields schema facts for one file. Rules run in order; a
// (kind, name) pair is reported once per file.
func (a *SchemaAnalyzer) ExtractFile(text, relPath string) []models.SchemaArtifact {
	seen := make(map[string]bool)
	var artifacts []models.SchemaArtifact

	for _, rule := range schemaRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if rule.filter != nil && !rule.filter.MatchString(name) {
				continue
			}
			key := string(rule.kind) + "\x00" + name
			if seen[key] {
				continue
			}
			seen[key] = true
			artifacts = append(artifacts, models.SchemaArtifact{
				Kind:      rule.kind,
				Name:      name,
				File:      relPath,
				Preview:   a.preview(m[0]),
				ContextID: contextID(relPath, string(rule.kind), name),
			})
		}
	}

	return artifacts
}

// AnalyzeProject extracts and aggregates the bounded schema report.
func (a *SchemaAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, onProgress fileproc.ProgressFunc) *models.SchemaReport {
	texts := loadAll(root, records, a.cfg.Scan.MaxWorkers, onProgress)

	var artifacts []models.SchemaArtifact
	summary := models.NewSchemaSummary()
	summary.FilesScanned = len(records)

	for i := range records {
		if !texts[i].Ok {
			continue
		}
		for _, art := range a.ExtractFile(texts[i].Value, records[i].RelPath) {
			artifacts = append(artifacts, art)
			summary.TotalArtifacts++
			summary.ByKind[string(art.Kind)]++
		}
	}

	capped, truncated := capList(artifacts, a.cfg.Limits.MaxSchemaArtifacts)
	summary.Truncated = truncated

	return &models.SchemaReport{
		Root:       root,
		Artifacts:  capped,
		Summary:    summary,
		AnalyzedAt: time.Now().UTC(),
	}
}
