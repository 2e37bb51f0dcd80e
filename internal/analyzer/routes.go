package analyzer

import (
	"regexp"
	"time"

	"github.com/castellan/webscope/internal/fileproc"
	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// routeRule is one route-declaration shape. Rules are data, applied in
// order; each yields zero or more path literals per file.
type routeRule struct {
	pattern *regexp.Regexp
	kind    models.RouteKind
}

var routeRules = []routeRule{
	// <Route path="/x"> and <Route ... path='/x'>
	{regexp.MustCompile(`<Route[^>]*\bpath\s*=\s*["']([^"']+)["']`), models.RouteJSXElement},
	// path: "/x" object literals and path="/x" props outside Route elements
	{regexp.MustCompile(`\bpath\s*[:=]\s*["']([^"']+)["']`), models.RoutePathProp},
	// route("/x"), router.get("/x"), app.post("/x")
	{regexp.MustCompile(`\b(?:route|get|post|put|patch|delete)\(\s*["'](/[^"']*)["']`), models.RouteCall},
}

// protectedMarker flags a whole file as auth-guarded when any of these words
// appears anywhere in it, case-insensitive. File-level on purpose: the
// heuristic is coarse and kept that way so output stays comparable.
var protectedMarker = regexp.MustCompile(`(?i)\b(auth|protected|private|requiresauth|loginrequired)\b`)

// RoutesAnalyzer extracts the routing table.
type RoutesAnalyzer struct {
	cfg *config.Config
}

// NewRoutesAnalyzer creates a routes analyzer.
func NewRoutesAnalyzer(cfg *config.Config) *RoutesAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &RoutesAnalyzer{cfg: cfg}
}

// ExtractFile yields route facts for one file. Each path literal is
// reported once even when several rules match it; earlier rules win.
func (a *RoutesAnalyzer) ExtractFile(text, relPath string) []models.RouteInfo {
	fileProtected := protectedMarker.MatchString(text)

	seen := make(map[string]bool)
	var routes []models.RouteInfo

	for _, rule := range routeRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(text, -1) {
			routePath := m[1]
			if routePath == "" || seen[routePath] {
				continue
			}
			seen[routePath] = true
			routes = append(routes, models.RouteInfo{
				Path:      routePath,
				File:      relPath,
				Kind:      rule.kind,
				Protected: fileProtected,
			})
		}
	}

	return routes
}

// AnalyzeProject extracts and aggregates the bounded routing report.
func (a *RoutesAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, onProgress fileproc.ProgressFunc) *models.RoutesReport {
	texts := loadAll(root, records, a.cfg.Scan.MaxWorkers, onProgress)

	var routes []models.RouteInfo
	summary := models.RouteSummary{FilesScanned: len(records)}

	for i := range records {
		if !texts[i].Ok {
			continue
		}
		for _, r := range a.ExtractFile(texts[i].Value, records[i].RelPath) {
			routes = append(routes, r)
			summary.TotalRoutes++
			if r.Protected {
				summary.ProtectedRoutes++
			}
		}
	}

	capped, truncated := capList(routes, a.cfg.Limits.MaxRoutes)
	summary.Truncated = truncated

	return &models.RoutesReport{
		Root:       root,
		Routes:     capped,
		Summary:    summary,
		AnalyzedAt: time.Now().UTC(),
	}
}
