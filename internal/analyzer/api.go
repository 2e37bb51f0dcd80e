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

var (
	// fetch("...") and fetch(`...`)
	fetchCall = regexp.MustCompile("\\bfetch\\(\\s*[\"'`]([^\"'`]+)[\"'`]")
	// client.get("..."), axios.post("..."), api.delete("...")
	clientCall = regexp.MustCompile("\\b(\\w+)\\.(get|post|put|patch|delete)\\(\\s*[\"'`]([^\"'`]+)[\"'`]")
	// .from("profiles") query-builder table selection
	tableCall = regexp.MustCompile("\\.from\\(\\s*[\"'`](\\w+)[\"'`]\\s*\\)")
	// bare "/api/..." string literals not already claimed by a call shape
	endpointLit = regexp.MustCompile("[\"'`](/api/[^\"'`\\s]*)[\"'`]")
)

// APIAnalyzer extracts outbound call sites.
type APIAnalyzer struct {
	cfg *config.Config
}

// NewAPIAnalyzer creates an API call-site analyzer.
func NewAPIAnalyzer(cfg *config.Config) *APIAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &APIAnalyzer{cfg: cfg}
}

// ExtractFile yields call-site facts for one file. Shapes apply in a fixed
// order and each target string is claimed once, so a fetch("/api/x") does not
// also surface as a bare endpoint literal.
func (a *APIAnalyzer) ExtractFile(text, relPath string) []models.APICall {
	var calls []models.APICall
	claimed := make(map[string]bool)

	add := func(kind models.APICallKind, target, method string) {
		key := string(kind) + "\x00" + target
		if claimed[key] {
			return
		}
		claimed[key] = true
		calls = append(calls, models.APICall{
			Kind:      kind,
			Target:    target,
			Method:    method,
			File:      relPath,
			ContextID: contextID(relPath, target),
		})
	}

	endpointSeen := make(map[string]bool)

	for _, m := range fetchCall.FindAllStringSubmatch(text, -1) {
		add(models.APICallFetch, m[1], "")
		endpointSeen[m[1]] = true
	}
	for _, m := range clientCall.FindAllStringSubmatch(text, -1) {
		add(models.APICallClient, m[3], strings.ToUpper(m[2]))
		endpointSeen[m[3]] = true
	}
	for _, m := range tableCall.FindAllStringSubmatch(text, -1) {
		add(models.APICallTable, m[1], "")
	}
	for _, m := range endpointLit.FindAllStringSubmatch(text, -1) {
		if endpointSeen[m[1]] {
			continue
		}
		add(models.APICallEndpoint, m[1], "")
	}

	return calls
}

// AnalyzeProject extracts and aggregates the bounded call-site report.
func (a *APIAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, onProgress fileproc.ProgressFunc) *models.APIReport {
	texts := loadAll(root, records, a.cfg.Scan.MaxWorkers, onProgress)

	var calls []models.APICall
	summary := models.NewAPISummary()
	summary.FilesScanned = len(records)

	for i := range records {
		if !texts[i].Ok {
			continue
		}
		for _, c := range a.ExtractFile(texts[i].Value, records[i].RelPath) {
			calls = append(calls, c)
			summary.TotalCalls++
			summary.ByKind[string(c.Kind)]++
		}
	}

	capped, truncated := capList(calls, a.cfg.Limits.MaxAPICalls)
	summary.Truncated = truncated

	return &models.APIReport{
		Root:       root,
		Calls:      capped,
		Summary:    summary,
		AnalyzedAt: time.Now().UTC(),
	}
}
