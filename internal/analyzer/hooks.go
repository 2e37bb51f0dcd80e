package analyzer

import (
	"regexp"
	"time"

	"github.com/castellan/webscope/internal/fileproc"
	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// builtinHooks is the fixed whole-word match list. Anything shaped like
// "use" + Capitalized word that is not in this list counts as a custom hook.
var builtinHooks = []string{
	"useState",
	"useEffect",
	"useContext",
	"useReducer",
	"useCallback",
	"useMemo",
	"useRef",
	"useImperativeHandle",
	"useLayoutEffect",
	"useDebugValue",
	"useDeferredValue",
	"useTransition",
	"useId",
	"useSyncExternalStore",
	"useInsertionEffect",
}

var builtinHookSet = func() map[string]bool {
	set := make(map[string]bool, len(builtinHooks))
	for _, h := range builtinHooks {
		set[h] = true
	}
	return set
}()

// hookShape matches any use-Capitalized identifier as a whole word.
var hookShape = regexp.MustCompile(`\buse[A-Z]\w*\b`)

// HooksAnalyzer tallies built-in and custom hook occurrences.
type HooksAnalyzer struct {
	cfg *config.Config
}

// NewHooksAnalyzer creates a hooks analyzer.
func NewHooksAnalyzer(cfg *config.Config) *HooksAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &HooksAnalyzer{cfg: cfg}
}

// ExtractFile yields hook-name occurrences for one file in source order.
func (a *HooksAnalyzer) ExtractFile(text, relPath string) []string {
	return hookShape.FindAllString(text, -1)
}

// AnalyzeProject tallies hook occurrences into the ranked, capped report.
func (a *HooksAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, onProgress fileproc.ProgressFunc) *models.HooksReport {
	texts := loadAll(root, records, a.cfg.Scan.MaxWorkers, onProgress)

	tally := newCounter()
	for i := range records {
		if !texts[i].Ok {
			continue
		}
		for _, name := range a.ExtractFile(texts[i].Value, records[i].RelPath) {
			tally.Add(name, 1)
		}
	}

	summary := models.HookSummary{
		TotalCalls:   tally.Total(),
		FilesScanned: len(records),
	}

	hooks := make([]models.HookUsage, 0, tally.Len())
	for _, nc := range tally.Ranked() {
		custom := !builtinHookSet[nc.Name]
		if custom {
			summary.CustomNames++
		} else {
			summary.BuiltinNames++
		}
		hooks = append(hooks, models.HookUsage{Name: nc.Name, Count: nc.Count, Custom: custom})
	}

	capped, truncated := capList(hooks, a.cfg.Limits.TopHooks)
	summary.Truncated = truncated

	return &models.HooksReport{
		Root:       root,
		Hooks:      capped,
		Summary:    summary,
		AnalyzedAt: time.Now().UTC(),
	}
}
