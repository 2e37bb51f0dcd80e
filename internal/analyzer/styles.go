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

// classAttr matches class-attribute assignments: className="...", class='...',
// and the attribute-in-template form class="..." inside template literals.
var classAttr = regexp.MustCompile("(?:className|class)\\s*=\\s*[\"'`]([^\"'`]+)[\"'`]")

// bucketRule assigns a class token to a style bucket. Rules are independent:
// a token may land in several buckets.
type bucketRule struct {
	bucket  string
	pattern *regexp.Regexp
}

var bucketRules = []bucketRule{
	{models.BucketResponsive, regexp.MustCompile(`^(?:sm|md|lg|xl|2xl):`)},
	{models.BucketLayout, regexp.MustCompile(`^(?:sm:|md:|lg:|xl:|2xl:)?(?:flex|grid|block|inline|hidden|absolute|relative|fixed|sticky|float|w-|h-|min-|max-|p[xytrbl]?-|m[xytrbl]?-|gap-|space-|justify-|items-|content-|self-|top-|bottom-|left-|right-|inset-|z-|col-|row-|order-)`)},
	{models.BucketColor, regexp.MustCompile(`^(?:sm:|md:|lg:|xl:|2xl:)?(?:bg-|border-|ring-|fill-|stroke-|from-|via-|to-|shadow-|opacity-|text-(?:white|black|gray|slate|zinc|neutral|stone|red|orange|amber|yellow|lime|green|emerald|teal|cyan|sky|blue|indigo|violet|purple|fuchsia|pink|rose))`)},
	{models.BucketTypography, regexp.MustCompile(`^(?:sm:|md:|lg:|xl:|2xl:)?(?:text-(?:xs|sm|base|lg|xl|\dxl|left|center|right|justify)|font-|leading-|tracking-|uppercase|lowercase|capitalize|italic|underline|line-through|truncate|whitespace-|break-)`)},
}

// StylesAnalyzer tallies styling-utility class usage.
type StylesAnalyzer struct {
	cfg *config.Config
}

// NewStylesAnalyzer creates a styles analyzer.
func NewStylesAnalyzer(cfg *config.Config) *StylesAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &StylesAnalyzer{cfg: cfg}
}

// ExtractFile yields the class tokens of one file, split on whitespace, in
// source order with duplicates kept (they count).
func (a *StylesAnalyzer) ExtractFile(text, relPath string) []string {
	var tokens []string
	for _, m := range classAttr.FindAllStringSubmatch(text, -1) {
		for _, tok := range strings.Fields(m[1]) {
			// Skip template interpolation fragments, they are not class names.
			if strings.ContainsAny(tok, "${}") {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Buckets returns every bucket the token belongs to; possibly none.
func Buckets(token string) []string {
	var buckets []string
	for _, rule := range bucketRules {
		if rule.pattern.MatchString(token) {
			buckets = append(buckets, rule.bucket)
		}
	}
	return buckets
}

// AnalyzeProject tallies tokens across the file set into the ranked,
// bucketed, capped styles report.
func (a *StylesAnalyzer) AnalyzeProject(root string, records []scanner.FileRecord, onProgress fileproc.ProgressFunc) *models.StylesReport {
	texts := loadAll(root, records, a.cfg.Scan.MaxWorkers, onProgress)

	tally := newCounter()
	for i := range records {
		if !texts[i].Ok {
			continue
		}
		for _, tok := range a.ExtractFile(texts[i].Value, records[i].RelPath) {
			tally.Add(tok, 1)
		}
	}

	ranked := tally.Ranked()

	top := make([]models.ClassUsage, 0, len(ranked))
	buckets := map[string][]models.ClassUsage{
		models.BucketLayout:     {},
		models.BucketColor:      {},
		models.BucketTypography: {},
		models.BucketResponsive: {},
	}
	for _, nc := range ranked {
		usage := models.ClassUsage{Name: nc.Name, Count: nc.Count}
		top = append(top, usage)
		for _, b := range Buckets(nc.Name) {
			buckets[b] = append(buckets[b], usage)
		}
	}

	capped, truncated := capList(top, a.cfg.Limits.TopClasses)
	for b := range buckets {
		buckets[b], _ = capList(buckets[b], a.cfg.Limits.TopClasses)
	}

	return &models.StylesReport{
		Root:       root,
		TopClasses: capped,
		Buckets:    buckets,
		Summary: models.StyleSummary{
			UniqueClasses:    tally.Len(),
			TotalOccurrences: tally.Total(),
			FilesScanned:     len(records),
			Truncated:        truncated,
		},
		AnalyzedAt: time.Now().UTC(),
	}
}
