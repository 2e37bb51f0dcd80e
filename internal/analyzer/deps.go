package analyzer

import (
	"regexp"
	"sort"
	"time"

	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// depRule classifies a dependency name. Rules run in order, first match
// wins; names matching several rules resolve to the earliest. The framework
// rule pins exact package names so "react-router-dom" falls through to the
// routing rule instead of sticking on "react".
type depRule struct {
	category models.DependencyCategory
	exact    []string
	match    *regexp.Regexp
}

var depRules = []depRule{
	{
		category: models.CategoryFramework,
		exact:    []string{"react", "react-dom", "next", "vue", "nuxt", "svelte", "solid-js", "preact"},
		match:    regexp.MustCompile(`^@angular/`),
	},
	{
		category: models.CategoryUI,
		match:    regexp.MustCompile(`@mui|@chakra-ui|@radix-ui|@mantine|@headlessui|antd|bootstrap|semantic-ui|heroicons|lucide|primereact|daisyui`),
	},
	{
		category: models.CategoryState,
		match:    regexp.MustCompile(`redux|zustand|mobx|recoil|jotai|xstate|valtio|pinia|vuex`),
	},
	{
		category: models.CategoryRouting,
		match:    regexp.MustCompile(`router|routing`),
	},
	{
		category: models.CategoryStyling,
		match:    regexp.MustCompile(`tailwind|styled-components|@emotion|sass|less|postcss|stylus|css`),
	},
	{
		category: models.CategoryDatabase,
		match:    regexp.MustCompile(`supabase|firebase|prisma|drizzle|mongoose|sequelize|typeorm|knex|graphql|apollo|^pg$|mysql|sqlite|redis|mongodb`),
	},
	{
		category: models.CategoryBuild,
		match:    regexp.MustCompile(`vite|webpack|rollup|esbuild|parcel|babel|tsup|swc|turbo`),
	},
	{
		category: models.CategoryTesting,
		match:    regexp.MustCompile(`jest|vitest|mocha|chai|cypress|playwright|testing-library|enzyme|msw`),
	},
	{
		category: models.CategoryUtility,
		match:    regexp.MustCompile(`lodash|axios|date-fns|dayjs|moment|uuid|zod|yup|clsx|classnames|ramda|immer`),
	},
}

// Classify maps a dependency name to exactly one category. Total: anything
// no rule matches is CategoryOther.
func Classify(name string) models.DependencyCategory {
	for _, rule := range depRules {
		for _, exact := range rule.exact {
			if name == exact {
				return rule.category
			}
		}
		if rule.match != nil && rule.match.MatchString(name) {
			return rule.category
		}
	}
	return models.CategoryOther
}

// DepsAnalyzer builds the dependency taxonomy from a parsed manifest.
type DepsAnalyzer struct {
	cfg *config.Config
}

// NewDepsAnalyzer creates a dependency analyzer.
func NewDepsAnalyzer(cfg *config.Config) *DepsAnalyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &DepsAnalyzer{cfg: cfg}
}

// AnalyzeManifest classifies every declared dependency. Runtime deps come
// first, then dev deps, each alphabetical, so the report is reproducible.
func (a *DepsAnalyzer) AnalyzeManifest(root string, m *models.PackageManifest) *models.DependenciesReport {
	summary := models.NewDependencySummary()
	var deps []models.DependencyInfo

	appendSorted := func(source map[string]string, dev bool) {
		names := make([]string, 0, len(source))
		for name := range source {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			dep := models.DependencyInfo{
				Name:     name,
				Version:  source[name],
				Category: Classify(name),
				Dev:      dev,
			}
			deps = append(deps, dep)
			summary.AddDependency(dep)
		}
	}

	appendSorted(m.Dependencies, false)
	appendSorted(m.DevDependencies, true)

	return &models.DependenciesReport{
		Root:         root,
		PackageName:  m.Name,
		Dependencies: deps,
		Summary:      summary,
		AnalyzedAt:   time.Now().UTC(),
	}
}
