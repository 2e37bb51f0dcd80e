package models

import "time"

// DependencyCategory buckets a manifest dependency by its role. Every
// dependency maps to exactly one category; assignment is reproducible from
// the name alone via an ordered first-match-wins rule list.
type DependencyCategory string

const (
	CategoryFramework DependencyCategory = "framework"
	CategoryUI        DependencyCategory = "ui"
	CategoryState     DependencyCategory = "state"
	CategoryRouting   DependencyCategory = "routing"
	CategoryStyling   DependencyCategory = "styling"
	CategoryDatabase  DependencyCategory = "database"
	CategoryBuild     DependencyCategory = "build"
	CategoryTesting   DependencyCategory = "testing"
	CategoryUtility   DependencyCategory = "utility"
	CategoryOther     DependencyCategory = "other"
)

// DependencyInfo is one classified manifest dependency.
type DependencyInfo struct {
	Name     string             `json:"name"`
	Version  string             `json:"version"`
	Category DependencyCategory `json:"category"`
	Dev      bool               `json:"dev"`
}

// DependenciesReport is the aggregated dependency taxonomy.
type DependenciesReport struct {
	Root         string            `json:"root"`
	PackageName  string            `json:"package_name"`
	Dependencies []DependencyInfo  `json:"dependencies"`
	Summary      DependencySummary `json:"summary"`
	AnalyzedAt   time.Time         `json:"analyzed_at"`
}

// DependencySummary provides aggregate dependency statistics.
type DependencySummary struct {
	Total      int            `json:"total"`
	Runtime    int            `json:"runtime"`
	Dev        int            `json:"dev"`
	ByCategory map[string]int `json:"by_category"`
}

// NewDependencySummary creates an initialized summary.
func NewDependencySummary() DependencySummary {
	return DependencySummary{ByCategory: make(map[string]int)}
}

// AddDependency updates the summary with one classified dependency.
func (s *DependencySummary) AddDependency(dep DependencyInfo) {
	s.Total++
	if dep.Dev {
		s.Dev++
	} else {
		s.Runtime++
	}
	s.ByCategory[string(dep.Category)]++
}
