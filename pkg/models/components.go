package models

import "time"

// ComponentInfo describes one UI component file. All flags are presence
// heuristics over raw text, not parse results.
type ComponentInfo struct {
	Name             string `json:"name"`
	File             string `json:"file"`
	HasDefaultExport bool   `json:"has_default_export"`
	HasNamedExport   bool   `json:"has_named_export"`
	UsesProps        bool   `json:"uses_props"`
	UsesState        bool   `json:"uses_state"`
	UsesEffect       bool   `json:"uses_effect"`
	HasJSX           bool   `json:"has_jsx"`
}

// ComponentsReport is the aggregated component catalog.
type ComponentsReport struct {
	Root       string           `json:"root"`
	Components []ComponentInfo  `json:"components"`
	Summary    ComponentSummary `json:"summary"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}

// ComponentSummary provides aggregate component statistics.
type ComponentSummary struct {
	TotalComponents int  `json:"total_components"`
	FilesScanned    int  `json:"files_scanned"`
	WithState       int  `json:"with_state"`
	WithEffects     int  `json:"with_effects"`
	WithProps       int  `json:"with_props"`
	Truncated       bool `json:"truncated"`
}
