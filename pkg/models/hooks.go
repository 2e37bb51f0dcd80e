package models

import "time"

// HookUsage is one hook name with its whole-word occurrence count across
// the scanned file set.
type HookUsage struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Custom bool   `json:"custom"`
}

// HooksReport is the aggregated hook-usage report, frequency-ranked and
// capped.
type HooksReport struct {
	Root       string      `json:"root"`
	Hooks      []HookUsage `json:"hooks"`
	Summary    HookSummary `json:"summary"`
	AnalyzedAt time.Time   `json:"analyzed_at"`
}

// HookSummary provides aggregate hook statistics.
type HookSummary struct {
	TotalCalls   int  `json:"total_calls"`
	BuiltinNames int  `json:"builtin_names"`
	CustomNames  int  `json:"custom_names"`
	FilesScanned int  `json:"files_scanned"`
	Truncated    bool `json:"truncated"`
}
