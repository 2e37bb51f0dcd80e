package models

import "time"

// ClassUsage is one styling class token with its occurrence count.
type ClassUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Style bucket names. A token may appear in more than one bucket; bucket
// rules are independent prefix/pattern checks.
const (
	BucketLayout     = "layout"
	BucketColor      = "color"
	BucketTypography = "typography"
	BucketResponsive = "responsive"
)

// StylesReport is the aggregated styling-utility usage report. TopClasses
// is frequency-ranked (descending count, first-encountered tie-break) and
// capped; each bucket list is capped independently.
type StylesReport struct {
	Root       string                  `json:"root"`
	TopClasses []ClassUsage            `json:"top_classes"`
	Buckets    map[string][]ClassUsage `json:"buckets"`
	Summary    StyleSummary            `json:"summary"`
	AnalyzedAt time.Time               `json:"analyzed_at"`
}

// StyleSummary provides aggregate styling statistics.
type StyleSummary struct {
	UniqueClasses    int  `json:"unique_classes"`
	TotalOccurrences int  `json:"total_occurrences"`
	FilesScanned     int  `json:"files_scanned"`
	Truncated        bool `json:"truncated"`
}
