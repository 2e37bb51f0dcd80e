package models

import "time"

// APICallKind identifies which of the four call shapes matched.
type APICallKind string

const (
	APICallFetch    APICallKind = "fetch"    // fetch("...")
	APICallClient   APICallKind = "client"   // client.get("..."), axios.post("...")
	APICallTable    APICallKind = "table"    // .from("table") query builders
	APICallEndpoint APICallKind = "endpoint" // bare "/api/..." path literal
)

// APICall is one outbound call site.
type APICall struct {
	Kind   APICallKind `json:"kind"`
	Target string      `json:"target"`
	Method string      `json:"method,omitempty"`
	File   string      `json:"file"`
	// ContextID is a short stable hash of (file, target) for traceability
	// across runs.
	ContextID string `json:"context_id,omitempty"`
}

// APIReport is the aggregated API call-site report, capped to a fixed
// sample size.
type APIReport struct {
	Root       string     `json:"root"`
	Calls      []APICall  `json:"calls"`
	Summary    APISummary `json:"summary"`
	AnalyzedAt time.Time  `json:"analyzed_at"`
}

// APISummary provides aggregate call-site statistics.
type APISummary struct {
	TotalCalls   int            `json:"total_calls"`
	ByKind       map[string]int `json:"by_kind"`
	FilesScanned int            `json:"files_scanned"`
	Truncated    bool           `json:"truncated"`
}

// NewAPISummary creates an initialized summary.
func NewAPISummary() APISummary {
	return APISummary{ByKind: make(map[string]int)}
}
