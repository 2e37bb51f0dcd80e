package models

import "time"

// SchemaArtifactKind identifies the declaration shape that matched.
type SchemaArtifactKind string

const (
	SchemaTable      SchemaArtifactKind = "table"
	SchemaPolicy     SchemaArtifactKind = "policy"
	SchemaFunction   SchemaArtifactKind = "function"
	SchemaForeignKey SchemaArtifactKind = "foreign_key"
	SchemaTypeDecl   SchemaArtifactKind = "type"
)

// SchemaArtifact is one database-schema declaration. Preview is the matched
// text truncated to a bounded length.
type SchemaArtifact struct {
	Kind      SchemaArtifactKind `json:"kind"`
	Name      string             `json:"name"`
	File      string             `json:"file"`
	Preview   string             `json:"preview"`
	ContextID string             `json:"context_id,omitempty"`
}

// SchemaReport is the aggregated schema-artifact report.
type SchemaReport struct {
	Root       string           `json:"root"`
	Artifacts  []SchemaArtifact `json:"artifacts"`
	Summary    SchemaSummary    `json:"summary"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}

// SchemaSummary provides aggregate schema statistics.
type SchemaSummary struct {
	TotalArtifacts int            `json:"total_artifacts"`
	ByKind         map[string]int `json:"by_kind"`
	FilesScanned   int            `json:"files_scanned"`
	Truncated      bool           `json:"truncated"`
}

// NewSchemaSummary creates an initialized summary.
func NewSchemaSummary() SchemaSummary {
	return SchemaSummary{ByKind: make(map[string]int)}
}
