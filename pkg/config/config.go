package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default output caps. Every bounded list in a report truncates at one of
// these; truncation silently caps and never errors.
const (
	DefaultMaxComponents      = 50
	DefaultMaxRoutes          = 50
	DefaultTopClasses         = 20
	DefaultTopHooks           = 20
	DefaultMaxAPICalls        = 50
	DefaultMaxSchemaArtifacts = 50
	DefaultMaxStructureFiles  = 200
	DefaultSchemaPreviewLen   = 160
)

// DefaultMaxWorkers is the parallelism ceiling for concurrent file reads.
const DefaultMaxWorkers = 8

// Config holds all configuration options for webscope.
type Config struct {
	// Scan controls file enumeration.
	Scan ScanConfig `koanf:"scan"`

	// Limits are the per-facet output truncation caps.
	Limits LimitConfig `koanf:"limits"`

	// Output settings for the CLI.
	Output OutputConfig `koanf:"output"`
}

// ScanConfig controls which files the enumerator yields.
type ScanConfig struct {
	// Extensions groups included per facet scope, e.g. "components" -> [tsx jsx].
	Extensions map[string][]string `koanf:"extensions"`

	// ExcludeDirs are directory names skipped at any depth.
	ExcludeDirs []string `koanf:"exclude_dirs"`

	// ExcludePatterns are gitignore-syntax patterns applied on top of
	// ExcludeDirs.
	ExcludePatterns []string `koanf:"exclude_patterns"`

	// Gitignore enables .gitignore exclusion when the root is in a git repo.
	Gitignore bool `koanf:"gitignore"`

	// MaxWorkers caps concurrent file reads within one analysis pass.
	MaxWorkers int `koanf:"max_workers"`

	// Manifest is the dependency manifest filename relative to the root.
	Manifest string `koanf:"manifest"`
}

// LimitConfig defines output truncation caps per facet.
type LimitConfig struct {
	MaxComponents      int `koanf:"max_components"`
	MaxRoutes          int `koanf:"max_routes"`
	TopClasses         int `koanf:"top_classes"`
	TopHooks           int `koanf:"top_hooks"`
	MaxAPICalls        int `koanf:"max_api_calls"`
	MaxSchemaArtifacts int `koanf:"max_schema_artifacts"`
	MaxStructureFiles  int `koanf:"max_structure_files"`
	SchemaPreviewLen   int `koanf:"schema_preview_len"`
}

// OutputConfig controls CLI output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown, toon
	Color  bool   `koanf:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions: map[string][]string{
				"components": {"tsx", "jsx"},
				"source":     {"tsx", "jsx", "ts", "js"},
				"styles":     {"tsx", "jsx", "ts", "js", "html", "vue", "svelte"},
				"schema":     {"sql", "ts", "tsx", "prisma"},
				"structure":  {"tsx", "jsx", "ts", "js", "css", "scss", "html", "json", "sql"},
			},
			ExcludeDirs: []string{
				"node_modules",
				".git",
				".next",
				".nuxt",
				"dist",
				"build",
				"out",
				"coverage",
				".webscope",
			},
			ExcludePatterns: []string{
				"*.min.js",
				"*.min.css",
				"*.d.ts",
			},
			Gitignore:  true,
			MaxWorkers: DefaultMaxWorkers,
			Manifest:   "package.json",
		},
		Limits: LimitConfig{
			MaxComponents:      DefaultMaxComponents,
			MaxRoutes:          DefaultMaxRoutes,
			TopClasses:         DefaultTopClasses,
			TopHooks:           DefaultTopHooks,
			MaxAPICalls:        DefaultMaxAPICalls,
			MaxSchemaArtifacts: DefaultMaxSchemaArtifacts,
			MaxStructureFiles:  DefaultMaxStructureFiles,
			SchemaPreviewLen:   DefaultSchemaPreviewLen,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load loads configuration from a file, layered over defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations or returns defaults.
func LoadOrDefault() *Config {
	names := []string{
		"webscope.toml",
		"webscope.yaml",
		"webscope.yml",
		"webscope.json",
		".webscope.toml",
		".webscope.yaml",
		".webscope.yml",
		".webscope.json",
	}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			if cfg, err := Load(name); err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}

// ExtensionsFor returns the extension group for a facet scope, falling back
// to the "source" group for unknown scopes.
func (c *Config) ExtensionsFor(scope string) []string {
	if exts, ok := c.Scan.Extensions[scope]; ok && len(exts) > 0 {
		return exts
	}
	return c.Scan.Extensions["source"]
}
