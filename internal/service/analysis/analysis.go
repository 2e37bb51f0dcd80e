// Package analysis orchestrates the per-facet analyzers behind a single
// service boundary shared by the CLI and the MCP server.
package analysis

import (
	"errors"
	"fmt"

	"github.com/castellan/webscope/internal/analyzer"
	"github.com/castellan/webscope/internal/manifest"
	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

// Analysis kinds accepted by Run. Each maps to one report shape.
const (
	KindProject      = "project"
	KindStructure    = "structure"
	KindComponents   = "components"
	KindRoutes       = "routes"
	KindDependencies = "dependencies"
	KindStyles       = "styles"
	KindHooks        = "hooks"
	KindAPI          = "api"
	KindSchema       = "schema"
)

// Service orchestrates project analysis operations.
type Service struct {
	config *config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// New creates a new analysis service.
func New(opts ...Option) *Service {
	s := &Service{
		config: config.LoadOrDefault(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config exposes the effective configuration.
func (s *Service) Config() *config.Config {
	return s.config
}

// Options configures a single analysis pass.
type Options struct {
	OnProgress func()
}

// enumerate runs the scanner with the extension group for the given scope.
// An unreadable root is the only error it can return.
func (s *Service) enumerate(root, scope string) ([]scanner.FileRecord, error) {
	records, err := scanner.New(s.config).Enumerate(root, s.config.ExtensionsFor(scope))
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}
	return records, nil
}

// AnalyzeProject builds the project overview. A missing manifest degrades to
// "Unknown" metadata; a present-but-broken manifest is an error.
func (s *Service) AnalyzeProject(root string, opts Options) (*models.ProjectReport, error) {
	records, err := s.enumerate(root, "structure")
	if err != nil {
		return nil, err
	}
	m, err := manifest.LoadOrNil(root, s.config.Scan.Manifest)
	if err != nil {
		return nil, err
	}
	return analyzer.NewStructureAnalyzer(s.config).AnalyzeProject(root, records, m), nil
}

// AnalyzeStructure builds the capped flat file listing.
func (s *Service) AnalyzeStructure(root string, opts Options) (*models.StructureReport, error) {
	records, err := s.enumerate(root, "structure")
	if err != nil {
		return nil, err
	}
	return analyzer.NewStructureAnalyzer(s.config).AnalyzeStructure(root, records), nil
}

// AnalyzeComponents catalogs UI component files.
func (s *Service) AnalyzeComponents(root string, opts Options) (*models.ComponentsReport, error) {
	records, err := s.enumerate(root, "components")
	if err != nil {
		return nil, err
	}
	return analyzer.NewComponentsAnalyzer(s.config).AnalyzeProject(root, records, opts.OnProgress), nil
}

// AnalyzeRoutes extracts the routing table.
func (s *Service) AnalyzeRoutes(root string, opts Options) (*models.RoutesReport, error) {
	records, err := s.enumerate(root, "source")
	if err != nil {
		return nil, err
	}
	return analyzer.NewRoutesAnalyzer(s.config).AnalyzeProject(root, records, opts.OnProgress), nil
}

// AnalyzeDependencies classifies declared dependencies. This is the one
// operation that requires the manifest: absence is a ManifestError, not a
// degraded report.
func (s *Service) AnalyzeDependencies(root string, opts Options) (*models.DependenciesReport, error) {
	m, err := manifest.Load(root, s.config.Scan.Manifest)
	if err != nil {
		if errors.Is(err, manifest.ErrMissing) {
			return nil, &ManifestError{Root: root, Name: s.config.Scan.Manifest, Err: err}
		}
		return nil, err
	}
	return analyzer.NewDepsAnalyzer(s.config).AnalyzeManifest(root, m), nil
}

// AnalyzeStyles tallies styling-utility class usage.
func (s *Service) AnalyzeStyles(root string, opts Options) (*models.StylesReport, error) {
	records, err := s.enumerate(root, "styles")
	if err != nil {
		return nil, err
	}
	return analyzer.NewStylesAnalyzer(s.config).AnalyzeProject(root, records, opts.OnProgress), nil
}

// AnalyzeHooks tallies hook usage.
func (s *Service) AnalyzeHooks(root string, opts Options) (*models.HooksReport, error) {
	records, err := s.enumerate(root, "source")
	if err != nil {
		return nil, err
	}
	return analyzer.NewHooksAnalyzer(s.config).AnalyzeProject(root, records, opts.OnProgress), nil
}

// AnalyzeAPI extracts outbound call sites.
func (s *Service) AnalyzeAPI(root string, opts Options) (*models.APIReport, error) {
	records, err := s.enumerate(root, "source")
	if err != nil {
		return nil, err
	}
	return analyzer.NewAPIAnalyzer(s.config).AnalyzeProject(root, records, opts.OnProgress), nil
}

// AnalyzeSchema extracts database-schema declarations.
func (s *Service) AnalyzeSchema(root string, opts Options) (*models.SchemaReport, error) {
	records, err := s.enumerate(root, "schema")
	if err != nil {
		return nil, err
	}
	return analyzer.NewSchemaAnalyzer(s.config).AnalyzeProject(root, records, opts.OnProgress), nil
}

// Run dispatches by kind name, for callers that address analyses uniformly
// (resources, generic tooling). Unknown kinds are an UnknownKindError.
func (s *Service) Run(kind, root string, opts Options) (any, error) {
	switch kind {
	case KindProject:
		return s.AnalyzeProject(root, opts)
	case KindStructure:
		return s.AnalyzeStructure(root, opts)
	case KindComponents:
		return s.AnalyzeComponents(root, opts)
	case KindRoutes:
		return s.AnalyzeRoutes(root, opts)
	case KindDependencies:
		return s.AnalyzeDependencies(root, opts)
	case KindStyles:
		return s.AnalyzeStyles(root, opts)
	case KindHooks:
		return s.AnalyzeHooks(root, opts)
	case KindAPI:
		return s.AnalyzeAPI(root, opts)
	case KindSchema:
		return s.AnalyzeSchema(root, opts)
	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

// Kinds lists every analysis kind Run accepts, in presentation order.
func Kinds() []string {
	return []string{
		KindProject,
		KindStructure,
		KindComponents,
		KindRoutes,
		KindDependencies,
		KindStyles,
		KindHooks,
		KindAPI,
		KindSchema,
	}
}

// ScanError indicates the project root could not be enumerated.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ManifestError indicates a manifest-centric operation ran against a root
// with no manifest.
type ManifestError struct {
	Root string
	Name string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("no %s found in %s", e.Name, e.Root)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// UnknownKindError indicates a dispatch by a name no analysis answers to.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown analysis kind: %s", e.Kind)
}
