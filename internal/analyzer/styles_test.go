package analyzer

import (
	"reflect"
	"testing"

	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

func TestExtractClassTokens(t *testing.T) {
	a := NewStylesAnalyzer(nil)

	tokens := a.ExtractFile(`<div className="flex p-4 md:p-8">`, "src/App.tsx")
	want := []string{"flex", "p-4", "md:p-8"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestExtractClassSkipsInterpolation(t *testing.T) {
	a := NewStylesAnalyzer(nil)

	tokens := a.ExtractFile("<div className=`flex ${active} p-2`>", "src/App.tsx")
	want := []string{"flex", "p-2"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestBuckets(t *testing.T) {
	tests := []struct {
		token string
		want  []string
	}{
		{"flex", []string{models.BucketLayout}},
		{"bg-blue-500", []string{models.BucketColor}},
		{"font-bold", []string{models.BucketTypography}},
		{"md:p-8", []string{models.BucketResponsive, models.BucketLayout}},
		{"lg:text-white", []string{models.BucketResponsive, models.BucketColor}},
		{"cursor-pointer", nil},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Buckets(tt.token); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Buckets(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestStylesAnalyzeProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/A.tsx", `<div className="flex p-4"><span className="flex" /></div>`)
	writeFile(t, root, "src/B.tsx", `<div className="flex md:p-8" />`)

	cfg := config.DefaultConfig()
	records, err := scanner.New(cfg).Enumerate(root, cfg.ExtensionsFor("styles"))
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}

	report := NewStylesAnalyzer(cfg).AnalyzeProject(root, records, nil)

	if report.Summary.UniqueClasses != 3 {
		t.Errorf("UniqueClasses = %d, want 3", report.Summary.UniqueClasses)
	}
	if report.Summary.TotalOccurrences != 4 {
		t.Errorf("TotalOccurrences = %d, want 4", report.Summary.TotalOccurrences)
	}
	if len(report.TopClasses) == 0 || report.TopClasses[0].Name != "flex" || report.TopClasses[0].Count != 3 {
		t.Errorf("expected flex=3 ranked first, got %+v", report.TopClasses)
	}
	if len(report.Buckets[models.BucketResponsive]) != 1 {
		t.Errorf("expected 1 responsive class, got %d", len(report.Buckets[models.BucketResponsive]))
	}
}
