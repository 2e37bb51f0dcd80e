package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
)

func TestExtractComponentMarkers(t *testing.T) {
	a := NewComponentsAnalyzer(nil)

	src := `import { useState, useEffect } from "react";

export default function Dashboard({ user }) {
  const [count, setCount] = useState(0);
  useEffect(() => { document.title = user.name; }, [user]);
  return <div className="p-4">{count}</div>;
}
`
	info := a.ExtractFile(src, "src/pages/Dashboard.tsx")

	if info.Name != "Dashboard" {
		t.Errorf("Name = %q, want Dashboard", info.Name)
	}
	if !info.HasDefaultExport {
		t.Error("expected default export flag")
	}
	if !info.UsesProps {
		t.Error("expected props flag from destructured parameter")
	}
	if !info.UsesState {
		t.Error("expected state flag from useState")
	}
	if !info.UsesEffect {
		t.Error("expected effect flag from useEffect")
	}
	if !info.HasJSX {
		t.Error("expected JSX flag")
	}
	if info.HasNamedExport {
		t.Error("did not expect named export flag")
	}
}

func TestExtractComponentNamedExport(t *testing.T) {
	a := NewComponentsAnalyzer(nil)

	info := a.ExtractFile(`export const Button = () => <button />;`, "src/Button.jsx")
	if !info.HasNamedExport {
		t.Error("expected named export flag for capitalized const")
	}

	info = a.ExtractFile(`export const helper = () => 1;`, "src/helper.jsx")
	if info.HasNamedExport {
		t.Error("lowercase export should not count as a component export")
	}
}

func TestComponentsAnalyzeProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.tsx", `export default function App() {
  const [open, setOpen] = useState(false);
  return <main />;
}`)
	writeFile(t, root, "src/Static.tsx", `export default function Static() { return <p>hi</p>; }`)

	cfg := config.DefaultConfig()
	records, err := scanner.New(cfg).Enumerate(root, cfg.ExtensionsFor("components"))
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}

	report := NewComponentsAnalyzer(cfg).AnalyzeProject(root, records, nil)
	if report.Summary.TotalComponents != 2 {
		t.Errorf("TotalComponents = %d, want 2", report.Summary.TotalComponents)
	}
	if report.Summary.WithState != 1 {
		t.Errorf("WithState = %d, want 1", report.Summary.WithState)
	}
	if report.Summary.Truncated {
		t.Error("small project should not truncate")
	}
}

func TestComponentsTruncation(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"A", "B", "C"} {
		writeFile(t, root, "src/"+name+".tsx", `export default function `+name+`() { return <div />; }`)
	}

	cfg := config.DefaultConfig()
	cfg.Limits.MaxComponents = 2
	records, err := scanner.New(cfg).Enumerate(root, cfg.ExtensionsFor("components"))
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}

	report := NewComponentsAnalyzer(cfg).AnalyzeProject(root, records, nil)
	if len(report.Components) != 2 {
		t.Errorf("expected 2 listed components, got %d", len(report.Components))
	}
	if !report.Summary.Truncated {
		t.Error("expected truncated flag")
	}
	if report.Summary.TotalComponents != 3 {
		t.Errorf("summary should count all components, got %d", report.Summary.TotalComponents)
	}
}

// writeFile creates a file under root, making parent directories as needed.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
