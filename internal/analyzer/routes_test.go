package analyzer

import (
	"testing"

	"github.com/castellan/webscope/internal/scanner"
	"github.com/castellan/webscope/pkg/config"
	"github.com/castellan/webscope/pkg/models"
)

func TestExtractRouteShapes(t *testing.T) {
	a := NewRoutesAnalyzer(nil)

	tests := []struct {
		name string
		src  string
		path string
		kind models.RouteKind
	}{
		{"jsx element", `<Route path="/home" element={<Home />} />`, "/home", models.RouteJSXElement},
		{"path prop", `const routes = [{ path: "/settings", component: Settings }];`, "/settings", models.RoutePathProp},
		{"route call", `router.get("/api/users", listUsers);`, "/api/users", models.RouteCall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := a.ExtractFile(tt.src, "src/routes.tsx")
			if len(routes) != 1 {
				t.Fatalf("expected 1 route, got %d", len(routes))
			}
			if routes[0].Path != tt.path {
				t.Errorf("Path = %q, want %q", routes[0].Path, tt.path)
			}
			if routes[0].Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", routes[0].Kind, tt.kind)
			}
		})
	}
}

func TestExtractRouteDedupe(t *testing.T) {
	a := NewRoutesAnalyzer(nil)

	// The JSX element rule and the path-prop rule both match this literal.
	// The earlier rule claims it.
	routes := a.ExtractFile(`<Route path="/home" />`, "src/App.tsx")
	if len(routes) != 1 {
		t.Fatalf("expected 1 route after dedupe, got %d", len(routes))
	}
	if routes[0].Kind != models.RouteJSXElement {
		t.Errorf("earlier rule should win, got kind %q", routes[0].Kind)
	}
}

func TestRouteProtectionIsFileLevel(t *testing.T) {
	a := NewRoutesAnalyzer(nil)

	src := `import { ProtectedRoute } from "./auth";
<Route path="/admin" />
<Route path="/about" />
`
	routes := a.ExtractFile(src, "src/App.tsx")
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	for _, r := range routes {
		if !r.Protected {
			t.Errorf("route %s should inherit the file-level protection flag", r.Path)
		}
	}

	routes = a.ExtractFile(`<Route path="/public" />`, "src/Public.tsx")
	if routes[0].Protected {
		t.Error("file without auth markers should not be protected")
	}
}

func TestRouteWithEffectInSameFile(t *testing.T) {
	a := NewRoutesAnalyzer(nil)

	// A component file mixing a route declaration with hook calls still
	// yields exactly one route fact.
	src := `export default function Home() {
  useEffect(() => { track("home"); }, []);
  return <Route path="/home" element={<Landing />} />;
}`
	routes := a.ExtractFile(src, "src/Home.tsx")
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].Path != "/home" {
		t.Errorf("Path = %q, want /home", routes[0].Path)
	}
}

func TestRoutesAnalyzeProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.tsx", `<Route path="/a" /><Route path="/b" />`)
	writeFile(t, root, "src/Admin.tsx", `requiresAuth(); <Route path="/admin" />`)

	cfg := config.DefaultConfig()
	records, err := scanner.New(cfg).Enumerate(root, cfg.ExtensionsFor("source"))
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}

	report := NewRoutesAnalyzer(cfg).AnalyzeProject(root, records, nil)
	if report.Summary.TotalRoutes != 3 {
		t.Errorf("TotalRoutes = %d, want 3", report.Summary.TotalRoutes)
	}
	if report.Summary.ProtectedRoutes != 1 {
		t.Errorf("ProtectedRoutes = %d, want 1", report.Summary.ProtectedRoutes)
	}
}
