package models

import "time"

// RouteKind identifies which declaration shape matched a route.
type RouteKind string

const (
	RoutePathProp   RouteKind = "path_prop"   // path: "/x" or path="/x"
	RouteJSXElement RouteKind = "jsx_element" // <Route path="/x">
	RouteCall       RouteKind = "route_call"  // route("/x"), router.get("/x")
)

// RouteInfo describes one discovered route. Protected is a file-level
// heuristic: any auth marker word anywhere in the declaring file flags every
// route in that file.
type RouteInfo struct {
	Path      string    `json:"path"`
	File      string    `json:"file"`
	Kind      RouteKind `json:"kind"`
	Protected bool      `json:"protected"`
}

// RoutesReport is the aggregated routing table.
type RoutesReport struct {
	Root       string       `json:"root"`
	Routes     []RouteInfo  `json:"routes"`
	Summary    RouteSummary `json:"summary"`
	AnalyzedAt time.Time    `json:"analyzed_at"`
}

// RouteSummary provides aggregate routing statistics.
type RouteSummary struct {
	TotalRoutes     int  `json:"total_routes"`
	ProtectedRoutes int  `json:"protected_routes"`
	FilesScanned    int  `json:"files_scanned"`
	Truncated       bool `json:"truncated"`
}
