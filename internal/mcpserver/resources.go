package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/castellan/webscope/internal/service/analysis"
)

// Resource URIs. Each serves the current working directory's report as JSON.
const (
	resourceStructure  = "project://structure"
	resourcePackage    = "project://package"
	resourceComponents = "project://components"
	resourceRoutes     = "project://routes"
)

// registerResources adds the read-only project report resources.
func (s *Server) registerResources() {
	resources := []struct {
		uri         string
		name        string
		description string
		kind        string
	}{
		{resourceStructure, "structure", "Flat file listing of the project tree", analysis.KindStructure},
		{resourcePackage, "package", "Project overview: manifest metadata, file counts, framework flags", analysis.KindProject},
		{resourceComponents, "components", "UI component catalog with presence flags", analysis.KindComponents},
		{resourceRoutes, "routes", "Extracted routing table with protection flags", analysis.KindRoutes},
	}

	for _, r := range resources {
		s.server.AddResource(&mcp.Resource{
			URI:         r.uri,
			Name:        r.name,
			Description: r.description,
			MIMEType:    "application/json",
		}, makeResourceHandler(r.uri, r.kind))
	}
}

// makeResourceHandler serves one analysis kind against the current working
// directory, as indented JSON.
func makeResourceHandler(uri, kind string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		svc := analysis.New()
		result, err := svc.Run(kind, ".", analysis.Options{})
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
