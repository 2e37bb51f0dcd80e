// Package manifest reads the project dependency manifest (package.json).
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/castellan/webscope/pkg/models"
)

// ErrMissing indicates the manifest file does not exist. Absence is a valid
// state: callers that can proceed without a manifest treat it as nil data,
// and only manifest-centric operations turn it into a structured error.
var ErrMissing = errors.New("manifest not found")

// manifestSchema is the shape check applied after parsing. It only pins the
// fields webscope reads; extra fields are always allowed.
const manifestSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"version": {"type": "string"},
		"dependencies": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"devDependencies": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(manifestSchema))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("manifest.json", doc); err != nil {
		panic(err)
	}
	return c.MustCompile("manifest.json")
}

// rawManifest mirrors the package.json field names.
type rawManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Load reads and parses the manifest at root/name. Returns ErrMissing when
// the file does not exist, a parse/shape error when it exists but is not a
// usable manifest.
func Load(root, name string) (*models.PackageManifest, error) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissing
		}
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if err := compiledSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	return &models.PackageManifest{
		Name:            raw.Name,
		Version:         raw.Version,
		Dependencies:    raw.Dependencies,
		DevDependencies: raw.DevDependencies,
	}, nil
}

// LoadOrNil is Load with absence mapped to (nil, nil), for operations that
// degrade instead of failing.
func LoadOrNil(root, name string) (*models.PackageManifest, error) {
	m, err := Load(root, name)
	if errors.Is(err, ErrMissing) {
		return nil, nil
	}
	return m, err
}
