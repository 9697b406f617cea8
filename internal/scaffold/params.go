// Package scaffold renders and writes the files for a new Deno web service.
package scaffold

import (
	"github.com/bobmcallan/deno-render-mcp/internal/args"
)

// DefaultPort is the HTTP port the generated service listens on when the
// invocation does not supply one.
const DefaultPort = 8000

// CreateServiceParams is the validated argument set for create_deno_service.
type CreateServiceParams struct {
	Name        string
	Path        string
	Port        int
	Description string
}

// ParseCreateServiceParams validates raw tool arguments. Required fields
// (name, path) must be non-empty strings; port and description fall back to
// defaults when absent or mistyped.
func ParseCreateServiceParams(raw map[string]any) (*CreateServiceParams, error) {
	name, err := args.String(raw, "name")
	if err != nil {
		return nil, err
	}
	path, err := args.String(raw, "path")
	if err != nil {
		return nil, err
	}

	port, ok := args.OptionalInt(raw, "port")
	if !ok {
		port = DefaultPort
	}

	return &CreateServiceParams{
		Name:        name,
		Path:        path,
		Port:        port,
		Description: args.OptionalString(raw, "description"),
	}, nil
}
