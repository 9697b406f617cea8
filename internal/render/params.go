// Package render builds Render deployment blueprints for Deno web services.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bobmcallan/deno-render-mcp/internal/args"
)

// Regions is the fixed set of Render regions a blueprint may target.
var Regions = []string{"oregon", "ohio", "virginia", "frankfurt", "singapore"}

// Plans is the fixed set of Render service plans.
var Plans = []string{"free", "starter", "standard", "pro", "team"}

// DefaultPlan applies when the invocation does not name a plan.
const DefaultPlan = "free"

// ConfigParams is the validated argument set for generate_render_config.
// Region and Plan are empty when not supplied; defaults apply at build time.
type ConfigParams struct {
	Name      string
	Path      string
	EnvVars   map[string]string
	ServiceID string
	Region    string
	Plan      string
}

// ParseConfigParams validates raw tool arguments. Required fields (name,
// path) must be non-empty strings. envVars and serviceId fall back to their
// defaults when absent or mistyped; region and plan, when supplied as
// strings, must be members of their enumerations.
func ParseConfigParams(raw map[string]any) (*ConfigParams, error) {
	name, err := args.String(raw, "name")
	if err != nil {
		return nil, err
	}
	path, err := args.String(raw, "path")
	if err != nil {
		return nil, err
	}

	region := args.OptionalString(raw, "region")
	if region != "" && !slices.Contains(Regions, region) {
		return nil, &args.ValidationError{
			Field:  "region",
			Reason: fmt.Sprintf("must be one of: %s", strings.Join(Regions, ", ")),
		}
	}

	plan := args.OptionalString(raw, "plan")
	if plan != "" && !slices.Contains(Plans, plan) {
		return nil, &args.ValidationError{
			Field:  "plan",
			Reason: fmt.Sprintf("must be one of: %s", strings.Join(Plans, ", ")),
		}
	}

	return &ConfigParams{
		Name:      name,
		Path:      path,
		EnvVars:   args.OptionalStringMap(raw, "envVars"),
		ServiceID: args.OptionalString(raw, "serviceId"),
		Region:    region,
		Plan:      plan,
	}, nil
}
