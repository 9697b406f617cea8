package render

import (
	"encoding/json"
	"fmt"

	"github.com/bobmcallan/deno-render-mcp/internal/config"
	"github.com/bobmcallan/deno-render-mcp/internal/scaffold"
)

// BlueprintFileName is the file the blueprint is written to. Render expects
// this name; the content is JSON, which is valid YAML.
const BlueprintFileName = "render.yaml"

// Blueprint is the serialized deployment descriptor.
type Blueprint struct {
	Services []Service `json:"services"`
}

// Service describes one deployable web service. BuildCommand is always null
// for Deno services (no build step); ID is present only when the blueprint
// targets an existing service for update-in-place.
type Service struct {
	Type         string            `json:"type"`
	Name         string            `json:"name"`
	Env          string            `json:"env"`
	Region       string            `json:"region"`
	Plan         string            `json:"plan"`
	BuildCommand *string           `json:"buildCommand"`
	StartCommand string            `json:"startCommand"`
	EnvVars      map[string]string `json:"envVars"`
	ID           string            `json:"id,omitempty"`
}

// BuildBlueprint composes the descriptor from validated params and the
// process-wide Render settings. Precedence: explicit region > configured
// region > "oregon"; explicit plan > "free".
func BuildBlueprint(params *ConfigParams, renderCfg config.RenderConfig) Blueprint {
	region := params.Region
	if region == "" {
		region = renderCfg.DefaultRegion()
	}

	plan := params.Plan
	if plan == "" {
		plan = DefaultPlan
	}

	envVars := params.EnvVars
	if envVars == nil {
		envVars = map[string]string{}
	}

	return Blueprint{
		Services: []Service{{
			Type:         "web",
			Name:         params.Name,
			Env:          "deno",
			Region:       region,
			Plan:         plan,
			BuildCommand: nil,
			StartCommand: scaffold.StartCommand,
			EnvVars:      envVars,
			ID:           params.ServiceID,
		}},
	}
}

// Marshal serializes the blueprint to its file content.
func (b Blueprint) Marshal() (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render blueprint: %w", err)
	}
	return string(data) + "\n", nil
}
