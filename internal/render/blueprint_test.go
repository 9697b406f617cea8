package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bobmcallan/deno-render-mcp/internal/config"
)

func TestBuildBlueprint_RegionPrecedence(t *testing.T) {
	base := &ConfigParams{Name: "svc", Path: "/tmp/svc"}

	// Explicit argument wins over process default
	explicit := *base
	explicit.Region = "ohio"
	bp := BuildBlueprint(&explicit, config.RenderConfig{Region: "frankfurt"})
	if got := bp.Services[0].Region; got != "ohio" {
		t.Errorf("Expected explicit region ohio, got %s", got)
	}

	// Process default applies when no argument
	bp = BuildBlueprint(base, config.RenderConfig{Region: "frankfurt"})
	if got := bp.Services[0].Region; got != "frankfurt" {
		t.Errorf("Expected process default frankfurt, got %s", got)
	}

	// Literal fallback when neither is set
	bp = BuildBlueprint(base, config.RenderConfig{})
	if got := bp.Services[0].Region; got != "oregon" {
		t.Errorf("Expected fallback oregon, got %s", got)
	}
}

func TestBuildBlueprint_PlanDefault(t *testing.T) {
	bp := BuildBlueprint(&ConfigParams{Name: "svc", Path: "/tmp/svc"}, config.RenderConfig{})
	if got := bp.Services[0].Plan; got != "free" {
		t.Errorf("Expected default plan free, got %s", got)
	}

	bp = BuildBlueprint(&ConfigParams{Name: "svc", Path: "/tmp/svc", Plan: "team"}, config.RenderConfig{})
	if got := bp.Services[0].Plan; got != "team" {
		t.Errorf("Expected plan team, got %s", got)
	}
}

func TestBuildBlueprint_ServiceShape(t *testing.T) {
	params := &ConfigParams{
		Name:    "svc",
		Path:    "/tmp/svc",
		EnvVars: map[string]string{"API_URL": "https://example.com"},
	}
	bp := BuildBlueprint(params, config.RenderConfig{})

	svc := bp.Services[0]
	if svc.Type != "web" || svc.Env != "deno" {
		t.Errorf("Expected web/deno service, got %s/%s", svc.Type, svc.Env)
	}
	if svc.BuildCommand != nil {
		t.Errorf("Expected nil buildCommand, got %v", *svc.BuildCommand)
	}
	if svc.StartCommand != "deno run --allow-net main.ts" {
		t.Errorf("Unexpected startCommand %q", svc.StartCommand)
	}
}

func TestBlueprint_MarshalIDHandling(t *testing.T) {
	// Without serviceId there must be no id key at all
	bp := BuildBlueprint(&ConfigParams{Name: "svc", Path: "/tmp/svc"}, config.RenderConfig{})
	content, err := bp.Marshal()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(content, `"id"`) {
		t.Errorf("Expected no id field, got:\n%s", content)
	}
	if !strings.Contains(content, `"buildCommand": null`) {
		t.Errorf("Expected buildCommand null, got:\n%s", content)
	}

	// With serviceId the id is carried for update-in-place
	bp = BuildBlueprint(&ConfigParams{Name: "svc", Path: "/tmp/svc", ServiceID: "srv-123"}, config.RenderConfig{})
	content, err = bp.Marshal()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(content, `"id": "srv-123"`) {
		t.Errorf("Expected id srv-123, got:\n%s", content)
	}
}

func TestBlueprint_RoundTrip(t *testing.T) {
	params := &ConfigParams{
		Name:      "svc",
		Path:      "/tmp/svc",
		EnvVars:   map[string]string{"A": "1", "B": "2"},
		ServiceID: "srv-9",
		Region:    "singapore",
		Plan:      "pro",
	}
	content, err := BuildBlueprint(params, config.RenderConfig{}).Marshal()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded Blueprint
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		t.Fatalf("Blueprint content is not valid JSON: %v", err)
	}
	if len(decoded.Services) != 1 {
		t.Fatalf("Expected 1 service, got %d", len(decoded.Services))
	}
	svc := decoded.Services[0]
	if svc.Name != "svc" || svc.Region != "singapore" || svc.Plan != "pro" || svc.ID != "srv-9" {
		t.Errorf("Round trip lost fields: %+v", svc)
	}
	if svc.EnvVars["A"] != "1" || svc.EnvVars["B"] != "2" {
		t.Errorf("Round trip lost envVars: %v", svc.EnvVars)
	}
}
