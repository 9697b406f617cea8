package render

import (
	"errors"
	"testing"

	"github.com/bobmcallan/deno-render-mcp/internal/args"
)

func TestParseConfigParams_Minimal(t *testing.T) {
	params, err := ParseConfigParams(map[string]any{"name": "svc", "path": "/tmp/svc"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params.Region != "" || params.Plan != "" || params.ServiceID != "" {
		t.Errorf("Expected empty optionals, got %+v", params)
	}
	if params.EnvVars != nil {
		t.Errorf("Expected nil envVars, got %v", params.EnvVars)
	}
}

func TestParseConfigParams_MissingRequired(t *testing.T) {
	for _, missing := range []string{"name", "path"} {
		raw := map[string]any{"name": "svc", "path": "/tmp/svc"}
		delete(raw, missing)

		_, err := ParseConfigParams(raw)
		var verr *args.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Expected *args.ValidationError when %s missing, got %v", missing, err)
		}
	}
}

func TestParseConfigParams_EnumMembership(t *testing.T) {
	_, err := ParseConfigParams(map[string]any{
		"name": "svc", "path": "/tmp/svc", "region": "mars",
	})
	if err == nil {
		t.Error("Expected error for out-of-enum region")
	}

	_, err = ParseConfigParams(map[string]any{
		"name": "svc", "path": "/tmp/svc", "plan": "platinum",
	})
	if err == nil {
		t.Error("Expected error for out-of-enum plan")
	}

	params, err := ParseConfigParams(map[string]any{
		"name": "svc", "path": "/tmp/svc", "region": "ohio", "plan": "team",
	})
	if err != nil {
		t.Fatalf("Unexpected error for valid enum values: %v", err)
	}
	if params.Region != "ohio" || params.Plan != "team" {
		t.Errorf("Expected ohio/team, got %s/%s", params.Region, params.Plan)
	}
}

func TestParseConfigParams_LenientOptionals(t *testing.T) {
	// Wrong primitive types on optionals are dropped, not rejected
	params, err := ParseConfigParams(map[string]any{
		"name":      "svc",
		"path":      "/tmp/svc",
		"region":    42,
		"plan":      true,
		"serviceId": 7,
		"envVars":   []any{"not", "a", "map"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params.Region != "" || params.Plan != "" || params.ServiceID != "" {
		t.Errorf("Expected mistyped optionals dropped, got %+v", params)
	}
	if params.EnvVars != nil {
		t.Errorf("Expected mistyped envVars dropped, got %v", params.EnvVars)
	}
}
