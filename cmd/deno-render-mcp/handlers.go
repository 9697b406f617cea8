package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/deno-render-mcp/internal/common"
	"github.com/bobmcallan/deno-render-mcp/internal/config"
	"github.com/bobmcallan/deno-render-mcp/internal/render"
	"github.com/bobmcallan/deno-render-mcp/internal/scaffold"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// resolveTarget makes the destination path absolute when possible so success
// messages name the real location. The joined path is used as given — no
// traversal sanitization.
func resolveTarget(elem ...string) string {
	target := filepath.Join(elem...)
	if abs, err := filepath.Abs(target); err == nil {
		return abs
	}
	return target
}

// --- Handlers ---
//
// Error channels are deliberate: a validation failure is returned as a Go
// error so the transport raises a protocol-level invalid-params failure,
// while a runtime failure (chiefly I/O) becomes an IsError tool result with
// a readable message. Callers branch on the difference.

func handleCreateDenoService(logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		params, err := scaffold.ParseCreateServiceParams(request.GetArguments())
		if err != nil {
			log.Warn().Err(err).Msg("create_deno_service rejected")
			return nil, err
		}

		files, err := scaffold.ServiceFiles(params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error rendering service files: %v", err)), nil
		}

		target := resolveTarget(params.Path, params.Name)
		if err := scaffold.Materialize(target, files); err != nil {
			log.Warn().Err(err).Str("dir", target).Msg("create_deno_service write failed")
			return errorResult(fmt.Sprintf("Error creating service: %v", err)), nil
		}

		log.Info().Str("service", params.Name).Str("dir", target).Int("port", params.Port).
			Msg("created deno service")

		return textResult(fmt.Sprintf(
			"Created Deno service %q at %s\n\nFiles:\n- main.ts (listens on port %d)\n- deno.json\n- README.md\n\nStart it with: cd %s && deno task start",
			params.Name, target, params.Port, target)), nil
	}
}

func handleGenerateRenderConfig(renderCfg config.RenderConfig, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		params, err := render.ParseConfigParams(request.GetArguments())
		if err != nil {
			log.Warn().Err(err).Msg("generate_render_config rejected")
			return nil, err
		}

		blueprint := render.BuildBlueprint(params, renderCfg)
		content, err := blueprint.Marshal()
		if err != nil {
			return errorResult(fmt.Sprintf("Error rendering blueprint: %v", err)), nil
		}

		if err := scaffold.Materialize(params.Path, map[string]string{render.BlueprintFileName: content}); err != nil {
			log.Warn().Err(err).Str("dir", params.Path).Msg("generate_render_config write failed")
			return errorResult(fmt.Sprintf("Error writing blueprint: %v", err)), nil
		}

		target := resolveTarget(params.Path, render.BlueprintFileName)
		service := blueprint.Services[0]

		log.Info().Str("service", params.Name).Str("file", target).
			Str("region", service.Region).Str("plan", service.Plan).
			Msg("generated render blueprint")

		advisory := "Warning: no Render API key found. Set RENDER_API_KEY to link deployments to your Render account."
		if renderCfg.HasAPIKey() {
			advisory = "Render API key detected: global Render configuration is in effect."
		}

		return textResult(fmt.Sprintf(
			"Generated Render blueprint at %s (service %q, region %s, plan %s)\n%s",
			target, service.Name, service.Region, service.Plan, advisory)), nil
	}
}
