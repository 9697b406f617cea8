package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/deno-render-mcp/internal/common"
	"github.com/bobmcallan/deno-render-mcp/internal/config"
	"github.com/bobmcallan/deno-render-mcp/internal/render"
	"github.com/bobmcallan/deno-render-mcp/internal/scaffold"
)

// registerTools registers all MCP tools on the server. Order is stable:
// tools/list always returns these two entries.
func registerTools(s *server.MCPServer, cfg *config.Config, logger *common.Logger) {
	s.AddTool(createDenoServiceTool(), handleCreateDenoService(logger))
	s.AddTool(generateRenderConfigTool(), handleGenerateRenderConfig(cfg.Render, logger))
}

// --- Tool definitions ---

func createDenoServiceTool() mcp.Tool {
	return mcp.NewTool("create_deno_service",
		mcp.WithDescription("Scaffold a new Deno web service project: an oak entrypoint (main.ts), a deno.json with start/dev/test tasks, and a README. Existing files are overwritten."),
		mcp.WithString("name", mcp.Required(),
			mcp.Description("Service name; becomes the project directory name under path")),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Parent directory to create the project in (used as given, no sanitization)")),
		mcp.WithNumber("port", mcp.DefaultNumber(scaffold.DefaultPort),
			mcp.Description("HTTP port the generated service listens on (default: 8000)")),
		mcp.WithString("description",
			mcp.Description("Short description included in the generated README")),
	)
}

func generateRenderConfigTool() mcp.Tool {
	return mcp.NewTool("generate_render_config",
		mcp.WithDescription("Generate a render.yaml deployment blueprint for a Deno web service. Writes the file only — no deploy or Render API call is performed."),
		mcp.WithString("name", mcp.Required(),
			mcp.Description("Render service name")),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Directory to write render.yaml into (used as given, no sanitization)")),
		mcp.WithObject("envVars",
			mcp.Description("Environment variables for the deployed service (string values)")),
		mcp.WithString("serviceId",
			mcp.Description("Existing Render service ID; when set, the blueprint targets an update of that service instead of a create")),
		mcp.WithString("region", mcp.Enum(render.Regions...),
			mcp.Description("Render region (default: RENDER_REGION, falling back to oregon)")),
		mcp.WithString("plan", mcp.Enum(render.Plans...),
			mcp.Description("Render plan (default: free)")),
	)
}
