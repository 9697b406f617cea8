package scaffold

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Manifest models the generated deno.json. Kept as a struct so the file
// round-trips losslessly through encoding/json.
type Manifest struct {
	Tasks Tasks      `json:"tasks"`
	Fmt   FmtConfig  `json:"fmt"`
	Lint  LintConfig `json:"lint"`
}

// Tasks holds the named deno task invocations.
type Tasks struct {
	Start string `json:"start"`
	Dev   string `json:"dev"`
	Test  string `json:"test"`
}

// FmtConfig holds deno fmt settings.
type FmtConfig struct {
	Files   FileMatch  `json:"files"`
	Options FmtOptions `json:"options"`
}

// FmtOptions holds formatter options.
type FmtOptions struct {
	LineWidth   int `json:"lineWidth"`
	IndentWidth int `json:"indentWidth"`
}

// LintConfig holds deno lint settings.
type LintConfig struct {
	Files FileMatch `json:"files"`
	Rules LintRules `json:"rules"`
}

// LintRules holds lint rule selection.
type LintRules struct {
	Tags []string `json:"tags"`
}

// FileMatch selects the files a tool applies to.
type FileMatch struct {
	Include []string `json:"include"`
}

// StartCommand is the invocation that runs the generated entrypoint. It is
// shared with the Render blueprint's startCommand.
const StartCommand = "deno run --allow-net main.ts"

// NewManifest returns the deno.json content for a generated service.
func NewManifest() Manifest {
	return Manifest{
		Tasks: Tasks{
			Start: StartCommand,
			Dev:   "deno run --allow-net --watch main.ts",
			Test:  "deno test --allow-net",
		},
		Fmt: FmtConfig{
			Files:   FileMatch{Include: []string{"./"}},
			Options: FmtOptions{LineWidth: 100, IndentWidth: 2},
		},
		Lint: LintConfig{
			Files: FileMatch{Include: []string{"./"}},
			Rules: LintRules{Tags: []string{"recommended"}},
		},
	}
}

// mainTemplate is the oak entrypoint. The listener port is the only
// interpolated value; middleware order matters — the logger reads the
// X-Response-Time header the timing stage sets.
const mainTemplate = `import { Application, Router } from "https://deno.land/x/oak@v12.6.1/mod.ts";

const app = new Application();
const router = new Router();

// Logger
app.use(async (ctx, next) => {
  await next();
  const rt = ctx.response.headers.get("X-Response-Time");
  console.log(ctx.request.method + " " + ctx.request.url + " - " + rt);
});

// Timing
app.use(async (ctx, next) => {
  const start = Date.now();
  await next();
  const ms = Date.now() - start;
  ctx.response.headers.set("X-Response-Time", ms + "ms");
});

router.get("/", (ctx) => {
  ctx.response.body = { message: "Welcome to your new Deno service!" };
});

app.use(router.routes());
app.use(router.allowedMethods());

console.log("Server running on http://localhost:%d");
await app.listen({ port: %d });
`

// ServiceFiles renders the three project files for params. Pure and
// deterministic: identical params yield byte-identical content.
func ServiceFiles(params *CreateServiceParams) (map[string]string, error) {
	manifest, err := json.MarshalIndent(NewManifest(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render deno.json: %w", err)
	}

	return map[string]string{
		"main.ts":   fmt.Sprintf(mainTemplate, params.Port, params.Port),
		"deno.json": string(manifest) + "\n",
		"README.md": renderReadme(params),
	}, nil
}

func renderReadme(params *CreateServiceParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", params.Name)
	if params.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", params.Description)
	}
	b.WriteString("## Development\n\n")
	b.WriteString("Start the server:\n\n```sh\ndeno task start\n```\n\n")
	b.WriteString("Start with file watching:\n\n```sh\ndeno task dev\n```\n\n")
	b.WriteString("Run tests:\n\n```sh\ndeno task test\n```\n\n")
	b.WriteString("## API\n\n")
	b.WriteString("- `GET /` — returns a JSON welcome message.\n")
	return b.String()
}
