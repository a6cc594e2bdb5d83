package mcp

import "github.com/mark3labs/mcp-go/mcp"

// composeRequirementTool defines the compose_requirement MCP tool.
var composeRequirementTool = mcp.NewTool("compose_requirement",
	mcp.WithDescription("Compose deployable code from a free-text business requirement. Runs the full pipeline: classification, strategy selection, generation, quality assessment, and refinement. Returns the artifacts and the quality report."),
	mcp.WithString("description",
		mcp.Required(),
		mcp.Description("The business requirement in plain language"),
	),
	mcp.WithString("industry",
		mcp.Description("Industry of the organization, if known (e.g. pharmaceutical, finance)"),
	),
	mcp.WithString("regulatory_frameworks",
		mcp.Description("Comma-separated regulatory frameworks in scope (e.g. FDA CFR Part 11, GDPR)"),
	),
)

// classifyRequirementTool defines the classify_requirement MCP tool.
var classifyRequirementTool = mcp.NewTool("classify_requirement",
	mcp.WithDescription("Classify a business requirement without generating code. Returns business intent, industry context, technical complexity, compliance needs, a confidence breakdown, and the recommended composition strategy."),
	mcp.WithString("description",
		mcp.Required(),
		mcp.Description("The business requirement in plain language"),
	),
)

// listRunsTool defines the list_runs MCP tool.
var listRunsTool = mcp.NewTool("list_runs",
	mcp.WithDescription("List past composition runs, newest first. Each entry carries the requirement, classification summary, and quality score."),
	mcp.WithString("intent",
		mcp.Description("Only return runs with this business intent"),
	),
	mcp.WithString("industry",
		mcp.Description("Only return runs classified into this industry"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of runs to return (default 20)"),
	),
)

// getRunTool defines the get_run MCP tool.
var getRunTool = mcp.NewTool("get_run",
	mcp.WithDescription("Fetch one stored composition run by ID, including its full artifacts and quality report."),
	mcp.WithString("run_id",
		mcp.Required(),
		mcp.Description("ID of the run, as returned by compose_requirement or list_runs"),
	),
)
