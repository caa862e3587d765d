package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSoftwareTool defines the list_software MCP tool.
var listSoftwareTool = mcp.NewTool("list_software",
	mcp.WithDescription("List Ubuntu applications by category, with the Windows programs they replace. Pass a query to search across every category instead."),
	mcp.WithString("category",
		mcp.Description("Category id (default productivity)"),
		mcp.Enum("productivity", "development", "media", "games", "internet", "system"),
	),
	mcp.WithString("query",
		mcp.Description("Case-insensitive search over application names, descriptions and Windows equivalents"),
	),
)

// getFAQTool defines the get_faq MCP tool.
var getFAQTool = mcp.NewTool("get_faq",
	mcp.WithDescription("Get the frequently asked questions about switching to Ubuntu, or a single answer by index."),
	mcp.WithNumber("index",
		mcp.Description("Zero-based question index; omit for all questions"),
	),
)

// compareOSTool defines the compare_os MCP tool.
var compareOSTool = mcp.NewTool("compare_os",
	mcp.WithDescription("Compare Ubuntu, macOS and Windows feature by feature."),
	mcp.WithString("feature",
		mcp.Description("Only rows whose feature name contains this text"),
	),
)

// installationStepsTool defines the installation_steps MCP tool.
var installationStepsTool = mcp.NewTool("installation_steps",
	mcp.WithDescription("Get the step-by-step Ubuntu installation guide and system requirements."),
	mcp.WithBoolean("include_methods",
		mcp.Description("Also list installation methods with their pros and cons"),
	),
)

// eventCountsTool defines the event_counts MCP tool.
var eventCountsTool = mcp.NewTool("event_counts",
	mcp.WithDescription("Count site events (page views, theme toggles, app opens and closes, downloads)."),
	mcp.WithNumber("hours",
		mcp.Description("Only count events from the last N hours; omit for all time"),
	),
)
