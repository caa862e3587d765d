package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the site content as tools, so
// an assistant can answer "switching to Ubuntu" questions from the same
// tables the pages render.
type Server struct {
	catalog *content.Catalog
	events  *analytics.Store
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server. events may be nil, in which case
// the event_counts tool is not offered.
func NewServer(catalog *content.Catalog, events *analytics.Store) *Server {
	s := &Server{
		catalog: catalog,
		events:  events,
	}

	s.mcp = server.NewMCPServer(
		"switchubuntu",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSoftwareTool, s.handleListSoftware)
	s.mcp.AddTool(getFAQTool, s.handleGetFAQ)
	s.mcp.AddTool(compareOSTool, s.handleCompareOS)
	s.mcp.AddTool(installationStepsTool, s.handleInstallationSteps)
	if s.events != nil {
		s.mcp.AddTool(eventCountsTool, s.handleEventCounts)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
