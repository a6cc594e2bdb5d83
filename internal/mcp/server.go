// Package mcp exposes the composition pipeline over the Model Context
// Protocol so coding agents can classify requirements, compose code, and
// browse past runs through stdio tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/history"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes requirement-composition tools.
type Server struct {
	composer *composer.Composer
	classify *classifier.Classifier
	runs     *history.Store
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(comp *composer.Composer, classify *classifier.Classifier, runs *history.Store) *Server {
	s := &Server{
		composer: comp,
		classify: classify,
		runs:     runs,
	}

	s.mcp = server.NewMCPServer(
		"reqforge",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(composeRequirementTool, s.handleComposeRequirement)
	s.mcp.AddTool(classifyRequirementTool, s.handleClassifyRequirement)
	s.mcp.AddTool(listRunsTool, s.handleListRuns)
	s.mcp.AddTool(getRunTool, s.handleGetRun)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
