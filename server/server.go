// Package server exposes the ts-pilot engines over the Model Context
// Protocol. Transport is newline-delimited JSON-RPC 2.0 on stdio.
package server

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/consigcody94/ts-pilot/config"
	"github.com/consigcody94/ts-pilot/logger"
	"github.com/consigcody94/ts-pilot/patterns"
	"github.com/consigcody94/ts-pilot/version"
)

// Server wraps the MCP server and the engine configuration.
type Server struct {
	cfg *config.Config
	mcp *server.MCPServer
}

// New creates the ts-pilot MCP server and registers its tools.
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	// WithRecovery converts handler panics into structured internal errors so
	// a single bad request can never take the loop down.
	s.mcp = server.NewMCPServer(
		cfg.Server.Name,
		version.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.registerTools()
	return s
}

// registerTools registers the six ts-pilot tools with their argument schemas.
func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_types",
		mcp.WithDescription("Generate a TypeScript type declaration from a JSON value"),
		mcp.WithString("data",
			mcp.Required(),
			mcp.Description("JSON text to infer types from"),
		),
		mcp.WithString("name",
			mcp.Description("Name for the generated type (default: Generated)"),
		),
		mcp.WithBoolean("strict",
			mcp.Description("Strict inference: never[] for empty arrays, bare null (default: true)"),
		),
		mcp.WithBoolean("readonly",
			mcp.Description("Mark top-level fields readonly (default: false)"),
		),
	)
	s.mcp.AddTool(generateTool, s.handleGenerateTypes)

	fixTool := mcp.NewTool("fix_type_errors",
		mcp.WithDescription("Suggest fixes for a TypeScript compiler error message"),
		mcp.WithString("error",
			mcp.Required(),
			mcp.Description("The TypeScript error message text"),
		),
	)
	s.mcp.AddTool(fixTool, s.handleFixTypeErrors)

	refactorTool := mcp.NewTool("refactor_safe",
		mcp.WithDescription("Suggest type-safety refactorings for a TypeScript snippet"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("TypeScript source snippet"),
		),
	)
	s.mcp.AddTool(refactorTool, s.handleRefactorSafe)

	genericsTool := mcp.NewTool("suggest_generics",
		mcp.WithDescription("Identify opportunities to introduce generics in a TypeScript snippet"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("TypeScript source snippet"),
		),
	)
	s.mcp.AddTool(genericsTool, s.handleSuggestGenerics)

	strictTool := mcp.NewTool("check_strict",
		mcp.WithDescription("Check a TypeScript snippet for strict-mode compliance issues"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("TypeScript source snippet"),
		),
	)
	s.mcp.AddTool(strictTool, s.handleCheckStrict)

	patternsTool := mcp.NewTool("framework_patterns",
		mcp.WithDescription("Show typed example patterns for a frontend/backend framework"),
		mcp.WithString("framework",
			mcp.Required(),
			mcp.Description("Framework to show patterns for"),
			mcp.Enum(patterns.Frameworks()...),
		),
	)
	s.mcp.AddTool(patternsTool, s.handleFrameworkPatterns)
}

// Serve runs the dispatch loop over stdio until stdin closes.
func (s *Server) Serve(ctx context.Context) error {
	logger.Infow("ts-pilot MCP server started",
		"name", s.cfg.Server.Name,
		"version", version.Version,
	)
	return s.Run(ctx, os.Stdin, os.Stdout)
}
