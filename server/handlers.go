package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/consigcody94/ts-pilot/diagnose"
	"github.com/consigcody94/ts-pilot/heuristics"
	"github.com/consigcody94/ts-pilot/inference"
	"github.com/consigcody94/ts-pilot/patterns"
)

// handleGenerateTypes handles generate_types tool calls
func (s *Server) handleGenerateTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// data may arrive as JSON text or as an already-structured value; read it
	// raw instead of forcing a string.
	data, ok := request.GetArguments()["data"]
	if !ok {
		return mcp.NewToolResultError("missing required argument: data"), nil
	}

	opts := inference.Options{
		Name:     request.GetString("name", s.cfg.Generate.DefaultName),
		Strict:   request.GetBool("strict", s.cfg.Generate.Strict),
		Readonly: request.GetBool("readonly", s.cfg.Generate.Readonly),
	}

	declaration, err := inference.Generate(data, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(declaration), nil
}

// handleFixTypeErrors handles fix_type_errors tool calls
func (s *Server) handleFixTypeErrors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("error")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(diagnose.Analyze(message).Render()), nil
}

// handleRefactorSafe handles refactor_safe tool calls
func (s *Server) handleRefactorSafe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(heuristics.RefactorReport(code)), nil
}

// handleSuggestGenerics handles suggest_generics tool calls
func (s *Server) handleSuggestGenerics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(heuristics.GenericsReport(code)), nil
}

// handleCheckStrict handles check_strict tool calls
func (s *Server) handleCheckStrict(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(heuristics.StrictReport(code)), nil
}

// handleFrameworkPatterns handles framework_patterns tool calls
func (s *Server) handleFrameworkPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	framework, err := request.RequireString("framework")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	examples, err := patterns.Lookup(framework)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(examples), nil
}
