package jsonrpc

import (
	"context"
	"log/slog"

	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/habiliai/perplexity-mcp/tool"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "perplexity-mcp-server"
	ServerVersion = "1.0.0"
)

// NewMCPServer exposes the gateway's tools. Resources and prompts are
// advertised but always listed empty.
func NewMCPServer(gateway *tool.Gateway, logger *slog.Logger) *server.MCPServer {
	logger = logger.WithGroup("jsonrpc")

	hooks := &server.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		logger.DebugContext(ctx, "[JSON-RPC] request", slog.Any("id", id), slog.String("method", string(method)))
	})
	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcp.MCPMethod, message any, result any) {
		logger.InfoContext(ctx, "[JSON-RPC] call",
			slog.Any("id", id),
			slog.String("method", string(method)),
			slog.Bool("error", false),
		)
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.ErrorContext(ctx, "[JSON-RPC] call",
			slog.Any("id", id),
			slog.String("method", string(method)),
			slog.Bool("error", true),
			mylog.Err(err),
		)
	})

	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithHooks(hooks),
		server.WithToolHandlerMiddleware(invalidParamsAsToolError),
		server.WithRecovery(),
	)

	for _, t := range gateway.ListTools() {
		s.AddTool(t, gateway.HandleToolCall)
	}

	return s
}

// invalidParamsAsToolError returns rejected arguments as a tool result with
// isError set. Other handler errors still reach the host as INTERNAL_ERROR.
func invalidParamsAsToolError(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := next(ctx, req)
		if errors.Is(err, errors.ErrInvalidParams) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return res, err
	}
}
