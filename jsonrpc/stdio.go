package jsonrpc

import (
	"context"
	"io"
	"log/slog"

	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/mark3labs/mcp-go/server"
)

// ServeStdio speaks MCP over in and out until ctx is cancelled or in is
// closed. Only protocol frames are written to out.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	logger.Info("MCP server is running with Perplexity search tool", "transport", "stdio")
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrapf(err, "stdio transport stopped")
	}

	return nil
}
