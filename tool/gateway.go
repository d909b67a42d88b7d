package tool

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	SearchToolName        = "perplexity_search"
	searchToolDescription = "Search the web using Perplexity Sonar API for real-time information"
)

type Gateway struct {
	searcher perplexity.Searcher
	logger   *slog.Logger
	tools    []mcp.Tool
}

// Tools builds the static tool catalog.
func Tools() ([]mcp.Tool, error) {
	schema, err := inputSchema()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInternal, "failed to build input schema for %s: %v", SearchToolName, err)
	}

	return []mcp.Tool{
		mcp.NewToolWithRawSchema(SearchToolName, searchToolDescription, schema),
	}, nil
}

func NewGateway(searcher perplexity.Searcher, logger *slog.Logger) (*Gateway, error) {
	tools, err := Tools()
	if err != nil {
		return nil, err
	}

	return &Gateway{
		searcher: searcher,
		logger:   logger,
		tools:    tools,
	}, nil
}

// ListTools returns the static tool catalog.
func (g *Gateway) ListTools() []mcp.Tool {
	return append([]mcp.Tool(nil), g.tools...)
}

// CallTool runs the named tool. Upstream failures are returned as errors so
// the host sees a failed call rather than an empty result.
func (g *Gateway) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	logger := g.logger.With("callId", uuid.NewString(), "tool", name)
	logger.InfoContext(ctx, "tool invocation received", "arguments", args)

	if name != SearchToolName {
		logger.WarnContext(ctx, "unknown tool requested")
		return nil, errors.Wrapf(errors.ErrUnknownTool, "%s", name)
	}

	searchArgs, err := DecodeArguments(args)
	if err != nil {
		logger.WarnContext(ctx, "failed to decode arguments", mylog.Err(err))
		return nil, err
	}
	if searchArgs.OutputFormatIgnored() {
		logger.WarnContext(ctx, "output format ignored: missing or mismatched payload", "outputFormat", searchArgs.OutputFormat)
	}

	req, err := searchArgs.SearchRequest()
	if err != nil {
		logger.WarnContext(ctx, "invalid search arguments", mylog.Err(err))
		return nil, err
	}

	logger.InfoContext(ctx, "processing search query", "query", req.Query, "model", req.EffectiveModel(), "focus", req.FocusDomains)
	res := g.searcher.Search(ctx, req)
	if res.Failed() {
		logger.ErrorContext(ctx, "Perplexity search failed", "error", res.Error)
		return nil, errors.New(res.Error)
	}

	text := FormatResult(res, req.Model)
	logger.InfoContext(ctx, "returning search result", "results", len(res.Results), "contentLength", len(text))

	return mcp.NewToolResultText(text), nil
}

// HandleToolCall adapts CallTool to the mcp-go tool handler signature.
func (g *Gateway) HandleToolCall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return g.CallTool(ctx, req.Params.Name, req.GetArguments())
}
