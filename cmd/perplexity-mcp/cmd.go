package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/habiliai/perplexity-mcp/config"
	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/habiliai/perplexity-mcp/jsonrpc"
	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/habiliai/perplexity-mcp/tool"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

type rootParams struct {
	EnvFile   string
	Transport string
	Host      string
	Port      int
}

func newRootCmd() *cobra.Command {
	params := &rootParams{}
	cmd := &cobra.Command{
		Use:           "perplexity-mcp",
		Short:         "MCP server exposing Perplexity web search as a tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := loadConfig(cmd, params)
			if err != nil {
				return err
			}

			logger := mylog.NewLogger(cfg.LogLevel, cfg.LogHandler)
			gateway, err := newGateway(cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting Perplexity MCP Server", "version", jsonrpc.ServerVersion, "transport", cfg.Transport)
			defer logger.Info("Shutting down MCP server")

			mcpServer := jsonrpc.NewMCPServer(gateway, logger)
			switch cfg.Transport {
			case config.TransportSSE:
				return serveSSE(ctx, mcpServer, cfg, logger)
			default:
				return jsonrpc.ServeStdio(ctx, mcpServer, os.Stdin, os.Stdout, logger)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&params.EnvFile, "env-file", "", "Additional .env file to load")
	cmd.Flags().StringVarP(&params.Transport, "transport", "t", "", "Transport to serve: stdio or sse (default from MCP_TRANSPORT)")
	cmd.Flags().StringVar(&params.Host, "host", "", "Host to bind the sse transport to (default from HOST)")
	cmd.Flags().IntVarP(&params.Port, "port", "p", 0, "Port to bind the sse transport to (default from PORT)")

	cmd.AddCommand(
		newSearchCmd(params),
		newToolsCmd(),
	)

	return cmd
}

// loadConfig resolves the configuration and applies explicitly set flags.
func loadConfig(cmd *cobra.Command, params *rootParams) (*config.Config, error) {
	cfg, err := config.Load(params.EnvFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Transport = params.Transport
	}
	if flags.Changed("host") {
		cfg.Host = params.Host
	}
	if flags.Changed("port") {
		cfg.Port = params.Port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newGateway(cfg *config.Config, logger *slog.Logger) (*tool.Gateway, error) {
	if !cfg.HasAPIKey() {
		logger.Warn("PERPLEXITY_API_KEY is not set. API calls will fail.")
	}

	client := perplexity.NewClient(&cfg.PerplexityConfig, logger)
	return tool.NewGateway(client, logger)
}

func serveSSE(ctx context.Context, mcpServer *server.MCPServer, cfg *config.Config, logger *slog.Logger) error {
	addr := net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port))
	handler := jsonrpc.NewHandlerWithHealth(mcpServer, "http://"+addr, logger)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to shutdown server", mylog.Err(err))
		}
	}()

	logger.Info("MCP server is running with Perplexity search tool", "transport", "sse", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}

	return nil
}
