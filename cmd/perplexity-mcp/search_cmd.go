package main

import (
	"fmt"
	"strings"

	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/habiliai/perplexity-mcp/tool"
	"github.com/spf13/cobra"
)

func newSearchCmd(root *rootParams) *cobra.Command {
	params := &struct {
		Model        string
		Focus        string
		SystemPrompt string
	}{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single perplexity_search call and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}

			logger := mylog.NewLogger(cfg.LogLevel, cfg.LogHandler)
			gateway, err := newGateway(cfg, logger)
			if err != nil {
				return err
			}

			toolArgs := map[string]any{
				"query": strings.Join(args, " "),
			}
			if params.Model != "" {
				toolArgs["model"] = params.Model
			}
			if params.Focus != "" {
				toolArgs["focus"] = params.Focus
			}
			if params.SystemPrompt != "" {
				toolArgs["system_prompt"] = params.SystemPrompt
			}

			res, err := gateway.CallTool(cmd.Context(), tool.SearchToolName, toolArgs)
			if err != nil {
				return err
			}

			for _, text := range tool.Texts(res) {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Model, "model", "m", "", "Perplexity model (sonar, sonar-pro, sonar-reasoning, sonar-reasoning-pro, sonar-deep-research)")
	cmd.Flags().StringVarP(&params.Focus, "focus", "f", "", "Comma-separated domains to focus on")
	cmd.Flags().StringVarP(&params.SystemPrompt, "system-prompt", "s", "", "System prompt sent before the query")

	return cmd
}
