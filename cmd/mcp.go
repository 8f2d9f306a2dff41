package cmd

import (
	"github.com/spf13/cobra"
	"github.com/statscard/statscard/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Statscard MCP server",
	Long:  `Launch an MCP server that allows AI agents to query GitHub statistics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal summary output when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		defer func() { _ = historyStore.Close() }()
		return mcp.StartMCPServer(rootCtx, cfg, ingestor, historyStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
