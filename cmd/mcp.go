package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the VeRForTe MCP server",
	Long:  `Launch an MCP server that allows AI agents to query board and OS compatibility data via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The protocol runs over stdio, so setup must not print there.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, store)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
