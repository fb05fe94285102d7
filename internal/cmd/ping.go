package cmd

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
)

var pingJSON bool

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check content server connectivity",
	Long: `Ping the content server and report its status and version. Useful
for verifying server URL and credentials before running other commands.

Examples:
  canopy ping
  canopy --server https://content.example.com/api ping`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
	pingCmd.Flags().BoolVar(&pingJSON, "json", false, "Output as JSON")
}

func runPing(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	api, err := apiFactory()
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid client configuration", err)
	}

	status, err := api.Ping(ctx)
	if err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Server unreachable", err)
	}

	if pingJSON {
		return outputJSON(cmd.OutOrStdout(), status)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Server status: %s (version %s)\n", status.Status, status.Version)
	return nil
}
