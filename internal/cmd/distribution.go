package cmd

import "github.com/spf13/cobra"

var distributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Distribution inspection operations",
	Long: `Distribution commands inspect installable-tree metadata (OS family,
variant, version, and media file lists) attached to repositories on the
content server.`,
}

func init() {
	rootCmd.AddCommand(distributionCmd)
}
