package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Repository inspection operations",
	Long: `Repo commands inspect repositories on the content server: their
identity, product and environment placement, package counts, and sync
state.`,
}

func init() {
	rootCmd.AddCommand(repoCmd)
}

// formatSyncTime renders a repository's last sync timestamp. Repos
// that have never synced carry a nil timestamp.
func formatSyncTime(v any) string {
	t, ok := v.(*time.Time)
	if !ok || t == nil {
		return "never"
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}
