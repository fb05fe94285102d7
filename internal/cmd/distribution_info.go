package cmd

import (
	"io"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"

	"github.com/canopyhq/canopy/pkg/client"
	"github.com/canopyhq/canopy/pkg/printer"
	"github.com/canopyhq/canopy/pkg/validate"
)

var distributionInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about a distribution",
	Long: `Show detailed information about a single distribution.

Unlike list, info always requires an explicit repository ID; there is
no name-based resolution fallback.

Examples:
  canopy distribution info --repo_id 7 --id ks-rh-noarch
  canopy distribution info --repo_id 7 --id ks-rh-noarch --verbose
  canopy distribution info --repo_id 7 --id ks-rh-noarch --json`,
	RunE: runDistributionInfo,
}

// distributionInfoOptions are the parsed flags for distribution info.
type distributionInfoOptions struct {
	RepoID string
	ID     string
	JSON   bool
}

// Validate requires both the repository ID and the distribution ID.
func (o *distributionInfoOptions) Validate() error {
	return validate.Require(
		validate.Field{Name: "repo_id", Value: o.RepoID},
		validate.Field{Name: "id", Value: o.ID},
	)
}

var distributionInfoOpts distributionInfoOptions

func init() {
	distributionCmd.AddCommand(distributionInfoCmd)

	f := distributionInfoCmd.Flags()
	f.StringVar(&distributionInfoOpts.RepoID, "repo_id", "", "repository ID (required)")
	f.StringVar(&distributionInfoOpts.ID, "id", "", "distribution ID eg: ks-rh-noarch (required)")
	f.BoolVar(&distributionInfoOpts.JSON, "json", false, "Output as JSON")
}

func runDistributionInfo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	opts := distributionInfoOpts

	if err := opts.Validate(); err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid options", err)
	}

	api, err := apiFactory()
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid client configuration", err)
	}

	distribution, err := api.GetDistribution(ctx, opts.RepoID, opts.ID)
	if err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to get distribution", err)
	}

	if opts.JSON {
		return outputJSON(cmd.OutOrStdout(), distribution)
	}
	return printDistributionInfo(cmd.OutOrStdout(), verbosity(), distribution)
}

// printDistributionInfo renders one distribution as a labeled field
// block. The files list appears only at verbose level, indented under
// its label.
func printDistributionInfo(w io.Writer, level printer.Level, d *client.Distribution) error {
	p := printer.New(w, level)
	p.AddColumn("id")
	p.AddColumn("description")
	p.AddColumn("family")
	p.AddColumn("variant")
	p.AddColumn("version")
	p.AddColumn("files", printer.Multiline(), printer.ShowWith(printer.VerboseOnly))
	p.SetHeader("Distribution Information")

	return p.PrintItem(distributionItem(*d))
}
