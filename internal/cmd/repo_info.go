package cmd

import (
	"fmt"
	"io"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"

	"github.com/canopyhq/canopy/pkg/client"
	"github.com/canopyhq/canopy/pkg/printer"
	"github.com/canopyhq/canopy/pkg/validate"
)

var repoInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about a repository",
	Long: `Show detailed information about a single repository, addressed
either directly by ID or by name within an organization, product, and
lifecycle environment.

Examples:
  canopy repo info --id 7
  canopy repo info --name fedora --org ACME --product OS
  canopy repo info --id 7 --verbose`,
	RunE: runRepoInfo,
}

// repoInfoOptions are the parsed flags for repo info.
type repoInfoOptions struct {
	ID          string
	Name        string
	Org         string
	Environment string
	Product     string
	JSON        bool
}

// Validate enforces the repository addressing rule: an explicit --id,
// or else the full --name/--org/--product triple.
func (o *repoInfoOptions) Validate() error {
	return validate.RequireAny(
		validate.Group{{Name: "id", Value: o.ID}},
		validate.Group{
			{Name: "name", Value: o.Name},
			{Name: "org", Value: o.Org},
			{Name: "product", Value: o.Product},
		},
	)
}

var repoInfoOpts repoInfoOptions

func init() {
	repoCmd.AddCommand(repoInfoCmd)

	f := repoInfoCmd.Flags()
	f.StringVar(&repoInfoOpts.ID, "id", "", "repository ID")
	f.StringVar(&repoInfoOpts.Name, "name", "", "repository name")
	f.StringVar(&repoInfoOpts.Org, "org", "", "organization name")
	f.StringVar(&repoInfoOpts.Environment, "environment", DefaultEnvironment, "lifecycle environment name")
	f.StringVar(&repoInfoOpts.Product, "product", "", "product name")
	f.BoolVar(&repoInfoOpts.JSON, "json", false, "Output as JSON")
}

func runRepoInfo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	opts := repoInfoOpts

	if err := opts.Validate(); err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid options", err)
	}

	api, err := apiFactory()
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid client configuration", err)
	}

	var repo *client.Repo
	if opts.ID != "" {
		repo, err = api.GetRepo(ctx, opts.ID)
	} else {
		repo, err = api.ResolveRepo(ctx, opts.Org, opts.Product, opts.Name, opts.Environment)
	}
	if err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to get repository", err)
	}

	if opts.JSON {
		return outputJSON(cmd.OutOrStdout(), repo)
	}
	return printRepoInfo(cmd.OutOrStdout(), verbosity(), repo)
}

// printRepoInfo renders one repository as a labeled field block. Sync
// and source details appear only at verbose level.
func printRepoInfo(w io.Writer, level printer.Level, r *client.Repo) error {
	p := printer.New(w, level)
	p.AddColumn("id")
	p.AddColumn("name")
	p.AddColumn("label")
	p.AddColumn("org")
	p.AddColumn("product")
	p.AddColumn("environment")
	p.AddColumn("package_count")
	p.AddColumn("enabled")
	p.AddColumn("arch", printer.ShowWith(printer.VerboseOnly))
	p.AddColumn("url", printer.ShowWith(printer.VerboseOnly), printer.Label("URL"))
	p.AddColumn("last_sync", printer.ShowWith(printer.VerboseOnly), printer.Formatter(formatSyncTime))
	p.AddColumn("gpg_key_name", printer.ShowWith(printer.VerboseOnly), printer.Label("GPG key"))
	p.SetHeader(fmt.Sprintf("Information About Repo %s", r.ID))

	return p.PrintItem(repoItem(*r))
}
