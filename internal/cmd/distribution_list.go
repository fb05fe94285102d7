package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/canopyhq/canopy/internal/observability"
	"github.com/canopyhq/canopy/pkg/client"
	"github.com/canopyhq/canopy/pkg/printer"
	"github.com/canopyhq/canopy/pkg/validate"
)

var distributionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List distributions in a repository",
	Long: `List all distributions in a repository.

The repository is addressed either directly by ID, or by name within an
organization, product, and lifecycle environment. When addressed by
name, the repository ID is resolved via the server before listing.

Examples:
  canopy distribution list --repo_id 7
  canopy distribution list --repo fedora --org ACME --product OS
  canopy distribution list --repo fedora --org ACME --product OS --environment Dev
  canopy distribution list --repo_id 7 --json`,
	RunE: runDistributionList,
}

// distributionListOptions are the parsed flags for distribution list.
type distributionListOptions struct {
	RepoID      string
	Repo        string
	Org         string
	Environment string
	Product     string
	JSON        bool
}

// Validate enforces the repository addressing rule: an explicit
// --repo_id, or else the full --repo/--org/--product triple.
func (o *distributionListOptions) Validate() error {
	return validate.RequireAny(
		validate.Group{{Name: "repo_id", Value: o.RepoID}},
		validate.Group{
			{Name: "repo", Value: o.Repo},
			{Name: "org", Value: o.Org},
			{Name: "product", Value: o.Product},
		},
	)
}

var distributionListOpts distributionListOptions

func init() {
	distributionCmd.AddCommand(distributionListCmd)

	f := distributionListCmd.Flags()
	f.StringVar(&distributionListOpts.RepoID, "repo_id", "", "repository ID")
	f.StringVar(&distributionListOpts.Repo, "repo", "", "repository name")
	f.StringVar(&distributionListOpts.Org, "org", "", "organization name")
	f.StringVar(&distributionListOpts.Environment, "environment", DefaultEnvironment, "lifecycle environment name")
	f.StringVar(&distributionListOpts.Product, "product", "", "product name")
	f.BoolVar(&distributionListOpts.JSON, "json", false, "Output as JSON")
}

func runDistributionList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	opts := distributionListOpts

	if err := opts.Validate(); err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid options", err)
	}

	api, err := apiFactory()
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid client configuration", err)
	}

	repoID, err := resolveListRepoID(ctx, api, opts)
	if err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to resolve repository", err)
	}

	distributions, err := api.ListDistributions(ctx, repoID)
	if err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to list distributions", err)
	}

	if opts.JSON {
		return outputJSON(cmd.OutOrStdout(), distributions)
	}
	return printDistributionList(cmd.OutOrStdout(), verbosity(), repoID, distributions)
}

// resolveListRepoID returns the explicit repository ID when given, and
// otherwise resolves the name-based triple via the server. An explicit
// ID never triggers a resolution call.
func resolveListRepoID(ctx context.Context, api client.RepoAPI, opts distributionListOptions) (string, error) {
	if opts.RepoID != "" {
		return opts.RepoID, nil
	}

	repo, err := api.ResolveRepo(ctx, opts.Org, opts.Product, opts.Repo, opts.Environment)
	if err != nil {
		return "", err
	}

	observability.CLILogger.Debug("Resolved repository",
		zap.String("org", opts.Org),
		zap.String("product", opts.Product),
		zap.String("repo", opts.Repo),
		zap.String("environment", opts.Environment),
		zap.String("repo_id", repo.ID))

	return repo.ID, nil
}

// printDistributionList renders distributions as an aligned table. The
// files column appears only at verbose level.
func printDistributionList(w io.Writer, level printer.Level, repoID string, distributions []client.Distribution) error {
	p := printer.New(w, level)
	p.AddColumn("id")
	p.AddColumn("description")
	p.AddColumn("files", printer.Multiline(), printer.ShowWith(printer.VerboseOnly))
	p.SetHeader(fmt.Sprintf("Distribution List For Repo %s", repoID))

	items := make([]printer.Item, len(distributions))
	for i, d := range distributions {
		items[i] = distributionItem(d)
	}
	return p.PrintItems(items)
}

// distributionItem converts a distribution to a printable record.
func distributionItem(d client.Distribution) printer.Item {
	return printer.Item{
		"id":          d.ID,
		"description": d.Description,
		"family":      d.Family,
		"variant":     d.Variant,
		"version":     d.Version,
		"files":       d.Files,
	}
}
