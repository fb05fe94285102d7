package cmd

import (
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"

	"github.com/canopyhq/canopy/pkg/client"
	"github.com/canopyhq/canopy/pkg/printer"
	"github.com/canopyhq/canopy/pkg/validate"
)

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repositories in an organization",
	Long: `List repositories in an organization, optionally narrowed by
lifecycle environment and product.

The --name flag filters results client-side with a glob pattern, so
"fedora-*" matches every repository whose name starts with "fedora-".

Examples:
  canopy repo list --org ACME
  canopy repo list --org ACME --environment Dev --product OS
  canopy repo list --org ACME --name "fedora-*"
  canopy repo list --org ACME --include_disabled --json`,
	RunE: runRepoList,
}

// repoListOptions are the parsed flags for repo list.
type repoListOptions struct {
	Org             string
	Environment     string
	Product         string
	Name            string
	IncludeDisabled bool
	JSON            bool
}

// Validate requires the organization and checks the name glob, when
// given, for pattern syntax errors up front.
func (o *repoListOptions) Validate() error {
	if err := validate.Require(validate.Field{Name: "org", Value: o.Org}); err != nil {
		return err
	}
	if o.Name != "" {
		if !doublestar.ValidatePattern(o.Name) {
			return fmt.Errorf("invalid --name pattern %q", o.Name)
		}
	}
	return nil
}

var repoListOpts repoListOptions

func init() {
	repoCmd.AddCommand(repoListCmd)

	f := repoListCmd.Flags()
	f.StringVar(&repoListOpts.Org, "org", "", "organization name (required)")
	f.StringVar(&repoListOpts.Environment, "environment", DefaultEnvironment, "lifecycle environment name")
	f.StringVar(&repoListOpts.Product, "product", "", "product name")
	f.StringVar(&repoListOpts.Name, "name", "", "glob pattern to filter repository names")
	f.BoolVar(&repoListOpts.IncludeDisabled, "include_disabled", false, "list disabled repositories as well")
	f.BoolVar(&repoListOpts.JSON, "json", false, "Output as JSON")
}

func runRepoList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	opts := repoListOpts

	if err := opts.Validate(); err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid options", err)
	}

	api, err := apiFactory()
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid client configuration", err)
	}

	repos, err := api.ListRepos(ctx, client.ListReposOptions{
		Org:             opts.Org,
		Environment:     opts.Environment,
		Product:         opts.Product,
		IncludeDisabled: opts.IncludeDisabled,
	})
	if err != nil {
		return exitError(foundry.ExitExternalServiceUnavailable, "Failed to list repositories", err)
	}

	if opts.Name != "" {
		repos = filterReposByName(repos, opts.Name)
	}

	if opts.JSON {
		return outputJSON(cmd.OutOrStdout(), repos)
	}
	return printRepoList(cmd.OutOrStdout(), verbosity(), opts, repos)
}

// filterReposByName keeps repositories whose name matches the glob
// pattern. The pattern was validated before any server call, so a
// match error cannot occur here.
func filterReposByName(repos []client.Repo, pattern string) []client.Repo {
	matched := repos[:0]
	for _, r := range repos {
		if ok, _ := doublestar.Match(pattern, r.Name); ok {
			matched = append(matched, r)
		}
	}
	return matched
}

// printRepoList renders repositories as an aligned table. Sync state
// appears only at verbose level.
func printRepoList(w io.Writer, level printer.Level, opts repoListOptions, repos []client.Repo) error {
	p := printer.New(w, level)
	p.AddColumn("id")
	p.AddColumn("name")
	p.AddColumn("label")
	p.AddColumn("package_count")
	p.AddColumn("last_sync", printer.ShowWith(printer.VerboseOnly), printer.Formatter(formatSyncTime))

	header := fmt.Sprintf("Repo List For Org %s Environment %s", opts.Org, opts.Environment)
	if opts.Product != "" {
		header += fmt.Sprintf(" Product %s", opts.Product)
	}
	p.SetHeader(header)

	items := make([]printer.Item, len(repos))
	for i, r := range repos {
		items[i] = repoItem(r)
	}
	return p.PrintItems(items)
}

// repoItem converts a repository to a printable record.
func repoItem(r client.Repo) printer.Item {
	return printer.Item{
		"id":            r.ID,
		"name":          r.Name,
		"label":         r.Label,
		"org":           r.OrgName,
		"product":       r.Product,
		"environment":   r.Environment,
		"package_count": r.PackageCount,
		"arch":          r.Arch,
		"url":           r.URL,
		"gpg_key_name":  r.GPGKeyName,
		"last_sync":     r.LastSync,
		"enabled":       r.Enabled,
	}
}
