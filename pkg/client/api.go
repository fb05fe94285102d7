package client

import "context"

// RepoAPI covers repository lookup and listing operations.
//
// Commands depend on this interface rather than *Client so tests can
// substitute mocks and assert exactly which calls were made.
type RepoAPI interface {
	// ResolveRepo finds a repository by name within an organization,
	// product, and lifecycle environment. Returns ErrNotFound (wrapped)
	// if the environment or repository does not exist.
	ResolveRepo(ctx context.Context, org, product, name, environment string) (*Repo, error)

	// GetRepo returns a repository by ID. Returns ErrNotFound (wrapped)
	// if absent.
	GetRepo(ctx context.Context, id string) (*Repo, error)

	// ListRepos returns repositories in an organization, optionally
	// narrowed by environment and product.
	ListRepos(ctx context.Context, opts ListReposOptions) ([]Repo, error)
}

// DistributionAPI covers distribution inspection operations.
type DistributionAPI interface {
	// ListDistributions returns all distributions in a repository.
	ListDistributions(ctx context.Context, repoID string) ([]Distribution, error)

	// GetDistribution returns a single distribution. Returns
	// ErrNotFound (wrapped) if absent.
	GetDistribution(ctx context.Context, repoID, distributionID string) (*Distribution, error)
}

// StatusAPI covers server health operations.
type StatusAPI interface {
	// Ping checks server reachability and returns its reported status.
	Ping(ctx context.Context) (*ServerStatus, error)
}

// ListReposOptions narrows a ListRepos call. Zero-value fields are
// omitted from the request.
type ListReposOptions struct {
	// Org is the organization name (required).
	Org string

	// Environment narrows to one lifecycle environment.
	Environment string

	// Product narrows to one product.
	Product string

	// IncludeDisabled also returns disabled repositories.
	IncludeDisabled bool
}
