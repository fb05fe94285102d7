package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ResolveRepo finds a repository by name within an organization,
// product, and lifecycle environment.
//
// Resolution is a two-step lookup: the environment name is resolved to
// an environment ID within the organization, then the repository is
// looked up by name within that environment and product. Either step
// missing yields ErrNotFound.
func (c *Client) ResolveRepo(ctx context.Context, org, product, name, environment string) (*Repo, error) {
	env, err := c.getEnvironment(ctx, org, environment)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("product", product)

	path := fmt.Sprintf("/environments/%s/repositories", url.PathEscape(env.ID))

	var repos []Repo
	if err := c.get(ctx, "ResolveRepo", path, query, &repos); err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, &APIError{
			Op:      "ResolveRepo",
			Path:    path,
			Message: fmt.Sprintf("repository %q not found in org %q, product %q, environment %q", name, org, product, environment),
			Err:     ErrNotFound,
		}
	}
	return &repos[0], nil
}

// getEnvironment resolves an environment name within an organization.
func (c *Client) getEnvironment(ctx context.Context, org, name string) (*Environment, error) {
	query := url.Values{}
	query.Set("name", name)

	path := fmt.Sprintf("/organizations/%s/environments", url.PathEscape(org))

	var envs []Environment
	if err := c.get(ctx, "GetEnvironment", path, query, &envs); err != nil {
		return nil, err
	}
	if len(envs) == 0 {
		return nil, &APIError{
			Op:      "GetEnvironment",
			Path:    path,
			Message: fmt.Sprintf("environment %q not found in org %q", name, org),
			Err:     ErrNotFound,
		}
	}
	return &envs[0], nil
}

// GetRepo returns a repository by ID.
func (c *Client) GetRepo(ctx context.Context, id string) (*Repo, error) {
	path := fmt.Sprintf("/repositories/%s", url.PathEscape(id))

	var repo Repo
	if err := c.get(ctx, "GetRepo", path, nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// ListRepos returns repositories in an organization, optionally
// narrowed by environment and product.
func (c *Client) ListRepos(ctx context.Context, opts ListReposOptions) ([]Repo, error) {
	query := url.Values{}
	if opts.Environment != "" {
		query.Set("environment", opts.Environment)
	}
	if opts.Product != "" {
		query.Set("product", opts.Product)
	}
	if opts.IncludeDisabled {
		query.Set("include_disabled", strconv.FormatBool(true))
	}

	path := fmt.Sprintf("/organizations/%s/repositories", url.PathEscape(opts.Org))

	var repos []Repo
	if err := c.get(ctx, "ListRepos", path, query, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}
