package client

import (
	"context"
	"fmt"
	"net/url"
)

// ListDistributions returns all distributions in a repository.
func (c *Client) ListDistributions(ctx context.Context, repoID string) ([]Distribution, error) {
	path := fmt.Sprintf("/repositories/%s/distributions", url.PathEscape(repoID))

	var distributions []Distribution
	if err := c.get(ctx, "ListDistributions", path, nil, &distributions); err != nil {
		return nil, err
	}
	return distributions, nil
}

// GetDistribution returns a single distribution from a repository.
func (c *Client) GetDistribution(ctx context.Context, repoID, distributionID string) (*Distribution, error) {
	path := fmt.Sprintf("/repositories/%s/distributions/%s",
		url.PathEscape(repoID), url.PathEscape(distributionID))

	var distribution Distribution
	if err := c.get(ctx, "GetDistribution", path, nil, &distribution); err != nil {
		return nil, err
	}
	return &distribution, nil
}

// Ping checks server reachability and returns its reported status.
func (c *Client) Ping(ctx context.Context) (*ServerStatus, error) {
	var status ServerStatus
	if err := c.get(ctx, "Ping", "/ping", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
