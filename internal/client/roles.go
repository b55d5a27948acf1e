package client

import (
	"context"
	"fmt"

	"github.com/alos-no/cloudflare-client/internal/http"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// RolesClient implements cloudflare.RolesClient.
type RolesClient struct {
	httpClient *http.Client
}

// NewRolesClient creates a new account roles client.
func NewRolesClient(httpClient *http.Client) *RolesClient {
	return &RolesClient{httpClient: httpClient}
}

// List implements cloudflare.RolesClient.List.
func (c *RolesClient) List(ctx context.Context, accountID string, opts *cloudflare.ListOptions) (*cloudflare.ListResponse[cloudflare.Role], error) {
	path, err := http.BuildPath("/accounts/%s/roles", accountID)
	if err != nil {
		return nil, err
	}

	return pager[cloudflare.Role]{httpClient: c.httpClient}.ListPage(ctx, path, opts)
}

// ListAll implements cloudflare.RolesClient.ListAll.
func (c *RolesClient) ListAll(ctx context.Context, accountID string, opts *cloudflare.ListOptions) *cloudflare.PageIterator[cloudflare.Role] {
	path, err := http.BuildPath("/accounts/%s/roles", accountID)
	if err != nil {
		return cloudflare.NewPageIterator(ctx, failingPager[cloudflare.Role]{err: err}, path, opts)
	}

	return cloudflare.NewPageIterator(ctx, pager[cloudflare.Role]{httpClient: c.httpClient}, path, opts)
}

// Get implements cloudflare.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, accountID, roleID string) (*cloudflare.Role, error) {
	path, err := http.BuildPath("/accounts/%s/roles/%s", accountID, roleID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting role: %w", err)
	}

	return decodeResult[cloudflare.Role](resp)
}
