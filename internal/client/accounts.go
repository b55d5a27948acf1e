package client

import (
	"context"
	"fmt"

	"github.com/alos-no/cloudflare-client/internal/http"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// AccountsClient implements cloudflare.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{httpClient: httpClient}
}

// List implements cloudflare.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, opts *cloudflare.ListOptions) (*cloudflare.ListResponse[cloudflare.Account], error) {
	return pager[cloudflare.Account]{httpClient: c.httpClient}.ListPage(ctx, "/accounts", opts)
}

// ListAll implements cloudflare.AccountsClient.ListAll.
func (c *AccountsClient) ListAll(ctx context.Context, opts *cloudflare.ListOptions) *cloudflare.PageIterator[cloudflare.Account] {
	return cloudflare.NewPageIterator(ctx, pager[cloudflare.Account]{httpClient: c.httpClient}, "/accounts", opts)
}

// Get implements cloudflare.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*cloudflare.Account, error) {
	path, err := http.BuildPath("/accounts/%s", accountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return decodeResult[cloudflare.Account](resp)
}

// Update implements cloudflare.AccountsClient.Update.
func (c *AccountsClient) Update(ctx context.Context, accountID string, request *cloudflare.AccountUpdateRequest) (*cloudflare.Account, error) {
	path, err := http.BuildPath("/accounts/%s", accountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return decodeResult[cloudflare.Account](resp)
}
