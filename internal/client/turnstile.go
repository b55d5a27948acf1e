package client

import (
	"context"
	"fmt"

	"github.com/alos-no/cloudflare-client/internal/http"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// TurnstileClient implements cloudflare.TurnstileClient.
type TurnstileClient struct {
	httpClient *http.Client
}

// NewTurnstileClient creates a new Turnstile widgets client.
func NewTurnstileClient(httpClient *http.Client) *TurnstileClient {
	return &TurnstileClient{httpClient: httpClient}
}

// List implements cloudflare.TurnstileClient.List.
func (c *TurnstileClient) List(ctx context.Context, accountID string, opts *cloudflare.ListOptions) (*cloudflare.ListResponse[cloudflare.Widget], error) {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets", accountID)
	if err != nil {
		return nil, err
	}

	return pager[cloudflare.Widget]{httpClient: c.httpClient}.ListPage(ctx, path, opts)
}

// ListAll implements cloudflare.TurnstileClient.ListAll.
func (c *TurnstileClient) ListAll(ctx context.Context, accountID string, opts *cloudflare.ListOptions) *cloudflare.PageIterator[cloudflare.Widget] {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets", accountID)
	if err != nil {
		return cloudflare.NewPageIterator(ctx, failingPager[cloudflare.Widget]{err: err}, path, opts)
	}

	return cloudflare.NewPageIterator(ctx, pager[cloudflare.Widget]{httpClient: c.httpClient}, path, opts)
}

// Get implements cloudflare.TurnstileClient.Get.
func (c *TurnstileClient) Get(ctx context.Context, accountID, sitekey string) (*cloudflare.Widget, error) {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets/%s", accountID, sitekey)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting widget: %w", err)
	}

	return decodeResult[cloudflare.Widget](resp)
}

// Create implements cloudflare.TurnstileClient.Create.
func (c *TurnstileClient) Create(ctx context.Context, accountID string, request *cloudflare.WidgetCreateRequest) (*cloudflare.Widget, error) {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets", accountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating widget: %w", err)
	}

	return decodeResult[cloudflare.Widget](resp)
}

// Update implements cloudflare.TurnstileClient.Update.
func (c *TurnstileClient) Update(ctx context.Context, accountID, sitekey string, request *cloudflare.WidgetUpdateRequest) (*cloudflare.Widget, error) {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets/%s", accountID, sitekey)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating widget: %w", err)
	}

	return decodeResult[cloudflare.Widget](resp)
}

// Delete implements cloudflare.TurnstileClient.Delete.
func (c *TurnstileClient) Delete(ctx context.Context, accountID, sitekey string) error {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets/%s", accountID, sitekey)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting widget: %w", err)
	}

	return nil
}

// RotateSecret implements cloudflare.TurnstileClient.RotateSecret.
func (c *TurnstileClient) RotateSecret(ctx context.Context, accountID, sitekey string, invalidateImmediately bool) (*cloudflare.Widget, error) {
	path, err := http.BuildPath("/accounts/%s/challenges/widgets/%s/rotate_secret", accountID, sitekey)
	if err != nil {
		return nil, err
	}

	request := &cloudflare.WidgetRotateSecretRequest{InvalidateImmediately: invalidateImmediately}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("rotating widget secret: %w", err)
	}

	return decodeResult[cloudflare.Widget](resp)
}
