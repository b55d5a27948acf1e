package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alos-no/cloudflare-client/internal/constants"
	"github.com/alos-no/cloudflare-client/internal/http"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// Client implements the cloudflare.Client interface. Every resource client
// it issues shares one transport and one rate-limit state; Close releases
// them for dynamic handles.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     cloudflare.Logger

	accounts  cloudflare.AccountsClient
	roles     cloudflare.RolesClient
	dns       cloudflare.DNSClient
	turnstile cloudflare.TurnstileClient
}

// New creates a new API client from the given config. The config must
// carry an API token; two calls with equivalent configs always return
// distinct, independently disposable clients.
func New(config *cloudflare.Config) (*Client, error) {
	if config == nil {
		return nil, cloudflare.ErrConfigRequired
	}

	if strings.TrimSpace(config.APIToken) == "" {
		return nil, cloudflare.ErrAPITokenRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, config.APIToken, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *cloudflare.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	switch {
	case config.DisableRateLimit:
		opts = append(opts, http.WithRateLimitDisabled())
	case config.MaxInFlight > 0 || config.QueueSize > 0:
		maxInFlight := config.MaxInFlight
		if maxInFlight == 0 {
			maxInFlight = constants.DefaultMaxInFlight
		}

		queueSize := config.QueueSize
		if queueSize == 0 {
			queueSize = constants.DefaultQueueSize
		}

		opts = append(opts, http.WithRateLimit(maxInFlight, queueSize))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c.httpClient)
	c.roles = NewRolesClient(c.httpClient)
	c.dns = NewDNSClient(c.httpClient)
	c.turnstile = NewTurnstileClient(c.httpClient)
}

// Accounts implements cloudflare.Client.Accounts.
func (c *Client) Accounts() cloudflare.AccountsClient {
	return c.accounts
}

// Roles implements cloudflare.Client.Roles.
func (c *Client) Roles() cloudflare.RolesClient {
	return c.roles
}

// DNS implements cloudflare.Client.DNS.
func (c *Client) DNS() cloudflare.DNSClient {
	return c.dns
}

// Turnstile implements cloudflare.Client.Turnstile.
func (c *Client) Turnstile() cloudflare.TurnstileClient {
	return c.turnstile
}

// VerifyToken implements cloudflare.Client.VerifyToken.
func (c *Client) VerifyToken(ctx context.Context) (*cloudflare.TokenVerification, error) {
	resp, err := c.httpClient.Get(ctx, "/user/tokens/verify", nil)
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	return decodeResult[cloudflare.TokenVerification](resp)
}

// Close implements cloudflare.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// decodeResult unwraps the result payload of a successful envelope.
func decodeResult[T any](resp *http.Response) (*T, error) {
	var envelope cloudflare.Envelope[T]

	err := json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	return &envelope.Result, nil
}

// pager adapts the transport to the cloudflare.ListPager interface for one
// item type.
type pager[T any] struct {
	httpClient *http.Client
}

// ListPage fetches and decodes one page of a list endpoint.
func (p pager[T]) ListPage(ctx context.Context, path string, opts *cloudflare.ListOptions) (*cloudflare.ListResponse[T], error) {
	resp, err := p.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, err
	}

	var envelope cloudflare.Envelope[[]T]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	info := cloudflare.ResultInfo{}
	if envelope.ResultInfo != nil {
		info = *envelope.ResultInfo
	}

	return &cloudflare.ListResponse[T]{Items: envelope.Result, Info: info}, nil
}

// failingPager surfaces a pre-flight error (such as an invalid identifier)
// through the iterator instead of panicking at construction.
type failingPager[T any] struct {
	err error
}

func (p failingPager[T]) ListPage(context.Context, string, *cloudflare.ListOptions) (*cloudflare.ListResponse[T], error) {
	return nil, p.err
}
