package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/alos-no/cloudflare-client/internal/constants"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// Request represents an API request descriptor. It is owned exclusively by
// the call that creates it.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// RawBody is sent verbatim instead of marshaling Body; Content-Type
	// must be supplied through Headers.
	RawBody []byte

	// Raw marks an endpoint that returns a plain text body with no
	// envelope; decoding is bypassed entirely.
	Raw bool
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the shared HTTP pipeline every typed operation funnels through.
// It owns the bearer credential, the retry policy, the local admission
// limiter, and the envelope error extraction. Safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	limiter    *Limiter
	userAgent  string
	logger     Logger
	debug      bool
	closed     atomic.Bool

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig configures the retry policy.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithTimeout sets the per-request timeout of the underlying transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRateLimit bounds concurrent in-flight requests and the wait queue.
func WithRateLimit(maxInFlight, queueSize int) Option {
	return func(c *Client) {
		c.limiter = NewLimiter(maxInFlight, queueSize)
	}
}

// WithRateLimitDisabled makes admission unconditional. The retry policy
// still applies.
func WithRateLimitDisabled() Option {
	return func(c *Client) {
		c.limiter = NewDisabledLimiter()
	}
}

// NewClient creates a new HTTP client for the given endpoint and bearer
// token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.CheckRetry = checkRetry
	retryClient.Backoff = jitterBackoff

	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: retryClient,
		limiter:    NewLimiter(constants.DefaultMaxInFlight, constants.DefaultQueueSize),
		userAgent:  "cloudflare-client-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// checkRetry retries network faults, throttling, and server errors.
// Envelope failures arrive with 4xx statuses and reflect a definitive
// server decision, so they are never retried. Transport errors are
// filtered through the default policy, which knows the permanent kinds
// (bad scheme, redirect loops, certificate verification failures).
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}

	return false, nil
}

// jitterBackoff doubles the base delay per attempt and adds up to 25%
// jitter so concurrent retries fan out. Retry-After headers are honored
// through the default policy.
func jitterBackoff(minWait, maxWait time.Duration, attemptNum int, resp *http.Response) time.Duration {
	wait := retryablehttp.DefaultBackoff(minWait, maxWait, attemptNum, resp)
	if wait <= 0 {
		return wait
	}

	return wait + time.Duration(rand.Int63n(int64(wait)/4+1))
}

// Do executes a request and returns the response. Admission through the
// limiter happens before the request is built; the permit is held for the
// full duration of the call, retries included.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, cloudflare.ErrClientClosed
	}

	err := c.limiter.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer c.limiter.Release()

	err = c.runRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}

		return nil, &cloudflare.TransportError{Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &cloudflare.TransportError{Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"bytes":  len(body),
		})
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	err = c.runResponseInterceptors(ctx, req, response)
	if err != nil {
		return nil, err
	}

	return response, c.envelopeError(req, response)
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	bodyBytes := req.RawBody

	if bodyBytes == nil && req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	if req.Raw {
		httpReq.Header.Set("Accept", "text/plain")
	} else {
		httpReq.Header.Set("Accept", "application/json")
	}

	if req.Body != nil && req.RawBody == nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// envelopeError extracts the structured error set from a failed response.
// A 2xx body with success=false is still an application-level failure; the
// full ordered errors sequence is preserved. Raw responses only fail on the
// transport status.
func (c *Client) envelopeError(req *Request, resp *Response) error {
	if req.Raw {
		if resp.StatusCode >= 400 {
			return c.responseError(resp)
		}

		return nil
	}

	var probe struct {
		Success  *bool                 `json:"success"`
		Errors   []cloudflare.APIError `json:"errors"`
		Messages []string              `json:"messages"`
	}

	if err := json.Unmarshal(resp.Body, &probe); err == nil {
		if (probe.Success != nil && !*probe.Success) || resp.StatusCode >= 400 {
			return &cloudflare.ResponseError{
				StatusCode: resp.StatusCode,
				Errors:     probe.Errors,
				Messages:   probe.Messages,
			}
		}

		return nil
	}

	if resp.StatusCode >= 400 {
		return c.responseError(resp)
	}

	return nil
}

func (c *Client) responseError(resp *Response) error {
	respErr, err := cloudflare.ParseResponseError(resp.Body)
	if err != nil {
		return &cloudflare.ResponseError{StatusCode: resp.StatusCode}
	}

	respErr.StatusCode = resp.StatusCode

	return respErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// GetRaw performs a GET against a raw-text endpoint, bypassing envelope
// decoding.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Raw:    true,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// PostMultipart performs a POST with a prebuilt multipart form body.
func (c *Client) PostMultipart(ctx context.Context, path, contentType string, form []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		RawBody: form,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// Close releases the transport. Closing is idempotent; every call issued
// afterwards fails with cloudflare.ErrClientClosed.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	c.httpClient.HTTPClient.CloseIdleConnections()

	return nil
}

// Closed reports whether Close was called.
func (c *Client) Closed() bool {
	return c.closed.Load()
}
