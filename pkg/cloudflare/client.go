package cloudflare

import (
	"context"
	"time"
)

// AccountsClient provides access to account operations.
type AccountsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Account], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Account]
	Get(ctx context.Context, accountID string) (*Account, error)
	Update(ctx context.Context, accountID string, request *AccountUpdateRequest) (*Account, error)
}

// RolesClient provides access to account role operations.
type RolesClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*ListResponse[Role], error)
	ListAll(ctx context.Context, accountID string, opts *ListOptions) *PageIterator[Role]
	Get(ctx context.Context, accountID, roleID string) (*Role, error)
}

// DNSClient provides access to DNS record operations within a zone.
type DNSClient interface {
	List(ctx context.Context, zoneID string, opts *ListOptions) (*ListResponse[DNSRecord], error)
	ListAll(ctx context.Context, zoneID string, opts *ListOptions) *PageIterator[DNSRecord]
	Get(ctx context.Context, zoneID, recordID string) (*DNSRecord, error)
	Create(ctx context.Context, zoneID string, request *DNSRecordCreateRequest) (*DNSRecord, error)
	Update(ctx context.Context, zoneID, recordID string, request *DNSRecordUpdateRequest) (*DNSRecord, error)
	Delete(ctx context.Context, zoneID, recordID string) error
	Batch(ctx context.Context, zoneID string, request *DNSBatchRequest) (*DNSBatchResponse, error)
	Export(ctx context.Context, zoneID string) (string, error)
	Import(ctx context.Context, zoneID string, zoneFile string, proxied bool) (*DNSImportResult, error)
}

// TurnstileClient provides access to Turnstile widget operations.
type TurnstileClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*ListResponse[Widget], error)
	ListAll(ctx context.Context, accountID string, opts *ListOptions) *PageIterator[Widget]
	Get(ctx context.Context, accountID, sitekey string) (*Widget, error)
	Create(ctx context.Context, accountID string, request *WidgetCreateRequest) (*Widget, error)
	Update(ctx context.Context, accountID, sitekey string, request *WidgetUpdateRequest) (*Widget, error)
	Delete(ctx context.Context, accountID, sitekey string) error
	RotateSecret(ctx context.Context, accountID, sitekey string, invalidateImmediately bool) (*Widget, error)
}

// Client is the top-level API client. Every resource client issued by one
// Client shares its transport, credentials, and rate-limit state. Dynamic
// clients must be released with Close; afterwards every operation fails
// with ErrClientClosed.
type Client interface {
	Accounts() AccountsClient
	Roles() RolesClient
	DNS() DNSClient
	Turnstile() TurnstileClient

	// VerifyToken checks the configured token against the API.
	VerifyToken(ctx context.Context) (*TokenVerification, error)

	// Close releases the transport and marks the client disposed.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// APIToken is the only mandatory field. Retry behavior and the local
// admission limits are tunable; zero values fall back to the defaults in
// internal/constants.
type Config struct {
	// APIToken is the bearer credential sent with every request. Required.
	APIToken string

	// BaseURL overrides the default API endpoint. A trailing slash is
	// trimmed and "https://" is added when no scheme is present.
	BaseURL string

	// HTTPTimeout is the per-request timeout of the underlying transport.
	// Most calls should rely on context deadlines instead.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures
	// (connection errors, 429, and 5xx responses).
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// MaxInFlight bounds how many requests may execute concurrently.
	MaxInFlight int
	// QueueSize bounds how many callers may wait for a free slot before
	// further callers fail with ErrRateLimitQueueFull.
	QueueSize int
	// DisableRateLimit turns the local admission limiter off entirely.
	// The retry policy still applies.
	DisableRateLimit bool

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// TokenVerification is the result of a token verification call.
type TokenVerification struct {
	ID        string    `json:"id"         yaml:"id"`
	Status    string    `json:"status"     yaml:"status"`
	NotBefore time.Time `json:"not_before,omitzero" yaml:"not_before,omitempty"`
	ExpiresOn time.Time `json:"expires_on,omitzero" yaml:"expires_on,omitempty"`
}
