package constants

import "time"

// DefaultBaseURL is the API endpoint used when the config leaves BaseURL
// empty.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 250 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Local admission limits.
const (
	// DefaultMaxInFlight bounds concurrent in-flight requests per client.
	DefaultMaxInFlight = 4

	// DefaultQueueSize bounds how many callers may wait for a free slot.
	DefaultQueueSize = 100
)

// Pagination sizes.
const (
	// StandardPageSize is the default number of results per page.
	StandardPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 5000
)
