// Package cfclient provides the main entry point for creating Cloudflare
// API clients, plus a process-wide registry of named clients.
package cfclient

import (
	"strings"

	"github.com/alos-no/cloudflare-client/internal/client"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// New creates a new API client from the given config.
//
// A nil config fails with cloudflare.ErrConfigRequired and a missing API
// token with cloudflare.ErrAPITokenRequired, both before any network
// activity. Every call returns a distinct client owning its own transport
// and rate-limit state; callers are responsible for releasing it with
// Close.
func New(config *cloudflare.Config) (cloudflare.Client, error) {
	if config == nil {
		return nil, cloudflare.ErrConfigRequired
	}

	// Normalize a copy so the caller's config stays untouched and can be
	// reused across clients.
	cfg := *config
	if cfg.BaseURL != "" {
		cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)
	}

	return client.New(&cfg)
}

// NewWithToken creates a new client from just an API token.
func NewWithToken(token string) (cloudflare.Client, error) {
	return New(&cloudflare.Config{APIToken: token})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to
// https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
