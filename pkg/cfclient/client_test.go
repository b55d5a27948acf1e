package cfclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alos-no/cloudflare-client/pkg/cfclient"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

func newEnvelopeServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"success":  true,
			"errors":   []interface{}{},
			"messages": []interface{}{},
			"result":   []interface{}{},
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := cfclient.New(nil)
		require.ErrorIs(t, err, cloudflare.ErrConfigRequired)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := cfclient.New(&cloudflare.Config{BaseURL: "https://api.example.com"})
		require.ErrorIs(t, err, cloudflare.ErrAPITokenRequired)
	})

	t.Run("creates a working client", func(t *testing.T) {
		t.Parallel()

		server := newEnvelopeServer(t)

		apiClient, err := cfclient.New(&cloudflare.Config{APIToken: "test-token", BaseURL: server.URL})
		require.NoError(t, err)

		defer func() {
			_ = apiClient.Close()
		}()

		_, err = apiClient.Accounts().List(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("NewWithToken", func(t *testing.T) {
		t.Parallel()

		apiClient, err := cfclient.NewWithToken("test-token")
		require.NoError(t, err)
		require.NoError(t, apiClient.Close())
	})

	t.Run("caller config is not mutated", func(t *testing.T) {
		t.Parallel()

		config := &cloudflare.Config{APIToken: "test-token", BaseURL: "api.example.com/"}

		apiClient, err := cfclient.New(config)
		require.NoError(t, err)
		require.NoError(t, apiClient.Close())

		// Normalization happens on a copy; the same config stays reusable.
		assert.Equal(t, "api.example.com/", config.BaseURL)

		second, err := cfclient.New(config)
		require.NoError(t, err)
		require.NoError(t, second.Close())
	})

	t.Run("trailing slash and missing scheme are normalized", func(t *testing.T) {
		t.Parallel()

		server := newEnvelopeServer(t)

		// A trailing slash would otherwise produce double-slash paths.
		apiClient, err := cfclient.New(&cloudflare.Config{APIToken: "test-token", BaseURL: server.URL + "/"})
		require.NoError(t, err)

		defer func() {
			_ = apiClient.Close()
		}()

		_, err = apiClient.Accounts().List(context.Background(), nil)
		require.NoError(t, err)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	t.Run("register and resolve by name", func(t *testing.T) {
		t.Parallel()

		server := newEnvelopeServer(t)

		registry := cfclient.NewRegistry()

		t.Cleanup(func() {
			_ = registry.Close()
		})

		registered, err := registry.Register("production", &cloudflare.Config{
			APIToken: "test-token",
			BaseURL:  server.URL,
		})
		require.NoError(t, err)

		resolved, err := registry.Named("production")
		require.NoError(t, err)
		assert.Same(t, registered, resolved)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		t.Parallel()

		registry := cfclient.NewRegistry()

		t.Cleanup(func() {
			_ = registry.Close()
		})

		_, err := registry.Register("production", &cloudflare.Config{APIToken: "test-token"})
		require.NoError(t, err)

		_, err = registry.Register("production", &cloudflare.Config{APIToken: "other-token"})
		require.ErrorIs(t, err, cloudflare.ErrClientAlreadyRegistered)
	})

	t.Run("unknown name fails", func(t *testing.T) {
		t.Parallel()

		registry := cfclient.NewRegistry()

		_, err := registry.Named("staging")
		require.ErrorIs(t, err, cloudflare.ErrClientNotRegistered)
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()

		registry := cfclient.NewRegistry()

		t.Cleanup(func() {
			_ = registry.Close()
		})

		for _, name := range []string{"staging", "production", "dev"} {
			_, err := registry.Register(name, &cloudflare.Config{APIToken: "test-token"})
			require.NoError(t, err)
		}

		assert.Equal(t, []string{"dev", "production", "staging"}, registry.Names())
	})

	t.Run("named and dynamic clients coexist", func(t *testing.T) {
		t.Parallel()

		server := newEnvelopeServer(t)

		registry := cfclient.NewRegistry()

		t.Cleanup(func() {
			_ = registry.Close()
		})

		named, err := registry.Register("production", &cloudflare.Config{
			APIToken: "test-token",
			BaseURL:  server.URL,
		})
		require.NoError(t, err)

		dynamic, err := cfclient.New(&cloudflare.Config{APIToken: "test-token", BaseURL: server.URL})
		require.NoError(t, err)

		// Disposing the dynamic client leaves the named one operational.
		require.NoError(t, dynamic.Close())

		_, err = dynamic.Accounts().List(context.Background(), nil)
		require.ErrorIs(t, err, cloudflare.ErrClientClosed)

		_, err = named.Accounts().List(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("close empties the registry", func(t *testing.T) {
		t.Parallel()

		registry := cfclient.NewRegistry()

		_, err := registry.Register("production", &cloudflare.Config{APIToken: "test-token"})
		require.NoError(t, err)

		require.NoError(t, registry.Close())
		assert.Empty(t, registry.Names())

		_, err = registry.Named("production")
		require.ErrorIs(t, err, cloudflare.ErrClientNotRegistered)
	})
}
