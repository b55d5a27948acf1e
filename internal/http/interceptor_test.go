package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfhttp "github.com/alos-no/cloudflare-client/internal/http"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Interceptors(t *testing.T) {
	t.Parallel()
	t.Run("request interceptor mutates outgoing headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "trace-1", request.Header.Get("X-Trace-Id"))

			_ = json.NewEncoder(writer).Encode(envelopeBody(nil))
		}))
		defer server.Close()

		client := cfhttp.NewClient(server.URL, "test-token",
			cfhttp.WithRequestInterceptor(cfhttp.HeaderInterceptor(map[string]string{"X-Trace-Id": "trace-1"})))

		_, err := client.Get(context.Background(), "/zones", nil)
		require.NoError(t, err)
	})

	t.Run("request interceptors run in registration order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "second", request.Header.Get("X-Order"))

			_ = json.NewEncoder(writer).Encode(envelopeBody(nil))
		}))
		defer server.Close()

		var order []string

		stamp := func(name string) cfhttp.RequestInterceptor {
			return func(ctx context.Context, req *cfhttp.Request) error {
				order = append(order, name)

				if req.Headers == nil {
					req.Headers = map[string]string{}
				}

				req.Headers["X-Order"] = name

				return nil
			}
		}

		client := cfhttp.NewClient(server.URL, "test-token",
			cfhttp.WithRequestInterceptor(stamp("first")),
			cfhttp.WithRequestInterceptor(stamp("second")))

		_, err := client.Get(context.Background(), "/zones", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("request interceptor error aborts before any network activity", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests.Add(1)

			_ = json.NewEncoder(writer).Encode(envelopeBody(nil))
		}))
		defer server.Close()

		rejection := errors.New("request rejected")

		client := cfhttp.NewClient(server.URL, "test-token",
			cfhttp.WithRequestInterceptor(func(ctx context.Context, req *cfhttp.Request) error {
				return rejection
			}))

		_, err := client.Get(context.Background(), "/zones", nil)
		require.ErrorIs(t, err, rejection)
		assert.Equal(t, int32(0), requests.Load())
	})

	t.Run("response interceptor observes status and body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(envelopeBody(map[string]string{"id": "rec-1"}))
		}))
		defer server.Close()

		var (
			seenStatus int
			seenPath   string
		)

		client := cfhttp.NewClient(server.URL, "test-token",
			cfhttp.WithResponseInterceptor(func(ctx context.Context, req *cfhttp.Request, resp *cfhttp.Response) error {
				seenStatus = resp.StatusCode
				seenPath = req.Path

				assert.Contains(t, string(resp.Body), "rec-1")

				return nil
			}))

		_, err := client.Get(context.Background(), "/zones/zone-1/dns_records", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, seenStatus)
		assert.Equal(t, "/zones/zone-1/dns_records", seenPath)
	})

	t.Run("response interceptor error fails the call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(envelopeBody(nil))
		}))
		defer server.Close()

		rejection := errors.New("response rejected")

		client := cfhttp.NewClient(server.URL, "test-token",
			cfhttp.WithResponseInterceptor(func(ctx context.Context, req *cfhttp.Request, resp *cfhttp.Response) error {
				return rejection
			}))

		_, err := client.Get(context.Background(), "/zones", nil)
		require.ErrorIs(t, err, rejection)
	})

	t.Run("logging interceptors record both directions", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(envelopeBody(nil))
		}))
		defer server.Close()

		logger := &MockLogger{}

		client := cfhttp.NewClient(server.URL, "test-token",
			cfhttp.WithRequestInterceptor(cfhttp.LoggingInterceptor(logger)),
			cfhttp.WithResponseInterceptor(cfhttp.LoggingResponseInterceptor(logger)))

		_, err := client.Get(context.Background(), "/zones", nil)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "API Request", logger.logs[0]["msg"])
		assert.Equal(t, "API Response", logger.logs[1]["msg"])
	})
}
