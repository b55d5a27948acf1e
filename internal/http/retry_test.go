package http

import (
	"context"
	"crypto/x509"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRetry(t *testing.T) {
	t.Parallel()
	t.Run("transient network faults are retried", func(t *testing.T) {
		t.Parallel()

		netErr := &url.Error{Op: "Get", URL: "https://api.example.com", Err: errors.New("connection reset by peer")}

		retry, err := checkRetry(context.Background(), nil, netErr)
		require.NoError(t, err)
		assert.True(t, retry)
	})

	t.Run("redirect loops fail fast", func(t *testing.T) {
		t.Parallel()

		redirectErr := &url.Error{Op: "Get", URL: "https://api.example.com", Err: errors.New("stopped after 10 redirects")}

		retry, err := checkRetry(context.Background(), nil, redirectErr)
		require.Error(t, err)
		assert.False(t, retry)
	})

	t.Run("unsupported scheme fails fast", func(t *testing.T) {
		t.Parallel()

		schemeErr := &url.Error{Op: "Get", URL: "ftp://api.example.com", Err: errors.New(`unsupported protocol scheme "ftp"`)}

		retry, err := checkRetry(context.Background(), nil, schemeErr)
		require.Error(t, err)
		assert.False(t, retry)
	})

	t.Run("certificate verification failures fail fast", func(t *testing.T) {
		t.Parallel()

		certErr := &url.Error{Op: "Get", URL: "https://api.example.com", Err: x509.UnknownAuthorityError{}}

		retry, err := checkRetry(context.Background(), nil, certErr)
		require.Error(t, err)
		assert.False(t, retry)
	})

	t.Run("throttling and server errors are retried", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable} {
			retry, err := checkRetry(context.Background(), &http.Response{StatusCode: status}, nil)
			require.NoError(t, err)
			assert.True(t, retry, "status %d", status)
		}
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound} {
			retry, err := checkRetry(context.Background(), &http.Response{StatusCode: status}, nil)
			require.NoError(t, err)
			assert.False(t, retry, "status %d", status)
		}
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		retry, err := checkRetry(ctx, &http.Response{StatusCode: http.StatusServiceUnavailable}, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, retry)
	})
}
