package cloudflare_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

func TestResponseError(t *testing.T) {
	t.Parallel()
	t.Run("single error message", func(t *testing.T) {
		t.Parallel()

		err := &cloudflare.ResponseError{
			StatusCode: 400,
			Errors:     []cloudflare.APIError{{Code: 9207, Message: "Invalid TTL"}},
		}

		assert.Equal(t, "Invalid TTL (code: 9207)", err.Error())
	})

	t.Run("multiple errors keep their order", func(t *testing.T) {
		t.Parallel()

		err := &cloudflare.ResponseError{
			StatusCode: 400,
			Errors: []cloudflare.APIError{
				{Code: 1, Message: "first"},
				{Code: 2, Message: "second"},
				{Code: 3, Message: "third"},
			},
		}

		assert.Equal(t, "multiple errors: first (code: 1); second (code: 2); third (code: 3)", err.Error())
		require.NotNil(t, err.FirstError())
		assert.Equal(t, 1, err.FirstError().Code)
	})

	t.Run("no error entries", func(t *testing.T) {
		t.Parallel()

		err := &cloudflare.ResponseError{StatusCode: 502}
		assert.Equal(t, "request failed with status 502", err.Error())
		assert.Nil(t, err.FirstError())
	})

	t.Run("HasCode scans every entry", func(t *testing.T) {
		t.Parallel()

		err := &cloudflare.ResponseError{
			Errors: []cloudflare.APIError{
				{Code: 9207, Message: "Invalid TTL"},
				{Code: cloudflare.ErrorCodeRecordExists, Message: "Record already exists"},
			},
		}

		assert.True(t, err.HasCode(cloudflare.ErrorCodeRecordExists))
		assert.False(t, err.HasCode(cloudflare.ErrorCodeAuthentication))
	})
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()
	t.Run("preserves order and count", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"success": false,
			"errors": [
				{"code": 9106, "message": "Missing X-Auth-Key"},
				{"code": 6003, "message": "Invalid request headers"}
			],
			"messages": ["check your credentials"],
			"result": null
		}`)

		respErr, err := cloudflare.ParseResponseError(body)
		require.NoError(t, err)
		require.Len(t, respErr.Errors, 2)
		assert.Equal(t, 9106, respErr.Errors[0].Code)
		assert.Equal(t, 6003, respErr.Errors[1].Code)
		assert.Equal(t, []string{"check your credentials"}, respErr.Messages)
	})

	t.Run("invalid json fails", func(t *testing.T) {
		t.Parallel()

		_, err := cloudflare.ParseResponseError([]byte("not json"))
		require.Error(t, err)
	})
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		notFound bool
		auth     bool
		limited  bool
		transit  bool
	}{
		{
			name:     "404 status",
			err:      &cloudflare.ResponseError{StatusCode: 404},
			notFound: true,
		},
		{
			name:     "record not found code",
			err:      &cloudflare.ResponseError{StatusCode: 400, Errors: []cloudflare.APIError{{Code: cloudflare.ErrorCodeRecordNotFound}}},
			notFound: true,
		},
		{
			name:     "widget not found code",
			err:      &cloudflare.ResponseError{StatusCode: 400, Errors: []cloudflare.APIError{{Code: cloudflare.ErrorCodeWidgetNotFound}}},
			notFound: true,
		},
		{
			name: "authentication code on 200",
			err:  &cloudflare.ResponseError{StatusCode: 200, Errors: []cloudflare.APIError{{Code: cloudflare.ErrorCodeAuthentication}}},
			auth: true,
		},
		{
			name: "403 status",
			err:  &cloudflare.ResponseError{StatusCode: 403},
			auth: true,
		},
		{
			name:    "local queue overflow",
			err:     fmt.Errorf("acquiring permit: %w", cloudflare.ErrRateLimitQueueFull),
			limited: true,
		},
		{
			name:    "transport fault",
			err:     &cloudflare.TransportError{Err: errors.New("connection refused")},
			transit: true,
		},
		{
			name:    "wrapped transport fault",
			err:     fmt.Errorf("listing records: %w", &cloudflare.TransportError{Err: errors.New("timeout")}),
			transit: true,
		},
		{
			name: "plain error matches nothing",
			err:  errors.New("boom"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.notFound, cloudflare.IsNotFound(testCase.err))
			assert.Equal(t, testCase.auth, cloudflare.IsAuthenticationError(testCase.err))
			assert.Equal(t, testCase.limited, cloudflare.IsRateLimited(testCase.err))
			assert.Equal(t, testCase.transit, cloudflare.IsTransient(testCase.err))
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := &cloudflare.TransportError{Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
