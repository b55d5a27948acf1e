package cloudflare_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

func TestOptional(t *testing.T) {
	t.Parallel()
	t.Run("unset carries no value", func(t *testing.T) {
		t.Parallel()

		opt := cloudflare.Unset[string]()
		assert.False(t, opt.IsSet())
		assert.True(t, opt.IsZero())

		value, ok := opt.Value()
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set zero value is still set", func(t *testing.T) {
		t.Parallel()

		opt := cloudflare.Set(false)
		assert.True(t, opt.IsSet())
		assert.False(t, opt.IsZero())

		value, ok := opt.Value()
		assert.True(t, ok)
		assert.False(t, value)
	})

	t.Run("unset fields are omitted from request bodies", func(t *testing.T) {
		t.Parallel()

		update := cloudflare.DNSRecordUpdateRequest{
			Content: cloudflare.Set("198.51.100.7"),
		}

		data, err := json.Marshal(update)
		require.NoError(t, err)

		var body map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(data, &body))
		assert.Len(t, body, 1)
		assert.Contains(t, body, "content")
	})

	t.Run("explicit zero survives to the wire", func(t *testing.T) {
		t.Parallel()

		update := cloudflare.DNSRecordUpdateRequest{
			Proxied: cloudflare.Set(false),
			TTL:     cloudflare.Set(0),
		}

		data, err := json.Marshal(update)
		require.NoError(t, err)
		assert.JSONEq(t, `{"proxied": false, "ttl": 0}`, string(data))
	})

	t.Run("unmarshal marks present fields as set", func(t *testing.T) {
		t.Parallel()

		var opt cloudflare.Optional[int]

		require.NoError(t, json.Unmarshal([]byte("42"), &opt))
		assert.True(t, opt.IsSet())
		assert.Equal(t, 42, opt.MustValue())
	})
}

func TestResultInfo_LastPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info *cloudflare.ResultInfo
		want bool
	}{
		{
			name: "nil info is terminal",
			want: true,
		},
		{
			name: "middle page",
			info: &cloudflare.ResultInfo{Page: 2, Count: 50, TotalPages: 5},
			want: false,
		},
		{
			name: "final page",
			info: &cloudflare.ResultInfo{Page: 5, Count: 10, TotalPages: 5},
			want: true,
		},
		{
			name: "page beyond the total",
			info: &cloudflare.ResultInfo{Page: 6, Count: 0, TotalPages: 5},
			want: true,
		},
		{
			name: "empty page is terminal regardless of totals",
			info: &cloudflare.ResultInfo{Page: 2, Count: 0, TotalPages: 5},
			want: true,
		},
		{
			name: "zero value",
			info: &cloudflare.ResultInfo{},
			want: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.info.LastPage())
		})
	}
}

func TestEnvelope_Decode(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"success": true,
		"errors": [],
		"messages": ["deprecation warning"],
		"result": {"id": "rec-1", "name": "example.com", "type": "A"},
		"result_info": null
	}`)

	// Decoding is a pure function of the body; a second pass over the same
	// bytes yields an identical value.
	var first, second cloudflare.Envelope[cloudflare.DNSRecord]

	require.NoError(t, json.Unmarshal(body, &first))
	require.NoError(t, json.Unmarshal(body, &second))

	assert.True(t, first.Success)
	assert.Equal(t, "rec-1", first.Result.ID)
	assert.Equal(t, cloudflare.RecordTypeA, first.Result.Type)
	assert.Equal(t, []string{"deprecation warning"}, first.Messages)
	assert.Nil(t, first.ResultInfo)
	assert.Equal(t, first, second)
}
