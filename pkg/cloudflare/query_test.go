package cloudflare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

func TestListOptions_ToValues(t *testing.T) {
	t.Parallel()
	t.Run("empty options produce no parameters", func(t *testing.T) {
		t.Parallel()

		values := cloudflare.NewListOptions().ToValues()
		assert.Empty(t, values)
	})

	t.Run("nil options are safe", func(t *testing.T) {
		t.Parallel()

		var opts *cloudflare.ListOptions

		assert.Empty(t, opts.ToValues())
	})

	t.Run("set fields use their fixed wire names", func(t *testing.T) {
		t.Parallel()

		opts := cloudflare.NewListOptions().
			WithPage(2).
			WithPerPage(50).
			WithOrder("name").
			WithDirection(cloudflare.ListDirectionDesc).
			WithName("example.com").
			WithType("CNAME").
			WithContent("198.51.100.4").
			WithMatch("all").
			WithSearch("www")

		values := opts.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("per_page"))
		assert.Equal(t, "name", values.Get("order"))
		assert.Equal(t, "desc", values.Get("direction"))
		assert.Equal(t, "example.com", values.Get("name"))
		assert.Equal(t, "CNAME", values.Get("type"))
		assert.Equal(t, "198.51.100.4", values.Get("content"))
		assert.Equal(t, "all", values.Get("match"))
		assert.Equal(t, "www", values.Get("search"))
	})

	t.Run("unset proxied filter is omitted", func(t *testing.T) {
		t.Parallel()

		values := cloudflare.NewListOptions().WithName("example.com").ToValues()
		assert.False(t, values.Has("proxied"))
	})

	t.Run("explicit false proxied filter is sent", func(t *testing.T) {
		t.Parallel()

		values := cloudflare.NewListOptions().WithProxied(false).ToValues()
		assert.Equal(t, "false", values.Get("proxied"))
	})
}

func TestListOptions_Clone(t *testing.T) {
	t.Parallel()

	original := cloudflare.NewListOptions().WithName("example.com").WithPage(3)

	clone := original.Clone()
	clone.Page = 4
	clone.Name = "other.com"

	assert.Equal(t, 3, original.Page)
	assert.Equal(t, "example.com", original.Name)

	var nilOpts *cloudflare.ListOptions

	assert.NotNil(t, nilOpts.Clone())
}
