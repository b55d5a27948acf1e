package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTurnstileClient(t *testing.T) {
	t.Parallel()
	t.Run("List", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/accounts/acc-1/challenges/widgets", request.URL.Path)

			writeListEnvelope(t, writer, []cloudflare.Widget{
				{Sitekey: "0x4AAF00AAAABn0R22HWm-YUc", Name: "login form", Mode: cloudflare.WidgetModeManaged},
			}, cloudflare.ResultInfo{Page: 1, PerPage: 25, Count: 1, TotalCount: 1, TotalPages: 1})
		}))

		page, err := apiClient.Turnstile().List(context.Background(), "acc-1", nil)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, cloudflare.WidgetModeManaged, page.Items[0].Mode)
	})

	t.Run("Get uses the sitekey as identifier", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/accounts/acc-1/challenges/widgets/0x4AAF00AAAABn0R22HWm-YUc", request.URL.Path)

			writeEnvelope(t, writer, cloudflare.Widget{Sitekey: "0x4AAF00AAAABn0R22HWm-YUc", Name: "login form"})
		}))

		widget, err := apiClient.Turnstile().Get(context.Background(), "acc-1", "0x4AAF00AAAABn0R22HWm-YUc")
		require.NoError(t, err)
		assert.Equal(t, "login form", widget.Name)
	})

	t.Run("Create", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "login form", body["name"])
			assert.Equal(t, "invisible", body["mode"])
			assert.NotContains(t, body, "bot_fight_mode")

			writeEnvelope(t, writer, cloudflare.Widget{
				Sitekey: "0x4AAF00AAAABn0R22HWm-YUc",
				Secret:  "0x4AAF00AAAABn0R22HWm-YUcSecret",
				Name:    "login form",
				Mode:    cloudflare.WidgetModeInvisible,
			})
		}))

		widget, err := apiClient.Turnstile().Create(context.Background(), "acc-1", &cloudflare.WidgetCreateRequest{
			Name:    "login form",
			Domains: []string{"example.com"},
			Mode:    cloudflare.WidgetModeInvisible,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, widget.Secret)
	})

	t.Run("Update sends only the set fields", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)

			var body map[string]json.RawMessage

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Len(t, body, 1)
			assert.Contains(t, body, "mode")

			writeEnvelope(t, writer, cloudflare.Widget{Sitekey: "0x4AAF00AAAABn0R22HWm-YUc", Mode: cloudflare.WidgetModeManaged})
		}))

		widget, err := apiClient.Turnstile().Update(context.Background(), "acc-1", "0x4AAF00AAAABn0R22HWm-YUc",
			&cloudflare.WidgetUpdateRequest{Mode: cloudflare.Set(cloudflare.WidgetModeManaged)})
		require.NoError(t, err)
		assert.Equal(t, cloudflare.WidgetModeManaged, widget.Mode)
	})

	t.Run("Delete", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/accounts/acc-1/challenges/widgets/0x4AAF00AAAABn0R22HWm-YUc", request.URL.Path)

			writeEnvelope(t, writer, nil)
		}))

		err := apiClient.Turnstile().Delete(context.Background(), "acc-1", "0x4AAF00AAAABn0R22HWm-YUc")
		require.NoError(t, err)
	})

	t.Run("RotateSecret", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/accounts/acc-1/challenges/widgets/0x4AAF00AAAABn0R22HWm-YUc/rotate_secret", request.URL.Path)

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, true, body["invalidate_immediately"])

			writeEnvelope(t, writer, cloudflare.Widget{
				Sitekey: "0x4AAF00AAAABn0R22HWm-YUc",
				Secret:  "rotated-secret",
			})
		}))

		widget, err := apiClient.Turnstile().RotateSecret(context.Background(), "acc-1", "0x4AAF00AAAABn0R22HWm-YUc", true)
		require.NoError(t, err)
		assert.Equal(t, "rotated-secret", widget.Secret)
	})
}
