package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alos-no/cloudflare-client/internal/client"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// newTestClient wires a client against an httptest server and tears both
// down with the test.
func newTestClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&cloudflare.Config{
		APIToken: "test-token",
		BaseURL:  server.URL,
	})
	if err != nil {
		t.Fatalf("creating test client: %v", err)
	}

	t.Cleanup(func() {
		_ = apiClient.Close()
	})

	return apiClient
}

// writeEnvelope writes a success envelope around result.
func writeEnvelope(t *testing.T, writer http.ResponseWriter, result interface{}) {
	t.Helper()

	response := map[string]interface{}{
		"success":  true,
		"errors":   []interface{}{},
		"messages": []interface{}{},
		"result":   result,
	}

	if err := json.NewEncoder(writer).Encode(response); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

// writeListEnvelope writes a success envelope with pagination metadata.
func writeListEnvelope(t *testing.T, writer http.ResponseWriter, result interface{}, info cloudflare.ResultInfo) {
	t.Helper()

	response := map[string]interface{}{
		"success":     true,
		"errors":      []interface{}{},
		"messages":    []interface{}{},
		"result":      result,
		"result_info": info,
	}

	if err := json.NewEncoder(writer).Encode(response); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

// writeError writes a failure envelope with the given status and errors.
func writeError(t *testing.T, writer http.ResponseWriter, status int, apiErrors ...cloudflare.APIError) {
	t.Helper()

	writer.WriteHeader(status)

	response := map[string]interface{}{
		"success":  false,
		"errors":   apiErrors,
		"messages": []interface{}{},
		"result":   nil,
	}

	if err := json.NewEncoder(writer).Encode(response); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}
