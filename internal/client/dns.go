package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/alos-no/cloudflare-client/internal/http"
	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// DNSClient implements cloudflare.DNSClient.
type DNSClient struct {
	httpClient *http.Client
}

// NewDNSClient creates a new DNS records client.
func NewDNSClient(httpClient *http.Client) *DNSClient {
	return &DNSClient{httpClient: httpClient}
}

// List implements cloudflare.DNSClient.List.
func (c *DNSClient) List(ctx context.Context, zoneID string, opts *cloudflare.ListOptions) (*cloudflare.ListResponse[cloudflare.DNSRecord], error) {
	path, err := http.BuildPath("/zones/%s/dns_records", zoneID)
	if err != nil {
		return nil, err
	}

	return pager[cloudflare.DNSRecord]{httpClient: c.httpClient}.ListPage(ctx, path, opts)
}

// ListAll implements cloudflare.DNSClient.ListAll.
func (c *DNSClient) ListAll(ctx context.Context, zoneID string, opts *cloudflare.ListOptions) *cloudflare.PageIterator[cloudflare.DNSRecord] {
	path, err := http.BuildPath("/zones/%s/dns_records", zoneID)
	if err != nil {
		return cloudflare.NewPageIterator(ctx, failingPager[cloudflare.DNSRecord]{err: err}, path, opts)
	}

	return cloudflare.NewPageIterator(ctx, pager[cloudflare.DNSRecord]{httpClient: c.httpClient}, path, opts)
}

// Get implements cloudflare.DNSClient.Get.
func (c *DNSClient) Get(ctx context.Context, zoneID, recordID string) (*cloudflare.DNSRecord, error) {
	path, err := http.BuildPath("/zones/%s/dns_records/%s", zoneID, recordID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting DNS record: %w", err)
	}

	return decodeResult[cloudflare.DNSRecord](resp)
}

// Create implements cloudflare.DNSClient.Create.
func (c *DNSClient) Create(ctx context.Context, zoneID string, request *cloudflare.DNSRecordCreateRequest) (*cloudflare.DNSRecord, error) {
	path, err := http.BuildPath("/zones/%s/dns_records", zoneID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating DNS record: %w", err)
	}

	return decodeResult[cloudflare.DNSRecord](resp)
}

// Update implements cloudflare.DNSClient.Update. Only the fields set in
// the request appear in the serialized body.
func (c *DNSClient) Update(ctx context.Context, zoneID, recordID string, request *cloudflare.DNSRecordUpdateRequest) (*cloudflare.DNSRecord, error) {
	path, err := http.BuildPath("/zones/%s/dns_records/%s", zoneID, recordID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating DNS record: %w", err)
	}

	return decodeResult[cloudflare.DNSRecord](resp)
}

// Delete implements cloudflare.DNSClient.Delete.
func (c *DNSClient) Delete(ctx context.Context, zoneID, recordID string) error {
	path, err := http.BuildPath("/zones/%s/dns_records/%s", zoneID, recordID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting DNS record: %w", err)
	}

	return nil
}

// Batch implements cloudflare.DNSClient.Batch.
func (c *DNSClient) Batch(ctx context.Context, zoneID string, request *cloudflare.DNSBatchRequest) (*cloudflare.DNSBatchResponse, error) {
	path, err := http.BuildPath("/zones/%s/dns_records/batch", zoneID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("batching DNS records: %w", err)
	}

	return decodeResult[cloudflare.DNSBatchResponse](resp)
}

// Export implements cloudflare.DNSClient.Export. The endpoint returns a
// BIND zone file as plain text with no envelope.
func (c *DNSClient) Export(ctx context.Context, zoneID string) (string, error) {
	path, err := http.BuildPath("/zones/%s/dns_records/export", zoneID)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.GetRaw(ctx, path, nil)
	if err != nil {
		return "", fmt.Errorf("exporting zone file: %w", err)
	}

	return string(resp.Body), nil
}

// Import implements cloudflare.DNSClient.Import. The zone file is uploaded
// as a multipart form.
func (c *DNSClient) Import(ctx context.Context, zoneID string, zoneFile string, proxied bool) (*cloudflare.DNSImportResult, error) {
	path, err := http.BuildPath("/zones/%s/dns_records/import", zoneID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "zone.txt")
	if err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}

	_, err = part.Write([]byte(zoneFile))
	if err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}

	err = writer.WriteField("proxied", strconv.FormatBool(proxied))
	if err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}

	resp, err := c.httpClient.PostMultipart(ctx, path, writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("importing zone file: %w", err)
	}

	return decodeResult[cloudflare.DNSImportResult](resp)
}
