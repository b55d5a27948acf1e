// Package cloudflare provides types, interfaces, and helpers for working
// with the Cloudflare v4 API.
//
// # Overview
//
// The cloudflare package defines the domain types (e.g., Account, Role,
// DNSRecord, Widget), the response envelope every API call is wrapped in,
// and the interfaces for resource-oriented clients (e.g., DNSClient,
// TurnstileClient). A concrete implementation of these clients is provided
// by the cfclient package, which wires configuration, transport, retry, and
// the local rate limiter. Most consumers should import cfclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/alos-no/cloudflare-client/pkg/cfclient"
//	  "github.com/alos-no/cloudflare-client/pkg/cloudflare"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cfclient.New(ctx, &cloudflare.Config{APIToken: "..."})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // List the first page of DNS records in a zone
//	  records, err := cli.DNS().List(ctx, "zone-id", cloudflare.NewListOptions().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = records
//	}
//
// # Queries and pagination
//
// Use ListOptions to express common list filters (page, per_page, type,
// name, proxied, order, direction). List endpoints return one page at a
// time; PageIterator hides the page-by-page fetching behind a single
// sequential view:
//
//	it := cli.DNS().ListAll(ctx, "zone-id", cloudflare.NewListOptions().WithType("TXT"))
//	for it.HasNext() {
//	  record, err := it.Next()
//	  if errors.Is(err, cloudflare.ErrNoMoreItems) { break }
//	  if err != nil { return err }
//	  _ = record
//	}
//
// Pages are fetched lazily and strictly in order; stopping the iteration
// early never fetches further pages.
//
// # Errors
//
// Failed calls surface a *ResponseError carrying every error entry of the
// envelope in its original order. Transient transport failures are retried
// internally and, once exhausted, surface as a *TransportError wrapping the
// original cause. The IsNotFound, IsAuthenticationError, IsRateLimited and
// IsTransient helpers classify errors without unpacking them by hand.
package cloudflare
