// Package vapi provides types, interfaces, and helpers for working with the
// NimbusVec vector service API.
//
// # Overview
//
// The vapi package defines the domain types (e.g., Index, Vector, Backup,
// Import) and the interfaces for resource-oriented clients (e.g.,
// IndexesClient, VectorsClient). A concrete implementation of these clients
// is provided by the vapiclient package, which wires configuration,
// transport, authentication headers, and data-plane endpoint resolution.
// Most consumers should import vapiclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/nimbusvec/vapi/pkg/vapi"
//	  "github.com/nimbusvec/vapi/pkg/vapiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vapiclient.New(&vapi.Config{APIKey: "nv-..."})
//	  if err != nil { log.Fatal(err) }
//
//	  matches, err := cli.Vectors().Query(ctx, "my-index", &vapi.QueryRequest{
//	    Vector: []float32{0.1, 0.2, 0.3},
//	    TopK:   10,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = matches
//	}
//
// # Planes and endpoint resolution
//
// Index lifecycle, backups, restores, and inference go to the fixed
// control-plane host. Vector, namespace, and import operations go to a
// per-index data-plane host; the client discovers that host through a
// control-plane describe call the first time an index is used and caches it
// for the lifetime of the client. Deleting an index through the client
// evicts its cached host.
//
// Each Client owns its cache and its credential. Do not share one Client
// across credentials; construct one per session.
//
// # Errors
//
// Failed calls return one of three typed errors: AuthenticationError
// (missing or rejected key), RateLimitError (HTTP 429, carrying the
// server's Retry-After delay), or APIError (any other non-2xx, carrying the
// status and the server's message). Helpers IsAuthentication, IsRateLimit,
// and IsNotFound make it easy to branch on the common cases. The client
// never retries on its own unless Config.RetryMax opts in.
//
// # Pagination
//
// List operations accept ListParams and return an optional opaque
// continuation token in Pagination.Next; an absent token means end of
// results.
package vapi
