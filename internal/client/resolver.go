package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	internalhttp "github.com/nimbusvec/vapi/internal/http"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// endpointResolver maps index names to data-plane transports. A transport is
// cached only after a successful control-plane describe, and evicted exactly
// when the index is deleted through this client. Entries never expire on a
// timer; an address changed out-of-band is an accepted limitation.
//
// The resolver is the single place the control-plane/data-plane routing
// decision lives: data-plane resource clients can only obtain a transport
// through Resolve.
type endpointResolver struct {
	describe func(ctx context.Context, name string) (*vapi.Index, error)
	apiKey   string
	opts     []internalhttp.Option

	mu         sync.RWMutex
	transports map[string]*internalhttp.Client
}

func newEndpointResolver(
	describe func(ctx context.Context, name string) (*vapi.Index, error),
	apiKey string,
	opts []internalhttp.Option,
) *endpointResolver {
	return &endpointResolver{
		describe:   describe,
		apiKey:     apiKey,
		opts:       opts,
		transports: make(map[string]*internalhttp.Client),
	}
}

// Resolve returns the data-plane transport for an index, performing the
// control-plane describe round-trip on first use. A describe failure
// propagates unchanged and caches nothing.
func (r *endpointResolver) Resolve(ctx context.Context, indexName string) (*internalhttp.Client, error) {
	if indexName == "" {
		return nil, vapi.ErrIndexNameRequired
	}

	r.mu.RLock()
	transport, ok := r.transports[indexName]
	r.mu.RUnlock()

	if ok {
		return transport, nil
	}

	index, err := r.describe(ctx, indexName)
	if err != nil {
		return nil, err
	}

	// A resolution cancelled mid-flight must not populate the cache.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolving host for index %q: %w", indexName, err)
	}

	host := strings.TrimSuffix(index.Host, "/")
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	transport = internalhttp.NewClient(host, r.apiKey, r.opts...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.transports[indexName]; ok {
		return existing, nil
	}

	r.transports[indexName] = transport

	return transport, nil
}

// Evict drops the cached transport for an index. Called synchronously by a
// successful index delete, before the delete returns to the caller.
func (r *endpointResolver) Evict(indexName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.transports, indexName)
}
