package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// VectorsClient implements the vapi.VectorsClient interface. All operations
// run against the index's data-plane host, resolved (and cached) through the
// endpoint resolver.
type VectorsClient struct {
	resolver *endpointResolver
}

// NewVectorsClient creates a new VectorsClient.
func NewVectorsClient(resolver *endpointResolver) *VectorsClient {
	return &VectorsClient{
		resolver: resolver,
	}
}

// Upsert writes a batch of vectors into a namespace.
func (c *VectorsClient) Upsert(ctx context.Context, indexName string, request *vapi.UpsertRequest) (*vapi.UpsertResponse, error) {
	if request == nil || len(request.Vectors) == 0 {
		return nil, vapi.ErrNoVectors
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Post(ctx, "/vectors/upsert", request)
	if err != nil {
		return nil, fmt.Errorf("upserting vectors: %w", err)
	}

	var result vapi.UpsertResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing upsert response: %w", err)
	}

	return &result, nil
}

// Query ranks stored vectors by similarity. Exactly one of an explicit
// vector or a reference vector id must be supplied; both and neither are
// rejected locally, before any network call.
func (c *VectorsClient) Query(ctx context.Context, indexName string, request *vapi.QueryRequest) (*vapi.QueryResponse, error) {
	if request == nil || (len(request.Vector) == 0 && request.ID == "") {
		return nil, vapi.ErrQueryVectorOrID
	}

	if len(request.Vector) > 0 && request.ID != "" {
		return nil, vapi.ErrQueryVectorAndID
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Post(ctx, "/query", request)
	if err != nil {
		return nil, fmt.Errorf("querying vectors: %w", err)
	}

	var result vapi.QueryResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}

	if result.Matches == nil {
		result.Matches = []vapi.ScoredVector{}
	}

	return &result, nil
}

// Fetch looks up vectors by id.
func (c *VectorsClient) Fetch(ctx context.Context, indexName string, ids []string, namespace string) (*vapi.FetchResponse, error) {
	if len(ids) == 0 {
		return nil, vapi.ErrNoIDs
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	query := url.Values{"ids": ids}
	if namespace != "" {
		query.Set("namespace", namespace)
	}

	resp, err := transport.Get(ctx, "/vectors/fetch", query)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors: %w", err)
	}

	var result vapi.FetchResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing fetch response: %w", err)
	}

	if result.Vectors == nil {
		result.Vectors = map[string]vapi.Vector{}
	}

	return &result, nil
}

// Update patches one vector in place. At least one of new values or a
// metadata patch must be supplied; checked locally before dispatch.
func (c *VectorsClient) Update(ctx context.Context, indexName string, request *vapi.UpdateRequest) error {
	if request == nil || request.ID == "" {
		return vapi.ErrVectorIDRequired
	}

	if len(request.Values) == 0 && request.SparseValues == nil && len(request.SetMetadata) == 0 {
		return vapi.ErrUpdateNothingToDo
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return err
	}

	_, err = transport.Post(ctx, "/vectors/update", request)
	if err != nil {
		return fmt.Errorf("updating vector: %w", err)
	}

	return nil
}

// Delete removes vectors. At least one of an id list, a metadata filter, or
// the delete-all flag must be supplied; checked locally before dispatch.
func (c *VectorsClient) Delete(ctx context.Context, indexName string, request *vapi.DeleteRequest) error {
	if request == nil || (len(request.IDs) == 0 && !request.DeleteAll && len(request.Filter) == 0) {
		return vapi.ErrDeleteSelectorMissing
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return err
	}

	_, err = transport.Post(ctx, "/vectors/delete", request)
	if err != nil {
		return fmt.Errorf("deleting vectors: %w", err)
	}

	return nil
}

// ListIDs pages through the vector ids of a namespace.
func (c *VectorsClient) ListIDs(ctx context.Context, indexName string, params *vapi.ListParams) (*vapi.ListVectorsResponse, error) {
	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Get(ctx, "/vectors/list", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing vector ids: %w", err)
	}

	var result vapi.ListVectorsResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing vector list response: %w", err)
	}

	if result.Vectors == nil {
		result.Vectors = []vapi.VectorID{}
	}

	return &result, nil
}

// DescribeStats aggregates storage statistics for the index, optionally
// narrowed by a metadata filter.
func (c *VectorsClient) DescribeStats(ctx context.Context, indexName string, filter vapi.Metadata) (*vapi.IndexStats, error) {
	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Post(ctx, "/describe_index_stats", &vapi.StatsRequest{Filter: filter})
	if err != nil {
		return nil, fmt.Errorf("describing index stats: %w", err)
	}

	var stats vapi.IndexStats

	err = json.Unmarshal(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing index stats response: %w", err)
	}

	if stats.Namespaces == nil {
		stats.Namespaces = map[string]vapi.NamespaceSummary{}
	}

	return &stats, nil
}
