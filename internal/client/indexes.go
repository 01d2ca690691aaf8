package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/nimbusvec/vapi/internal/http"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// IndexesClient implements the vapi.IndexesClient interface.
type IndexesClient struct {
	httpClient *internalhttp.Client

	// evict drops the index's cached data-plane transport. Wired by the
	// parent client; nil means no cache to maintain.
	evict func(name string)
}

// NewIndexesClient creates a new IndexesClient.
func NewIndexesClient(httpClient *internalhttp.Client) *IndexesClient {
	return &IndexesClient{
		httpClient: httpClient,
	}
}

// List lists all indexes.
func (c *IndexesClient) List(ctx context.Context) (*vapi.IndexList, error) {
	resp, err := c.httpClient.Get(ctx, "/indexes", nil)
	if err != nil {
		return nil, fmt.Errorf("listing indexes: %w", err)
	}

	var list vapi.IndexList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing index list response: %w", err)
	}

	if list.Indexes == nil {
		list.Indexes = []vapi.Index{}
	}

	return &list, nil
}

// Get describes a specific index.
func (c *IndexesClient) Get(ctx context.Context, name string) (*vapi.Index, error) {
	if name == "" {
		return nil, vapi.ErrIndexNameRequired
	}

	path := "/indexes/" + url.PathEscape(name)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("describing index: %w", err)
	}

	var index vapi.Index

	err = json.Unmarshal(resp.Body, &index)
	if err != nil {
		return nil, fmt.Errorf("parsing index response: %w", err)
	}

	return &index, nil
}

// Create creates a new index.
func (c *IndexesClient) Create(ctx context.Context, request *vapi.IndexCreateRequest) (*vapi.Index, error) {
	resp, err := c.httpClient.Post(ctx, "/indexes", request)
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	var index vapi.Index

	err = json.Unmarshal(resp.Body, &index)
	if err != nil {
		return nil, fmt.Errorf("parsing index response: %w", err)
	}

	return &index, nil
}

// CreateForModel creates an index sized for a hosted embedding model.
func (c *IndexesClient) CreateForModel(ctx context.Context, request *vapi.IndexCreateForModelRequest) (*vapi.Index, error) {
	resp, err := c.httpClient.Post(ctx, "/indexes/create-for-model", request)
	if err != nil {
		return nil, fmt.Errorf("creating index for model: %w", err)
	}

	var index vapi.Index

	err = json.Unmarshal(resp.Body, &index)
	if err != nil {
		return nil, fmt.Errorf("parsing index response: %w", err)
	}

	return &index, nil
}

// Configure changes mutable index settings.
func (c *IndexesClient) Configure(ctx context.Context, name string, request *vapi.IndexConfigureRequest) (*vapi.Index, error) {
	if name == "" {
		return nil, vapi.ErrIndexNameRequired
	}

	path := "/indexes/" + url.PathEscape(name)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("configuring index: %w", err)
	}

	var index vapi.Index

	err = json.Unmarshal(resp.Body, &index)
	if err != nil {
		return nil, fmt.Errorf("parsing index response: %w", err)
	}

	return &index, nil
}

// Delete deletes an index. The index's cached data-plane address is evicted
// before Delete returns, so a later call for the same name resolves afresh.
func (c *IndexesClient) Delete(ctx context.Context, name string) error {
	if name == "" {
		return vapi.ErrIndexNameRequired
	}

	path := "/indexes/" + url.PathEscape(name)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting index: %w", err)
	}

	if c.evict != nil {
		c.evict(name)
	}

	return nil
}
