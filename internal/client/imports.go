package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// ImportsClient implements the vapi.ImportsClient interface.
type ImportsClient struct {
	resolver *endpointResolver
}

// NewImportsClient creates a new ImportsClient.
func NewImportsClient(resolver *endpointResolver) *ImportsClient {
	return &ImportsClient{
		resolver: resolver,
	}
}

// Start begins a bulk import from an object-storage URI. The server accepts
// the request asynchronously; poll the returned import for progress.
func (c *ImportsClient) Start(ctx context.Context, indexName string, request *vapi.StartImportRequest) (*vapi.StartImportResponse, error) {
	if request == nil || request.URI == "" {
		return nil, vapi.ErrImportURIRequired
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Post(ctx, "/bulk/imports", request)
	if err != nil {
		return nil, fmt.Errorf("starting import: %w", err)
	}

	var result vapi.StartImportResponse

	// 202 may arrive without a body.
	if len(resp.Body) > 0 {
		err = json.Unmarshal(resp.Body, &result)
		if err != nil {
			return nil, fmt.Errorf("parsing import response: %w", err)
		}
	}

	return &result, nil
}

// List pages through the imports of an index.
func (c *ImportsClient) List(ctx context.Context, indexName string, params *vapi.ListParams) (*vapi.ImportList, error) {
	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Get(ctx, "/bulk/imports", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}

	var list vapi.ImportList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing import list response: %w", err)
	}

	if list.Data == nil {
		list.Data = []vapi.Import{}
	}

	return &list, nil
}

// Get describes one import.
func (c *ImportsClient) Get(ctx context.Context, indexName, importID string) (*vapi.Import, error) {
	if importID == "" {
		return nil, vapi.ErrImportIDRequired
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	path := "/bulk/imports/" + url.PathEscape(importID)

	resp, err := transport.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("describing import: %w", err)
	}

	var imp vapi.Import

	err = json.Unmarshal(resp.Body, &imp)
	if err != nil {
		return nil, fmt.Errorf("parsing import response: %w", err)
	}

	return &imp, nil
}

// Cancel stops an import that has not finished.
func (c *ImportsClient) Cancel(ctx context.Context, indexName, importID string) error {
	if importID == "" {
		return vapi.ErrImportIDRequired
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return err
	}

	path := "/bulk/imports/" + url.PathEscape(importID)

	_, err = transport.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("cancelling import: %w", err)
	}

	return nil
}
