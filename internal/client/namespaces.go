package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// NamespacesClient implements the vapi.NamespacesClient interface.
type NamespacesClient struct {
	resolver *endpointResolver
}

// NewNamespacesClient creates a new NamespacesClient.
func NewNamespacesClient(resolver *endpointResolver) *NamespacesClient {
	return &NamespacesClient{
		resolver: resolver,
	}
}

// List pages through the namespaces of an index.
func (c *NamespacesClient) List(ctx context.Context, indexName string, params *vapi.ListParams) (*vapi.NamespaceList, error) {
	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	resp, err := transport.Get(ctx, "/namespaces", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing namespaces: %w", err)
	}

	var list vapi.NamespaceList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing namespace list response: %w", err)
	}

	if list.Namespaces == nil {
		list.Namespaces = []vapi.NamespaceDescription{}
	}

	return &list, nil
}

// Get describes one namespace.
func (c *NamespacesClient) Get(ctx context.Context, indexName, namespace string) (*vapi.NamespaceDescription, error) {
	if namespace == "" {
		return nil, vapi.ErrNamespaceRequired
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return nil, err
	}

	path := "/namespaces/" + url.PathEscape(namespace)

	resp, err := transport.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("describing namespace: %w", err)
	}

	var desc vapi.NamespaceDescription

	err = json.Unmarshal(resp.Body, &desc)
	if err != nil {
		return nil, fmt.Errorf("parsing namespace response: %w", err)
	}

	return &desc, nil
}

// Delete removes a namespace and every vector in it.
func (c *NamespacesClient) Delete(ctx context.Context, indexName, namespace string) error {
	if namespace == "" {
		return vapi.ErrNamespaceRequired
	}

	transport, err := c.resolver.Resolve(ctx, indexName)
	if err != nil {
		return err
	}

	path := "/namespaces/" + url.PathEscape(namespace)

	_, err = transport.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting namespace: %w", err)
	}

	return nil
}
