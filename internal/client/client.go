// Package client implements the vapi.Client facade. One Client carries one
// credential and one data-plane endpoint cache.
package client

import (
	"github.com/nimbusvec/vapi/internal/constants"
	internalhttp "github.com/nimbusvec/vapi/internal/http"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// Client implements the vapi.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	resolver   *endpointResolver
	baseURL    string
	logger     vapi.Logger

	// Resource clients
	indexes    vapi.IndexesClient
	backups    vapi.BackupsClient
	restores   vapi.RestoresClient
	inference  vapi.InferenceClient
	vectors    vapi.VectorsClient
	namespaces vapi.NamespacesClient
	imports    vapi.ImportsClient
}

// New creates a new service API client. Endpoint defaults to the managed
// control plane. A missing API key is not rejected here; it fails on the
// first request attempt, before any network call.
func New(config *vapi.Config) (*Client, error) {
	if config == nil {
		return nil, vapi.ErrConfigRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := internalhttp.NewClient(endpoint, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients(config, httpOpts)

	return client, nil
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *vapi.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients wires the resource clients together. The
// indexes client doubles as the resolver's describe source, and index
// deletion evicts the resolver's cache entry; data-plane clients reach their
// per-index host only through the resolver.
func (c *Client) initializeResourceClients(config *vapi.Config, httpOpts []internalhttp.Option) {
	indexes := NewIndexesClient(c.httpClient)
	c.resolver = newEndpointResolver(indexes.Get, config.APIKey, httpOpts)
	indexes.evict = c.resolver.Evict

	c.indexes = indexes
	c.backups = NewBackupsClient(c.httpClient)
	c.restores = NewRestoresClient(c.httpClient)
	c.inference = NewInferenceClient(c.httpClient)
	c.vectors = NewVectorsClient(c.resolver)
	c.namespaces = NewNamespacesClient(c.resolver)
	c.imports = NewImportsClient(c.resolver)
}

// Indexes implements vapi.Client.Indexes.
func (c *Client) Indexes() vapi.IndexesClient {
	return c.indexes
}

// Backups implements vapi.Client.Backups.
func (c *Client) Backups() vapi.BackupsClient {
	return c.backups
}

// Restores implements vapi.Client.Restores.
func (c *Client) Restores() vapi.RestoresClient {
	return c.restores
}

// Inference implements vapi.Client.Inference.
func (c *Client) Inference() vapi.InferenceClient {
	return c.inference
}

// Vectors implements vapi.Client.Vectors.
func (c *Client) Vectors() vapi.VectorsClient {
	return c.vectors
}

// Namespaces implements vapi.Client.Namespaces.
func (c *Client) Namespaces() vapi.NamespacesClient {
	return c.namespaces
}

// Imports implements vapi.Client.Imports.
func (c *Client) Imports() vapi.ImportsClient {
	return c.imports
}

// loggerAdapter adapts vapi.Logger to the transport's Logger.
type loggerAdapter struct {
	logger vapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
