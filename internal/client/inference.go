package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/nimbusvec/vapi/internal/http"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// InferenceClient implements the vapi.InferenceClient interface.
type InferenceClient struct {
	httpClient *internalhttp.Client
}

// NewInferenceClient creates a new InferenceClient.
func NewInferenceClient(httpClient *internalhttp.Client) *InferenceClient {
	return &InferenceClient{
		httpClient: httpClient,
	}
}

// Embed vectorizes a batch of texts with a hosted model.
func (c *InferenceClient) Embed(ctx context.Context, request *vapi.EmbedRequest) (*vapi.EmbedResponse, error) {
	if request == nil || request.Model == "" {
		return nil, vapi.ErrModelRequired
	}

	if len(request.Inputs) == 0 {
		return nil, vapi.ErrNoInputs
	}

	resp, err := c.httpClient.Post(ctx, "/embed", request)
	if err != nil {
		return nil, fmt.Errorf("embedding inputs: %w", err)
	}

	var result vapi.EmbedResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing embed response: %w", err)
	}

	return &result, nil
}

// Rerank reorders documents by relevance to a query.
func (c *InferenceClient) Rerank(ctx context.Context, request *vapi.RerankRequest) (*vapi.RerankResponse, error) {
	if request == nil || request.Model == "" {
		return nil, vapi.ErrModelRequired
	}

	if len(request.Documents) == 0 {
		return nil, vapi.ErrNoDocuments
	}

	resp, err := c.httpClient.Post(ctx, "/rerank", request)
	if err != nil {
		return nil, fmt.Errorf("reranking documents: %w", err)
	}

	var result vapi.RerankResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing rerank response: %w", err)
	}

	return &result, nil
}

// ListModels lists the hosted inference models.
func (c *InferenceClient) ListModels(ctx context.Context) (*vapi.ModelList, error) {
	resp, err := c.httpClient.Get(ctx, "/models", nil)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}

	var list vapi.ModelList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing model list response: %w", err)
	}

	if list.Models == nil {
		list.Models = []vapi.ModelInfo{}
	}

	return &list, nil
}

// GetModel describes one hosted inference model.
func (c *InferenceClient) GetModel(ctx context.Context, model string) (*vapi.ModelInfo, error) {
	if model == "" {
		return nil, vapi.ErrModelRequired
	}

	path := "/models/" + url.PathEscape(model)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("describing model: %w", err)
	}

	var info vapi.ModelInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing model response: %w", err)
	}

	return &info, nil
}
