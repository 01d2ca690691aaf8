// Package vapiclient provides the main entry point for creating NimbusVec
// API clients.
package vapiclient

import (
	"fmt"
	"strings"

	"github.com/nimbusvec/vapi/internal/client"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// New creates a new service API client from config.
//
// Each returned client owns a private data-plane endpoint cache scoped to
// config's credential. Construct one client per credential/session; sharing
// a client across credentials would leak resolved addresses between tenants.
func New(config *vapi.Config) (vapi.Client, error) {
	if config == nil {
		return nil, vapi.ErrConfigRequired
	}

	if config.Endpoint != "" {
		config.Endpoint = normalizeEndpoint(config.Endpoint)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
