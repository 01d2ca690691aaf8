// Package commands implements the vapi CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nimbusvec/vapi/pkg/vapi"
	"github.com/nimbusvec/vapi/pkg/vapiclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured = errors.New("no API key configured, use 'vapi config set-key' or --api-key")
	ErrIndexNameRequired   = errors.New("index name is required")
	ErrVectorIDsRequired   = errors.New("at least one vector id is required (--id)")
	ErrValuesRequired      = errors.New("vector values are required (--values)")
	ErrInvalidValuesFormat = errors.New("values must be a comma-separated list of numbers")
	ErrInvalidMetadataJSON = errors.New("metadata must be a JSON object")
	ErrInvalidFilterJSON   = errors.New("filter must be a JSON object")
)

// createClient builds a service client from the resolved configuration. The
// API key may come from the --api-key flag, the VAPI_API_KEY environment
// variable, or the config file.
func createClient() (vapi.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &vapi.Config{
		APIKey:   apiKey,
		Endpoint: viper.GetString("endpoint"),
		Debug:    viper.GetBool("verbose"),
	}

	client, err := vapiclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer provides consistent JSON output rendering.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer provides consistent YAML output rendering.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// parseValues parses a comma-separated list of floats.
func parseValues(raw string) ([]float32, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]float32, 0, len(parts))

	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValuesFormat, part)
		}

		values = append(values, float32(value))
	}

	return values, nil
}

// parseMetadata parses a JSON object from a flag value.
func parseMetadata(raw string) (vapi.Metadata, error) {
	if raw == "" {
		return nil, nil
	}

	var metadata vapi.Metadata

	err := json.Unmarshal([]byte(raw), &metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadataJSON, err)
	}

	return metadata, nil
}

// parseFilter parses a JSON metadata filter from a flag value.
func parseFilter(raw string) (vapi.Metadata, error) {
	if raw == "" {
		return nil, nil
	}

	var filter vapi.Metadata

	err := json.Unmarshal([]byte(raw), &filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilterJSON, err)
	}

	return filter, nil
}

// orDash replaces an empty string with the N/A placeholder for table cells.
func orDash(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// listParamsFromFlags assembles common pagination parameters.
func listParamsFromFlags(limit int, token, prefix, namespace string) *vapi.ListParams {
	params := vapi.NewListParams()

	if limit > 0 {
		params.WithLimit(limit)
	}

	if token != "" {
		params.WithToken(token)
	}

	if prefix != "" {
		params.WithPrefix(prefix)
	}

	if namespace != "" {
		params.WithNamespace(namespace)
	}

	return params
}

// printNextToken reports the continuation token of a listing, if any.
func printNextToken(pagination *vapi.Pagination) {
	if pagination != nil && pagination.Next != "" {
		fmt.Fprintf(os.Stdout, "\nMore results available, continue with --token %s\n", pagination.Next)
	}
}
