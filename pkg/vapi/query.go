package vapi

import (
	"net/url"
	"strconv"
)

// ListParams expresses the common options of paginated list operations.
type ListParams struct {
	// Limit caps the page size. 0 leaves the server default in place.
	Limit int

	// PaginationToken continues a previous listing. Opaque; an empty token
	// starts from the beginning.
	PaginationToken string

	// Prefix narrows vector-ID listings to IDs with this prefix.
	Prefix string

	// Namespace scopes data-plane listings to one namespace.
	Namespace string
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithLimit sets the page size.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithToken sets the continuation token.
func (p *ListParams) WithToken(token string) *ListParams {
	p.PaginationToken = token

	return p
}

// WithPrefix sets the vector-ID prefix filter.
func (p *ListParams) WithPrefix(prefix string) *ListParams {
	p.Prefix = prefix

	return p
}

// WithNamespace scopes the listing to a namespace.
func (p *ListParams) WithNamespace(namespace string) *ListParams {
	p.Namespace = namespace

	return p
}

// ToValues converts the parameters to URL query values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.PaginationToken != "" {
		values.Set("paginationToken", p.PaginationToken)
	}

	if p.Prefix != "" {
		values.Set("prefix", p.Prefix)
	}

	if p.Namespace != "" {
		values.Set("namespace", p.Namespace)
	}

	return values
}
