package vapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AuthenticationError reports a missing or rejected credential. It is never
// retryable, and the response body is never surfaced through it.
type AuthenticationError struct {
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return e.Message
}

// RateLimitError reports server-imposed throttling. RetryAfter is the
// server-supplied delay, or DefaultRetryAfter when the header was absent.
type RateLimitError struct {
	RetryAfter time.Duration `json:"retry_after" yaml:"retry_after"`
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// APIError is any other non-2xx outcome. Message is extracted from the
// response body when the server sent a structured error, else a generic
// fallback naming the status.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// DefaultRetryAfter applies when a 429 response carries no Retry-After header.
const DefaultRetryAfter = 60 * time.Second

// Fixed classified errors.
var (
	// ErrMissingAPIKey is returned before any network call when the
	// credential is absent.
	ErrMissingAPIKey = &AuthenticationError{Message: "missing API key"}

	// ErrUnauthorized is the fixed message for 401/403 responses. Body
	// contents are deliberately not included.
	ErrUnauthorized = &AuthenticationError{Message: "unauthorized: invalid or rejected API key"}
)

// Local precondition errors, raised before any network attempt.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrIndexNameRequired     = errors.New("index name is required")
	ErrQueryVectorAndID      = errors.New("query accepts a vector or a vector id, not both")
	ErrQueryVectorOrID       = errors.New("query requires a vector or a vector id")
	ErrUpdateNothingToDo     = errors.New("update requires new values or a metadata patch")
	ErrDeleteSelectorMissing = errors.New("delete requires ids, a filter, or delete-all")
	ErrNoVectors             = errors.New("at least one vector is required")
	ErrImportURIRequired     = errors.New("import uri is required")
	ErrModelRequired         = errors.New("model name is required")
	ErrNoInputs              = errors.New("at least one input is required")
	ErrNoDocuments           = errors.New("at least one document is required")
	ErrBackupIDRequired      = errors.New("backup id is required")
	ErrNoIDs                 = errors.New("at least one vector id is required")
	ErrVectorIDRequired      = errors.New("vector id is required")
	ErrNamespaceRequired     = errors.New("namespace is required")
	ErrImportIDRequired      = errors.New("import id is required")
	ErrRestoreJobIDRequired  = errors.New("restore job id is required")
)

// IsAuthentication checks whether the error is a credential failure.
func IsAuthentication(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsRateLimit checks whether the error is server-imposed throttling.
func IsRateLimit(err error) bool {
	rlErr := &RateLimitError{}

	return errors.As(err, &rlErr)
}

// RetryAfter returns the throttling delay carried by err, or zero when err is
// not a rate-limit error.
func RetryAfter(err error) time.Duration {
	rlErr := &RateLimitError{}
	if errors.As(err, &rlErr) {
		return rlErr.RetryAfter
	}

	return 0
}

// IsNotFound checks whether the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}
