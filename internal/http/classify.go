package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// Classify maps one HTTP outcome to the typed error taxonomy. Rules apply in
// order:
//
//  1. 429         -> RateLimitError, Retry-After header or the 60s default
//  2. 401/403     -> AuthenticationError with a fixed message, body discarded
//  3. other non-2xx -> APIError with the status and the body's error message
//  4. 2xx         -> nil; body interpretation is the caller's concern
//
// Returning nil for every 2xx keeps 202/204 and empty-body responses valid
// successes.
func Classify(statusCode int, headers http.Header, body []byte) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return &vapi.RateLimitError{RetryAfter: retryAfter(headers)}

	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return vapi.ErrUnauthorized

	case statusCode >= 200 && statusCode < 300:
		return nil

	default:
		return &vapi.APIError{
			StatusCode: statusCode,
			Message:    errorMessage(statusCode, body),
		}
	}
}

// retryAfter reads the Retry-After header as integer seconds, defaulting
// when absent or malformed.
func retryAfter(headers http.Header) time.Duration {
	if headers != nil {
		if value := headers.Get("Retry-After"); value != "" {
			if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}

	return vapi.DefaultRetryAfter
}

// errorMessage extracts the server's message from a structured error body,
// trying the nested "error.message" field first, then a top-level "message".
func errorMessage(statusCode int, body []byte) string {
	fallback := fmt.Sprintf("API error: %d", statusCode)

	if len(body) == 0 {
		return fallback
	}

	var envelope struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return fallback
	}

	if envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	if envelope.Message != "" {
		return envelope.Message
	}

	return fallback
}
