package constants

import "time"

// API surface.
const (
	// DefaultAPIEndpoint is the control-plane base URL used when the
	// configuration does not name one.
	DefaultAPIEndpoint = "https://api.nimbusvec.io"

	// APIVersion is the wire API version every request pins.
	APIVersion = "2025-04"

	// HeaderAPIKey carries the caller's secret.
	HeaderAPIKey = "Api-Key"

	// HeaderAPIVersion pins the wire API version.
	HeaderAPIVersion = "X-Api-Version"

	// ContentTypeJSON is the only content type the API speaks.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies this client on the wire.
	DefaultUserAgent = "vapi-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Rate limiting.
const (
	// DefaultRetryAfterSeconds applies when a 429 response carries no
	// Retry-After header.
	DefaultRetryAfterSeconds = 60
)

// Pagination and display limits.
const (
	// DefaultListLimit is the default page size for list operations.
	DefaultListLimit = 100

	// DefaultTopK is the default match count for similarity queries.
	DefaultTopK = 10
)
