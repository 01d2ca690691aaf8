package vapi

import (
	"context"
	"time"
)

// ControlPlaneClients groups the clients that talk to the fixed control-plane
// host: index lifecycle, backups, restores, and hosted inference.
type ControlPlaneClients interface {
	Indexes() IndexesClient
	Backups() BackupsClient
	Restores() RestoresClient
	Inference() InferenceClient
}

// DataPlaneClients groups the clients that talk to per-index hosts. The host
// is discovered through the control plane on first use and cached for the
// lifetime of the Client.
type DataPlaneClients interface {
	Vectors() VectorsClient
	Namespaces() NamespacesClient
	Imports() ImportsClient
}

// Client is the full API surface. One Client carries one credential and one
// endpoint cache; construct a fresh Client per credential, never a shared
// singleton.
type Client interface {
	ControlPlaneClients
	DataPlaneClients
}

// IndexesClient manages index lifecycle on the control plane.
type IndexesClient interface {
	List(ctx context.Context) (*IndexList, error)
	Get(ctx context.Context, name string) (*Index, error)
	Create(ctx context.Context, request *IndexCreateRequest) (*Index, error)
	CreateForModel(ctx context.Context, request *IndexCreateForModelRequest) (*Index, error)
	Configure(ctx context.Context, name string, request *IndexConfigureRequest) (*Index, error)
	Delete(ctx context.Context, name string) error
}

// BackupsClient manages index backups on the control plane.
type BackupsClient interface {
	Create(ctx context.Context, indexName string, request *BackupCreateRequest) (*Backup, error)
	List(ctx context.Context, params *ListParams) (*BackupList, error)
	ListForIndex(ctx context.Context, indexName string, params *ListParams) (*BackupList, error)
	Get(ctx context.Context, backupID string) (*Backup, error)
	Delete(ctx context.Context, backupID string) error
}

// RestoresClient rebuilds indexes from backups and tracks restore jobs.
type RestoresClient interface {
	CreateIndexFromBackup(ctx context.Context, backupID string, request *CreateIndexFromBackupRequest) (*CreateIndexFromBackupResponse, error)
	List(ctx context.Context, params *ListParams) (*RestoreJobList, error)
	Get(ctx context.Context, restoreJobID string) (*RestoreJob, error)
}

// InferenceClient calls account-level hosted models.
type InferenceClient interface {
	Embed(ctx context.Context, request *EmbedRequest) (*EmbedResponse, error)
	Rerank(ctx context.Context, request *RerankRequest) (*RerankResponse, error)
	ListModels(ctx context.Context) (*ModelList, error)
	GetModel(ctx context.Context, model string) (*ModelInfo, error)
}

// VectorsClient performs vector CRUD against one index's data plane.
type VectorsClient interface {
	Upsert(ctx context.Context, indexName string, request *UpsertRequest) (*UpsertResponse, error)
	Query(ctx context.Context, indexName string, request *QueryRequest) (*QueryResponse, error)
	Fetch(ctx context.Context, indexName string, ids []string, namespace string) (*FetchResponse, error)
	Update(ctx context.Context, indexName string, request *UpdateRequest) error
	Delete(ctx context.Context, indexName string, request *DeleteRequest) error
	ListIDs(ctx context.Context, indexName string, params *ListParams) (*ListVectorsResponse, error)
	DescribeStats(ctx context.Context, indexName string, filter Metadata) (*IndexStats, error)
}

// NamespacesClient manages namespaces within one index.
type NamespacesClient interface {
	List(ctx context.Context, indexName string, params *ListParams) (*NamespaceList, error)
	Get(ctx context.Context, indexName, namespace string) (*NamespaceDescription, error)
	Delete(ctx context.Context, indexName, namespace string) error
}

// ImportsClient manages bulk imports into one index.
type ImportsClient interface {
	Start(ctx context.Context, indexName string, request *StartImportRequest) (*StartImportResponse, error)
	List(ctx context.Context, indexName string, params *ListParams) (*ImportList, error)
	Get(ctx context.Context, indexName, importID string) (*Import, error)
	Cancel(ctx context.Context, indexName, importID string) error
}

// Logger is the structured logging interface the transport reports through.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config builds a Client.
//
// APIKey is the caller's secret. A missing key is not a construction error;
// it surfaces as an AuthenticationError on the first request attempt, before
// any network call.
//
// The client performs no automatic retries unless RetryMax is set; a
// RateLimitError or APIError is returned to the caller, who owns retry
// policy. RetryMax > 0 enables transport-level retries for connection
// failures, 5xx, and 429 responses.
type Config struct {
	// APIKey: the secret attached to every request as the Api-Key header.
	APIKey string

	// Endpoint: control-plane base URL. Defaults to the managed service
	// endpoint; the constructor trims a trailing slash and adds "https://"
	// when no scheme is present.
	Endpoint string

	// HTTPTimeout: default transport timeout. Most calls should rely on
	// context deadlines instead.
	HTTPTimeout time.Duration

	// RetryMax: maximum transport-level retries. 0 disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries, applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries, applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the transport.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
