package vapi

// Metric is the distance metric an index ranks matches with.
type Metric string

const (
	MetricCosine     Metric = "cosine"
	MetricEuclidean  Metric = "euclidean"
	MetricDotProduct Metric = "dotproduct"
)

// Index describes a vector index and its deployment.
type Index struct {
	Name               string            `json:"name"                          yaml:"name"`
	Dimension          int32             `json:"dimension,omitempty"           yaml:"dimension,omitempty"`
	Metric             Metric            `json:"metric"                        yaml:"metric"`
	Host               string            `json:"host"                          yaml:"host"`
	DeletionProtection string            `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
	Tags               map[string]string `json:"tags,omitempty"                yaml:"tags,omitempty"`
	Spec               IndexSpec         `json:"spec"                          yaml:"spec"`
	Status             IndexStatus       `json:"status"                        yaml:"status"`
}

// IndexSpec holds exactly one deployment shape.
type IndexSpec struct {
	Serverless *ServerlessSpec `json:"serverless,omitempty" yaml:"serverless,omitempty"`
	Pod        *PodSpec        `json:"pod,omitempty"        yaml:"pod,omitempty"`
}

// ServerlessSpec places an index on managed serverless capacity.
type ServerlessSpec struct {
	Cloud  string `json:"cloud"  yaml:"cloud"`
	Region string `json:"region" yaml:"region"`
}

// PodSpec places an index on dedicated pods.
type PodSpec struct {
	Environment      string `json:"environment"                 yaml:"environment"`
	PodType          string `json:"pod_type"                    yaml:"pod_type"`
	Pods             int    `json:"pods"                        yaml:"pods"`
	Replicas         int    `json:"replicas"                    yaml:"replicas"`
	Shards           int    `json:"shards"                      yaml:"shards"`
	SourceCollection string `json:"source_collection,omitempty" yaml:"source_collection,omitempty"`
}

// IndexStatus reports readiness of an index.
type IndexStatus struct {
	Ready bool   `json:"ready" yaml:"ready"`
	State string `json:"state" yaml:"state"`
}

// IndexList is the envelope for index listings.
type IndexList struct {
	Indexes []Index `json:"indexes" yaml:"indexes"`
}

// IndexCreateRequest creates a new index.
type IndexCreateRequest struct {
	Name               string            `json:"name"                          yaml:"name"`
	Dimension          int32             `json:"dimension,omitempty"           yaml:"dimension,omitempty"`
	Metric             Metric            `json:"metric,omitempty"              yaml:"metric,omitempty"`
	Spec               IndexSpec         `json:"spec"                          yaml:"spec"`
	DeletionProtection string            `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
	Tags               map[string]string `json:"tags,omitempty"                yaml:"tags,omitempty"`
}

// IndexEmbedConfig ties a hosted embedding model to an index.
type IndexEmbedConfig struct {
	Model    string            `json:"model"               yaml:"model"`
	Metric   Metric            `json:"metric,omitempty"    yaml:"metric,omitempty"`
	FieldMap map[string]string `json:"field_map,omitempty" yaml:"field_map,omitempty"`
}

// IndexCreateForModelRequest creates an index sized for a hosted embedding
// model, so callers can upsert raw text without computing vectors themselves.
type IndexCreateForModelRequest struct {
	Name               string            `json:"name"                          yaml:"name"`
	Cloud              string            `json:"cloud"                         yaml:"cloud"`
	Region             string            `json:"region"                        yaml:"region"`
	Embed              IndexEmbedConfig  `json:"embed"                         yaml:"embed"`
	DeletionProtection string            `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
	Tags               map[string]string `json:"tags,omitempty"                yaml:"tags,omitempty"`
}

// IndexConfigureRequest changes mutable index settings.
type IndexConfigureRequest struct {
	Spec               *IndexConfigureSpec `json:"spec,omitempty"                yaml:"spec,omitempty"`
	DeletionProtection string              `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
	Tags               map[string]string   `json:"tags,omitempty"                yaml:"tags,omitempty"`
}

// IndexConfigureSpec carries the pod settings that may change after creation.
type IndexConfigureSpec struct {
	Pod *PodConfigureSpec `json:"pod,omitempty" yaml:"pod,omitempty"`
}

// PodConfigureSpec scales a pod-based index.
type PodConfigureSpec struct {
	Replicas int    `json:"replicas,omitempty" yaml:"replicas,omitempty"`
	PodType  string `json:"pod_type,omitempty" yaml:"pod_type,omitempty"`
}

// Metadata is the free-form per-vector metadata map. Values follow the JSON
// type system (string, number, bool, list of strings).
type Metadata map[string]interface{}

// SparseValues is the sparse component of a hybrid vector.
type SparseValues struct {
	Indices []uint32  `json:"indices" yaml:"indices"`
	Values  []float32 `json:"values"  yaml:"values"`
}

// Vector is one dense (optionally hybrid) record.
type Vector struct {
	ID           string        `json:"id"                      yaml:"id"`
	Values       []float32     `json:"values,omitempty"        yaml:"values,omitempty"`
	SparseValues *SparseValues `json:"sparse_values,omitempty" yaml:"sparse_values,omitempty"`
	Metadata     Metadata      `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// ScoredVector is a vector with its query similarity score.
type ScoredVector struct {
	Vector `yaml:",inline"`

	Score float32 `json:"score" yaml:"score"`
}

// Usage counts billable read units consumed by a data-plane call.
type Usage struct {
	ReadUnits int `json:"read_units,omitempty" yaml:"read_units,omitempty"`
}

// UpsertRequest writes a batch of vectors into a namespace.
type UpsertRequest struct {
	Vectors   []Vector `json:"vectors"             yaml:"vectors"`
	Namespace string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// UpsertResponse reports how many vectors the server accepted.
type UpsertResponse struct {
	UpsertedCount int `json:"upserted_count" yaml:"upserted_count"`
}

// QueryRequest ranks stored vectors by similarity. Exactly one of Vector or
// ID must be set; ID asks the server to use an existing vector's values.
type QueryRequest struct {
	Namespace       string        `json:"namespace,omitempty"        yaml:"namespace,omitempty"`
	TopK            int           `json:"top_k"                      yaml:"top_k"`
	Vector          []float32     `json:"vector,omitempty"           yaml:"vector,omitempty"`
	SparseVector    *SparseValues `json:"sparse_vector,omitempty"    yaml:"sparse_vector,omitempty"`
	ID              string        `json:"id,omitempty"               yaml:"id,omitempty"`
	Filter          Metadata      `json:"filter,omitempty"           yaml:"filter,omitempty"`
	IncludeValues   bool          `json:"include_values,omitempty"   yaml:"include_values,omitempty"`
	IncludeMetadata bool          `json:"include_metadata,omitempty" yaml:"include_metadata,omitempty"`
}

// QueryResponse is the ranked result of a similarity query.
type QueryResponse struct {
	Matches   []ScoredVector `json:"matches"             yaml:"matches"`
	Namespace string         `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Usage     *Usage         `json:"usage,omitempty"     yaml:"usage,omitempty"`
}

// FetchResponse returns vectors looked up by ID.
type FetchResponse struct {
	Vectors   map[string]Vector `json:"vectors"             yaml:"vectors"`
	Namespace string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Usage     *Usage            `json:"usage,omitempty"     yaml:"usage,omitempty"`
}

// UpdateRequest patches one vector in place. At least one of Values or
// SetMetadata must be present.
type UpdateRequest struct {
	ID           string        `json:"id"                      yaml:"id"`
	Values       []float32     `json:"values,omitempty"        yaml:"values,omitempty"`
	SparseValues *SparseValues `json:"sparse_values,omitempty" yaml:"sparse_values,omitempty"`
	SetMetadata  Metadata      `json:"set_metadata,omitempty"  yaml:"set_metadata,omitempty"`
	Namespace    string        `json:"namespace,omitempty"     yaml:"namespace,omitempty"`
}

// DeleteRequest removes vectors by ID list, metadata filter, or wholesale.
// At least one selector must be present.
type DeleteRequest struct {
	IDs       []string `json:"ids,omitempty"        yaml:"ids,omitempty"`
	DeleteAll bool     `json:"delete_all,omitempty" yaml:"delete_all,omitempty"`
	Namespace string   `json:"namespace,omitempty"  yaml:"namespace,omitempty"`
	Filter    Metadata `json:"filter,omitempty"     yaml:"filter,omitempty"`
}

// Pagination carries the opaque continuation token for list operations. A
// nil Pagination or empty Next means end of results.
type Pagination struct {
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

// VectorID is one entry of a vector-ID listing.
type VectorID struct {
	ID string `json:"id" yaml:"id"`
}

// ListVectorsResponse is one page of vector IDs.
type ListVectorsResponse struct {
	Vectors    []VectorID  `json:"vectors"              yaml:"vectors"`
	Namespace  string      `json:"namespace,omitempty"  yaml:"namespace,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Usage      *Usage      `json:"usage,omitempty"      yaml:"usage,omitempty"`
}

// NamespaceSummary is the per-namespace slice of index statistics.
type NamespaceSummary struct {
	VectorCount int64 `json:"vector_count" yaml:"vector_count"`
}

// IndexStats aggregates storage statistics for one index.
type IndexStats struct {
	Namespaces       map[string]NamespaceSummary `json:"namespaces"               yaml:"namespaces"`
	Dimension        int32                       `json:"dimension"                yaml:"dimension"`
	IndexFullness    float32                     `json:"index_fullness"           yaml:"index_fullness"`
	TotalVectorCount int64                       `json:"total_vector_count"       yaml:"total_vector_count"`
	VectorType       string                      `json:"vector_type,omitempty"    yaml:"vector_type,omitempty"`
}

// StatsRequest optionally narrows index statistics by metadata filter.
type StatsRequest struct {
	Filter Metadata `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// NamespaceDescription describes one namespace within an index.
type NamespaceDescription struct {
	Name        string `json:"name"         yaml:"name"`
	RecordCount int64  `json:"record_count" yaml:"record_count"`
}

// NamespaceList is one page of namespaces.
type NamespaceList struct {
	Namespaces []NamespaceDescription `json:"namespaces"           yaml:"namespaces"`
	Pagination *Pagination            `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// Backup is a point-in-time copy of an index.
type Backup struct {
	BackupID        string            `json:"backup_id"                   yaml:"backup_id"`
	SourceIndexName string            `json:"source_index_name"           yaml:"source_index_name"`
	SourceIndexID   string            `json:"source_index_id,omitempty"   yaml:"source_index_id,omitempty"`
	Name            string            `json:"name,omitempty"              yaml:"name,omitempty"`
	Description     string            `json:"description,omitempty"       yaml:"description,omitempty"`
	Status          string            `json:"status"                      yaml:"status"`
	Cloud           string            `json:"cloud,omitempty"             yaml:"cloud,omitempty"`
	Region          string            `json:"region,omitempty"            yaml:"region,omitempty"`
	Dimension       int32             `json:"dimension,omitempty"         yaml:"dimension,omitempty"`
	Metric          Metric            `json:"metric,omitempty"            yaml:"metric,omitempty"`
	RecordCount     int64             `json:"record_count,omitempty"      yaml:"record_count,omitempty"`
	NamespaceCount  int64             `json:"namespace_count,omitempty"   yaml:"namespace_count,omitempty"`
	SizeBytes       int64             `json:"size_bytes,omitempty"        yaml:"size_bytes,omitempty"`
	Tags            map[string]string `json:"tags,omitempty"              yaml:"tags,omitempty"`
	CreatedAt       string            `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
}

// BackupCreateRequest snapshots an index.
type BackupCreateRequest struct {
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BackupList is one page of backups.
type BackupList struct {
	Data       []Backup    `json:"data"                 yaml:"data"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// RestoreJob tracks an index being rebuilt from a backup.
type RestoreJob struct {
	RestoreJobID    string  `json:"restore_job_id"             yaml:"restore_job_id"`
	BackupID        string  `json:"backup_id"                  yaml:"backup_id"`
	TargetIndexName string  `json:"target_index_name"          yaml:"target_index_name"`
	Status          string  `json:"status"                     yaml:"status"`
	PercentComplete float32 `json:"percent_complete,omitempty" yaml:"percent_complete,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"       yaml:"created_at,omitempty"`
	CompletedAt     string  `json:"completed_at,omitempty"     yaml:"completed_at,omitempty"`
}

// RestoreJobList is one page of restore jobs.
type RestoreJobList struct {
	Data       []RestoreJob `json:"data"                 yaml:"data"`
	Pagination *Pagination  `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// CreateIndexFromBackupRequest restores a backup into a new index.
type CreateIndexFromBackupRequest struct {
	Name               string            `json:"name"                          yaml:"name"`
	DeletionProtection string            `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
	Tags               map[string]string `json:"tags,omitempty"                yaml:"tags,omitempty"`
}

// CreateIndexFromBackupResponse identifies the restore job started.
type CreateIndexFromBackupResponse struct {
	RestoreJobID string `json:"restore_job_id" yaml:"restore_job_id"`
	IndexName    string `json:"index_name"     yaml:"index_name"`
}

// ImportStatus is the lifecycle state of a bulk import.
type ImportStatus string

const (
	ImportPending    ImportStatus = "Pending"
	ImportInProgress ImportStatus = "InProgress"
	ImportCompleted  ImportStatus = "Completed"
	ImportFailed     ImportStatus = "Failed"
	ImportCancelled  ImportStatus = "Cancelled"
)

// Import is one bulk-import job loading vectors from object storage.
type Import struct {
	ID              string       `json:"id"                         yaml:"id"`
	URI             string       `json:"uri,omitempty"              yaml:"uri,omitempty"`
	Status          ImportStatus `json:"status"                     yaml:"status"`
	PercentComplete float32      `json:"percent_complete,omitempty" yaml:"percent_complete,omitempty"`
	RecordsImported int64        `json:"records_imported,omitempty" yaml:"records_imported,omitempty"`
	Error           string       `json:"error,omitempty"            yaml:"error,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"       yaml:"created_at,omitempty"`
	FinishedAt      string       `json:"finished_at,omitempty"      yaml:"finished_at,omitempty"`
}

// ImportErrorMode tells the server what to do with bad records.
type ImportErrorMode struct {
	OnError string `json:"on_error" yaml:"on_error"`
}

// StartImportRequest starts a bulk import from an object-storage URI.
type StartImportRequest struct {
	URI           string           `json:"uri"                      yaml:"uri"`
	IntegrationID string           `json:"integration_id,omitempty" yaml:"integration_id,omitempty"`
	ErrorMode     *ImportErrorMode `json:"error_mode,omitempty"     yaml:"error_mode,omitempty"`
}

// StartImportResponse identifies the import started.
type StartImportResponse struct {
	ID string `json:"id" yaml:"id"`
}

// ImportList is one page of imports.
type ImportList struct {
	Data       []Import    `json:"data"                 yaml:"data"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// EmbedInput is one text input to the embedding endpoint.
type EmbedInput struct {
	Text string `json:"text" yaml:"text"`
}

// EmbedRequest vectorizes a batch of texts with a hosted model.
type EmbedRequest struct {
	Model      string                 `json:"model"                yaml:"model"`
	Inputs     []EmbedInput           `json:"inputs"               yaml:"inputs"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Embedding is one dense embedding returned for one input.
type Embedding struct {
	Values []float32 `json:"values" yaml:"values"`
}

// EmbedUsage counts billable tokens consumed by an embed call.
type EmbedUsage struct {
	TotalTokens int `json:"total_tokens" yaml:"total_tokens"`
}

// EmbedResponse carries embeddings in input order.
type EmbedResponse struct {
	Model      string      `json:"model"                 yaml:"model"`
	VectorType string      `json:"vector_type,omitempty" yaml:"vector_type,omitempty"`
	Data       []Embedding `json:"data"                  yaml:"data"`
	Usage      EmbedUsage  `json:"usage"                 yaml:"usage"`
}

// Document is one rerank candidate. Shape is caller-defined; the model reads
// the fields named by RankFields.
type Document map[string]interface{}

// RerankRequest reorders documents by relevance to a query.
type RerankRequest struct {
	Model           string                 `json:"model"                      yaml:"model"`
	Query           string                 `json:"query"                      yaml:"query"`
	Documents       []Document             `json:"documents"                  yaml:"documents"`
	TopN            *int                   `json:"top_n,omitempty"            yaml:"top_n,omitempty"`
	RankFields      []string               `json:"rank_fields,omitempty"      yaml:"rank_fields,omitempty"`
	ReturnDocuments *bool                  `json:"return_documents,omitempty" yaml:"return_documents,omitempty"`
	Parameters      map[string]interface{} `json:"parameters,omitempty"       yaml:"parameters,omitempty"`
}

// RankedDocument is one rerank result, referring back to the input by index.
type RankedDocument struct {
	Index    int      `json:"index"              yaml:"index"`
	Score    float32  `json:"score"              yaml:"score"`
	Document Document `json:"document,omitempty" yaml:"document,omitempty"`
}

// RerankUsage counts billable rerank units consumed.
type RerankUsage struct {
	RerankUnits int `json:"rerank_units" yaml:"rerank_units"`
}

// RerankResponse carries documents in descending relevance order.
type RerankResponse struct {
	Model string           `json:"model" yaml:"model"`
	Data  []RankedDocument `json:"data"  yaml:"data"`
	Usage RerankUsage      `json:"usage" yaml:"usage"`
}

// ModelInfo describes one hosted inference model.
type ModelInfo struct {
	Model             string   `json:"model"                         yaml:"model"`
	Type              string   `json:"type"                          yaml:"type"`
	VectorType        string   `json:"vector_type,omitempty"         yaml:"vector_type,omitempty"`
	DefaultDimension  int32    `json:"default_dimension,omitempty"   yaml:"default_dimension,omitempty"`
	Modality          string   `json:"modality,omitempty"            yaml:"modality,omitempty"`
	MaxBatchSize      int      `json:"max_batch_size,omitempty"      yaml:"max_batch_size,omitempty"`
	MaxSequenceLength int      `json:"max_sequence_length,omitempty" yaml:"max_sequence_length,omitempty"`
	SupportedMetrics  []Metric `json:"supported_metrics,omitempty"   yaml:"supported_metrics,omitempty"`
}

// ModelList is the envelope for model listings.
type ModelList struct {
	Models []ModelInfo `json:"models" yaml:"models"`
}
