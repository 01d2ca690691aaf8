package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/nimbusvec/vapi/internal/http"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// RestoresClient implements the vapi.RestoresClient interface.
type RestoresClient struct {
	httpClient *internalhttp.Client
}

// NewRestoresClient creates a new RestoresClient.
func NewRestoresClient(httpClient *internalhttp.Client) *RestoresClient {
	return &RestoresClient{
		httpClient: httpClient,
	}
}

// CreateIndexFromBackup restores a backup into a new index. The server
// accepts the request asynchronously; poll the returned restore job for
// completion.
func (c *RestoresClient) CreateIndexFromBackup(ctx context.Context, backupID string, request *vapi.CreateIndexFromBackupRequest) (*vapi.CreateIndexFromBackupResponse, error) {
	if backupID == "" {
		return nil, vapi.ErrBackupIDRequired
	}

	path := "/backups/" + url.PathEscape(backupID) + "/create-index"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating index from backup: %w", err)
	}

	var result vapi.CreateIndexFromBackupResponse

	// 202 may arrive without a body.
	if len(resp.Body) > 0 {
		err = json.Unmarshal(resp.Body, &result)
		if err != nil {
			return nil, fmt.Errorf("parsing restore response: %w", err)
		}
	}

	return &result, nil
}

// List lists restore jobs.
func (c *RestoresClient) List(ctx context.Context, params *vapi.ListParams) (*vapi.RestoreJobList, error) {
	resp, err := c.httpClient.Get(ctx, "/restore-jobs", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing restore jobs: %w", err)
	}

	var list vapi.RestoreJobList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing restore job list response: %w", err)
	}

	if list.Data == nil {
		list.Data = []vapi.RestoreJob{}
	}

	return &list, nil
}

// Get describes a specific restore job.
func (c *RestoresClient) Get(ctx context.Context, restoreJobID string) (*vapi.RestoreJob, error) {
	if restoreJobID == "" {
		return nil, vapi.ErrRestoreJobIDRequired
	}

	path := "/restore-jobs/" + url.PathEscape(restoreJobID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("describing restore job: %w", err)
	}

	var job vapi.RestoreJob

	err = json.Unmarshal(resp.Body, &job)
	if err != nil {
		return nil, fmt.Errorf("parsing restore job response: %w", err)
	}

	return &job, nil
}
