package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/nimbusvec/vapi/internal/http"
	"github.com/nimbusvec/vapi/pkg/vapi"
)

// BackupsClient implements the vapi.BackupsClient interface.
type BackupsClient struct {
	httpClient *internalhttp.Client
}

// NewBackupsClient creates a new BackupsClient.
func NewBackupsClient(httpClient *internalhttp.Client) *BackupsClient {
	return &BackupsClient{
		httpClient: httpClient,
	}
}

// Create snapshots an index into a new backup.
func (c *BackupsClient) Create(ctx context.Context, indexName string, request *vapi.BackupCreateRequest) (*vapi.Backup, error) {
	if indexName == "" {
		return nil, vapi.ErrIndexNameRequired
	}

	path := "/indexes/" + url.PathEscape(indexName) + "/backups"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating backup: %w", err)
	}

	var backup vapi.Backup

	err = json.Unmarshal(resp.Body, &backup)
	if err != nil {
		return nil, fmt.Errorf("parsing backup response: %w", err)
	}

	return &backup, nil
}

// List lists all backups in the project.
func (c *BackupsClient) List(ctx context.Context, params *vapi.ListParams) (*vapi.BackupList, error) {
	resp, err := c.httpClient.Get(ctx, "/backups", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing backups: %w", err)
	}

	return parseBackupList(resp.Body)
}

// ListForIndex lists backups of one index.
func (c *BackupsClient) ListForIndex(ctx context.Context, indexName string, params *vapi.ListParams) (*vapi.BackupList, error) {
	if indexName == "" {
		return nil, vapi.ErrIndexNameRequired
	}

	path := "/indexes/" + url.PathEscape(indexName) + "/backups"

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing backups for index: %w", err)
	}

	return parseBackupList(resp.Body)
}

// Get describes a specific backup.
func (c *BackupsClient) Get(ctx context.Context, backupID string) (*vapi.Backup, error) {
	if backupID == "" {
		return nil, vapi.ErrBackupIDRequired
	}

	path := "/backups/" + url.PathEscape(backupID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("describing backup: %w", err)
	}

	var backup vapi.Backup

	err = json.Unmarshal(resp.Body, &backup)
	if err != nil {
		return nil, fmt.Errorf("parsing backup response: %w", err)
	}

	return &backup, nil
}

// Delete deletes a backup.
func (c *BackupsClient) Delete(ctx context.Context, backupID string) error {
	if backupID == "" {
		return vapi.ErrBackupIDRequired
	}

	path := "/backups/" + url.PathEscape(backupID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting backup: %w", err)
	}

	return nil
}

func parseBackupList(body []byte) (*vapi.BackupList, error) {
	var list vapi.BackupList

	err := json.Unmarshal(body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing backup list response: %w", err)
	}

	if list.Data == nil {
		list.Data = []vapi.Backup{}
	}

	return &list, nil
}
