package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBackupsClient_Create(t *testing.T) {
	t.Parallel()
	t.Run("creates backup", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/indexes/docs/backups", request.URL.Path)

			var body vapi.BackupCreateRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "nightly", body.Name)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(vapi.Backup{
				BackupID:        "bkp-1",
				SourceIndexName: "docs",
				Name:            "nightly",
				Status:          "Initializing",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		backup, err := client.Backups().Create(context.Background(), "docs", &vapi.BackupCreateRequest{Name: "nightly"})
		require.NoError(t, err)
		assert.Equal(t, "bkp-1", backup.BackupID)
		assert.Equal(t, "docs", backup.SourceIndexName)
	})

	t.Run("empty index name rejected locally", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://localhost:0")

		_, err := client.Backups().Create(context.Background(), "", &vapi.BackupCreateRequest{})
		require.ErrorIs(t, err, vapi.ErrIndexNameRequired)
	})
}

func TestBackupsClient_List(t *testing.T) {
	t.Parallel()
	t.Run("lists project backups with pagination", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/backups", request.URL.Path)
			assert.Equal(t, "10", request.URL.Query().Get("limit"))

			list := vapi.BackupList{
				Data:       []vapi.Backup{{BackupID: "bkp-1"}, {BackupID: "bkp-2"}},
				Pagination: &vapi.Pagination{Next: "token-xyz"},
			}
			_ = json.NewEncoder(writer).Encode(list)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		list, err := client.Backups().List(context.Background(), vapi.NewListParams().WithLimit(10))
		require.NoError(t, err)
		require.Len(t, list.Data, 2)
		assert.Equal(t, "token-xyz", list.Pagination.Next)
	})

	t.Run("nil data normalizes to empty slice", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		list, err := client.Backups().List(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, list.Data)
		assert.Empty(t, list.Data)
	})
}

func TestBackupsClient_ListForIndex(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/indexes/docs/backups", request.URL.Path)

		list := vapi.BackupList{Data: []vapi.Backup{{BackupID: "bkp-1", SourceIndexName: "docs"}}}
		_ = json.NewEncoder(writer).Encode(list)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	list, err := client.Backups().ListForIndex(context.Background(), "docs", nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "docs", list.Data[0].SourceIndexName)
}

func TestBackupsClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("describes backup", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/backups/bkp-1", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(vapi.Backup{
				BackupID:    "bkp-1",
				Status:      "Ready",
				RecordCount: 50000,
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		backup, err := client.Backups().Get(context.Background(), "bkp-1")
		require.NoError(t, err)
		assert.Equal(t, "Ready", backup.Status)
		assert.Equal(t, int64(50000), backup.RecordCount)
	})

	t.Run("empty id rejected locally", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://localhost:0")

		_, err := client.Backups().Get(context.Background(), "")
		require.ErrorIs(t, err, vapi.ErrBackupIDRequired)
	})
}

func TestBackupsClient_Delete(t *testing.T) {
	t.Parallel()
	t.Run("deletes backup", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/backups/bkp-1", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.Backups().Delete(context.Background(), "bkp-1")
		require.NoError(t, err)
	})

	t.Run("empty id rejected locally", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://localhost:0")

		err := client.Backups().Delete(context.Background(), "")
		require.ErrorIs(t, err, vapi.ErrBackupIDRequired)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRestoresClient(t *testing.T) {
	t.Parallel()
	t.Run("creates index from backup", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/backups/bkp-1/create-index", request.URL.Path)

			var body vapi.CreateIndexFromBackupRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "docs-restored", body.Name)

			writer.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(writer).Encode(vapi.CreateIndexFromBackupResponse{
				RestoreJobID: "job-1",
				IndexName:    "docs-restored",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		result, err := client.Restores().CreateIndexFromBackup(context.Background(), "bkp-1",
			&vapi.CreateIndexFromBackupRequest{Name: "docs-restored"})
		require.NoError(t, err)
		assert.Equal(t, "job-1", result.RestoreJobID)
	})

	t.Run("tolerates empty accepted body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		result, err := client.Restores().CreateIndexFromBackup(context.Background(), "bkp-1",
			&vapi.CreateIndexFromBackupRequest{Name: "docs-restored"})
		require.NoError(t, err)
		assert.Empty(t, result.RestoreJobID)
	})

	t.Run("empty backup id rejected locally", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://localhost:0")

		_, err := client.Restores().CreateIndexFromBackup(context.Background(), "",
			&vapi.CreateIndexFromBackupRequest{Name: "docs-restored"})
		require.ErrorIs(t, err, vapi.ErrBackupIDRequired)
	})

	t.Run("lists restore jobs", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/restore-jobs", request.URL.Path)

			list := vapi.RestoreJobList{
				Data: []vapi.RestoreJob{{RestoreJobID: "job-1", Status: "InProgress", PercentComplete: 42.5}},
			}
			_ = json.NewEncoder(writer).Encode(list)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		list, err := client.Restores().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, list.Data, 1)
		assert.InDelta(t, 42.5, list.Data[0].PercentComplete, 0.0001)
	})

	t.Run("describes restore job", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/restore-jobs/job-1", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(vapi.RestoreJob{
				RestoreJobID:    "job-1",
				BackupID:        "bkp-1",
				TargetIndexName: "docs-restored",
				Status:          "Completed",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		job, err := client.Restores().Get(context.Background(), "job-1")
		require.NoError(t, err)
		assert.Equal(t, "Completed", job.Status)
		assert.Equal(t, "docs-restored", job.TargetIndexName)
	})

	t.Run("empty job id rejected locally", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://localhost:0")

		_, err := client.Restores().Get(context.Background(), "")
		require.ErrorIs(t, err, vapi.ErrRestoreJobIDRequired)
	})
}
