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
func TestIndexesClient_List(t *testing.T) {
	t.Parallel()
	t.Run("returns indexes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "/indexes", request.URL.Path)

			list := vapi.IndexList{
				Indexes: []vapi.Index{
					{Name: "docs", Dimension: 1536, Metric: vapi.MetricCosine},
					{Name: "images", Dimension: 512, Metric: vapi.MetricEuclidean},
				},
			}
			_ = json.NewEncoder(writer).Encode(list)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		list, err := client.Indexes().List(context.Background())
		require.NoError(t, err)
		require.Len(t, list.Indexes, 2)
		assert.Equal(t, "docs", list.Indexes[0].Name)
		assert.Equal(t, vapi.MetricEuclidean, list.Indexes[1].Metric)
	})

	t.Run("nil index list normalizes to empty slice", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		list, err := client.Indexes().List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list.Indexes)
		assert.Empty(t, list.Indexes)
	})
}

func TestIndexesClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("describes index", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/indexes/docs", request.URL.Path)

			index := vapi.Index{
				Name:      "docs",
				Dimension: 1536,
				Metric:    vapi.MetricCosine,
				Host:      "docs-abc123.svc.nimbusvec.io",
				Status:    vapi.IndexStatus{Ready: true, State: "Ready"},
			}
			_ = json.NewEncoder(writer).Encode(index)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		index, err := client.Indexes().Get(context.Background(), "docs")
		require.NoError(t, err)
		assert.Equal(t, "docs", index.Name)
		assert.Equal(t, "docs-abc123.svc.nimbusvec.io", index.Host)
		assert.True(t, index.Status.Ready)
	})

	t.Run("empty name rejected locally", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Indexes().Get(context.Background(), "")
		require.ErrorIs(t, err, vapi.ErrIndexNameRequired)
		assert.Equal(t, 0, requests)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"message":"index not found"}}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Indexes().Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, vapi.IsNotFound(err))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestIndexesClient_Create(t *testing.T) {
	t.Parallel()
	t.Run("creates serverless index", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/indexes", request.URL.Path)

			var body vapi.IndexCreateRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "docs", body.Name)
			assert.Equal(t, int32(1536), body.Dimension)
			require.NotNil(t, body.Spec.Serverless)
			assert.Equal(t, "aws", body.Spec.Serverless.Cloud)

			writer.WriteHeader(http.StatusCreated)

			index := vapi.Index{
				Name:      body.Name,
				Dimension: body.Dimension,
				Metric:    body.Metric,
				Status:    vapi.IndexStatus{Ready: false, State: "Initializing"},
			}
			_ = json.NewEncoder(writer).Encode(index)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		index, err := client.Indexes().Create(context.Background(), &vapi.IndexCreateRequest{
			Name:      "docs",
			Dimension: 1536,
			Metric:    vapi.MetricCosine,
			Spec: vapi.IndexSpec{
				Serverless: &vapi.ServerlessSpec{Cloud: "aws", Region: "us-east-1"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "docs", index.Name)
		assert.Equal(t, "Initializing", index.Status.State)
	})

	t.Run("conflict surfaces api error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
			_, _ = writer.Write([]byte(`{"error":{"message":"index already exists"}}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Indexes().Create(context.Background(), &vapi.IndexCreateRequest{Name: "docs"})
		require.Error(t, err)

		apiErr := &vapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "index already exists", apiErr.Message)
	})
}

func TestIndexesClient_CreateForModel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/indexes/create-for-model", request.URL.Path)

		var body vapi.IndexCreateForModelRequest

		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "articles", body.Name)
		assert.Equal(t, "multilingual-e5-large", body.Embed.Model)

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(vapi.Index{Name: body.Name, Dimension: 1024})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	index, err := client.Indexes().CreateForModel(context.Background(), &vapi.IndexCreateForModelRequest{
		Name:   "articles",
		Cloud:  "aws",
		Region: "us-east-1",
		Embed: vapi.IndexEmbedConfig{
			Model:    "multilingual-e5-large",
			FieldMap: map[string]string{"text": "chunk_text"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1024), index.Dimension)
}

func TestIndexesClient_Configure(t *testing.T) {
	t.Parallel()
	t.Run("patches index settings", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)
			assert.Equal(t, "/indexes/docs", request.URL.Path)

			var body vapi.IndexConfigureRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "enabled", body.DeletionProtection)

			_ = json.NewEncoder(writer).Encode(vapi.Index{Name: "docs", DeletionProtection: "enabled"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		index, err := client.Indexes().Configure(context.Background(), "docs", &vapi.IndexConfigureRequest{
			DeletionProtection: "enabled",
		})
		require.NoError(t, err)
		assert.Equal(t, "enabled", index.DeletionProtection)
	})

	t.Run("empty name rejected locally", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://localhost:0")

		_, err := client.Indexes().Configure(context.Background(), "", &vapi.IndexConfigureRequest{})
		require.ErrorIs(t, err, vapi.ErrIndexNameRequired)
	})
}

func TestIndexesClient_Delete(t *testing.T) {
	t.Parallel()
	t.Run("deletes index", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/indexes/docs", request.URL.Path)
			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.Indexes().Delete(context.Background(), "docs")
		require.NoError(t, err)
	})

	t.Run("failed delete keeps error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusPreconditionFailed)
			_, _ = writer.Write([]byte(`{"error":{"message":"deletion protection is enabled"}}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.Indexes().Delete(context.Background(), "docs")
		require.Error(t, err)

		apiErr := &vapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "deletion protection is enabled", apiErr.Message)
	})
}
