package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

// NewTestClient creates a client pointed at a test server, with a dummy key
// so requests pass the local credential check.
func NewTestClient(baseURL string) *Client {
	client, err := New(&vapi.Config{APIKey: "test-key", Endpoint: baseURL})
	if err != nil {
		panic(err)
	}

	return client
}

// fakeService is a test server standing in for both planes: it answers
// control-plane describe calls with its own URL as the index host, counts
// them, and hands everything else to the data handler.
type fakeService struct {
	*httptest.Server

	describeCalls atomic.Int64
}

func newFakeService(indexName string, dataHandler http.HandlerFunc) *fakeService {
	service := &fakeService{}

	service.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet && request.URL.Path == "/indexes/"+indexName {
			service.describeCalls.Add(1)

			index := vapi.Index{
				Name:      indexName,
				Dimension: 3,
				Metric:    vapi.MetricCosine,
				Host:      service.Server.URL,
				Status:    vapi.IndexStatus{Ready: true, State: "Ready"},
			}
			_ = json.NewEncoder(writer).Encode(index)

			return
		}

		if request.Method == http.MethodDelete && request.URL.Path == "/indexes/"+indexName {
			writer.WriteHeader(http.StatusAccepted)

			return
		}

		// Any other index name does not exist.
		if request.Method == http.MethodGet && strings.HasPrefix(request.URL.Path, "/indexes/") {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"message":"index not found"}}`))

			return
		}

		if dataHandler != nil {
			dataHandler(writer, request)

			return
		}

		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{}`))
	}))

	return service
}

// DescribeCalls reports how many resolution round-trips the service served.
func (s *fakeService) DescribeCalls() int {
	return int(s.describeCalls.Load())
}
