package vapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimbusvec/vapi/pkg/vapi"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *vapi.ListParams
		expected string
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: "",
		},
		{
			name:     "empty params",
			params:   vapi.NewListParams(),
			expected: "",
		},
		{
			name:     "limit only",
			params:   vapi.NewListParams().WithLimit(50),
			expected: "limit=50",
		},
		{
			name:     "zero limit omitted",
			params:   vapi.NewListParams().WithLimit(0),
			expected: "",
		},
		{
			name:     "all fields",
			params:   vapi.NewListParams().WithLimit(25).WithToken("tok").WithPrefix("doc1#").WithNamespace("articles"),
			expected: "limit=25&namespace=articles&paginationToken=tok&prefix=doc1%23",
		},
		{
			name:     "token and namespace",
			params:   vapi.NewListParams().WithToken("abc").WithNamespace("drafts"),
			expected: "namespace=drafts&paginationToken=abc",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.params.ToValues().Encode())
		})
	}
}
