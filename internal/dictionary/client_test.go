package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupReturnsFirstDefinition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/entries/en/serendipity", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"meanings": [{
				"definitions": [
					{"definition": "a fortunate discovery", "example": "pure serendipity"},
					{"definition": "second meaning"}
				]
			}]
		}]`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	definition, example := client.Lookup(context.Background(), "serendipity")
	assert.Equal(t, "a fortunate discovery", definition)
	assert.Equal(t, "pure serendipity", example)
}

func TestLookupMissingExample(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"meanings": [{"definitions": [{"definition": "a fruit"}]}]}]`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	definition, example := client.Lookup(context.Background(), "apple")
	assert.Equal(t, "a fruit", definition)
	assert.Equal(t, ExampleUnavailable, example)
}

func TestLookupDegradesToPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"oops": true`))
			},
		},
		{
			name: "empty meanings",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"meanings": []}]`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := New(server.URL, time.Second)
			definition, example := client.Lookup(context.Background(), "ghost")
			assert.Equal(t, DefinitionUnavailable, definition)
			assert.Equal(t, ExampleUnavailable, example)
		})
	}
}

func TestLookupUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(server.URL, time.Second)
	definition, example := client.Lookup(context.Background(), "ghost")
	assert.Equal(t, DefinitionUnavailable, definition)
	assert.Equal(t, ExampleUnavailable, example)
}
