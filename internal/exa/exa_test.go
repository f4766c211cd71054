package exa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestSearchUsesRequestContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": "1", "url": "https://linkedin.com/in/ada"}]}`))
	}))
	defer server.Close()

	client := New(zap.NewNop(), "test-key")
	client.APIURL = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Search(ctx, &SearchParams{Query: "engineers"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	results, err := client.Search(context.Background(), &SearchParams{Query: "engineers"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if results.Len() != 1 || results.Items[0].ID != "1" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestSearchCredentialsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(zap.NewNop(), "bad-key")
	client.APIURL = server.URL

	if _, err := client.Search(context.Background(), &SearchParams{Query: "engineers"}); !errors.Is(err, ErrCredentials) {
		t.Fatalf("expected ErrCredentials, got %v", err)
	}
}
