package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/signalbeam/signalbeam/pkg/sdk"
	"github.com/signalbeam/signalbeam/pkg/signal"
)

type inlineDispatcher struct{}

func (inlineDispatcher) Dispatch(fn func(ctx context.Context)) {
	fn(context.Background())
}

type recordTransport struct {
	mu      sync.Mutex
	batches [][]signal.Signal
}

func (r *recordTransport) Send(ctx context.Context, endpoint string, signals []signal.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make([]signal.Signal, len(signals))
	copy(batch, signals)
	r.batches = append(r.batches, batch)
	return nil
}

func newRecordedClient() (*sdk.Client, *recordTransport) {
	trans := &recordTransport{}
	client := sdk.NewWithConfig("test-app", sdk.Config{
		Transport:  trans,
		Dispatcher: inlineDispatcher{},
	})
	return client, trans
}

func TestMiddleware_EmitsRequestSignal(t *testing.T) {
	client, trans := newRecordedClient()

	handler := Middleware(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/users/123", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	trans.mu.Lock()
	defer trans.mu.Unlock()
	if len(trans.batches) != 1 || len(trans.batches[0]) != 1 {
		t.Fatalf("emitted %d batches, want 1 batch of 1 signal", len(trans.batches))
	}

	s := trans.batches[0][0]
	if s.Type != SignalType {
		t.Errorf("type = %q, want %q", s.Type, SignalType)
	}

	payload := strings.Join(s.Payload, "\n")
	for _, want := range []string{
		"method:POST",
		"path:/api/users/{id}",
		"status:201",
	} {
		if !strings.Contains(payload, want) {
			t.Errorf("payload missing %q; got %v", want, s.Payload)
		}
	}
}

func TestMiddleware_DefaultStatusIs200(t *testing.T) {
	client, trans := newRecordedClient()

	handler := Middleware(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler never calls WriteHeader.
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	trans.mu.Lock()
	defer trans.mu.Unlock()
	payload := strings.Join(trans.batches[0][0].Payload, "\n")
	if !strings.Contains(payload, "status:200") {
		t.Errorf("payload missing status:200; got %v", trans.batches[0][0].Payload)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/users/123", want: "/api/users/{id}"},
		{path: "/posts/456/comments", want: "/posts/{id}/comments"},
		{path: "/api/users/0badc0de-0000-4000-8000-00000000beef", want: "/api/users/{id}"},
		{path: "/health", want: "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
