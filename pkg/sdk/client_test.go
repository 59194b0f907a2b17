package sdk

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/signalbeam/signalbeam/pkg/signal"
)

// syncDispatcher runs dispatched tasks inline so tests observe detached
// sends deterministically.
type syncDispatcher struct{}

func (syncDispatcher) Dispatch(fn func(ctx context.Context)) {
	fn(context.Background())
}

// recordTransport captures delivered batches in place of the network.
type recordTransport struct {
	mu        sync.Mutex
	endpoints []string
	batches   [][]signal.Signal
	sendErr   error
}

func (r *recordTransport) Send(ctx context.Context, endpoint string, signals []signal.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints = append(r.endpoints, endpoint)
	batch := make([]signal.Signal, len(signals))
	copy(batch, signals)
	r.batches = append(r.batches, batch)
	return r.sendErr
}

func TestBuildSignal_WithoutUser(t *testing.T) {
	client := New("1234")
	result := client.buildSignal("signal_type", nil)

	if result.ClientUser != "go" {
		t.Errorf("clientUser = %q, want placeholder %q", result.ClientUser, "go")
	}
	if result.Type != "signal_type" {
		t.Errorf("type = %q, want %q", result.Type, "signal_type")
	}
	if result.AppID != "1234" {
		t.Errorf("appID = %q, want %q", result.AppID, "1234")
	}
	if result.IsTestMode != "false" {
		t.Errorf("isTestMode = %q, want %q", result.IsTestMode, "false")
	}
	if len(result.Payload) != 1 || result.Payload[0] != "telemetryClientVersion:"+Version {
		t.Errorf("payload = %v, want exactly [telemetryClientVersion:%s]", result.Payload, Version)
	}
	if result.FloatValue != nil {
		t.Errorf("floatValue = %v, want absent", *result.FloatValue)
	}
	if result.SessionID != client.SessionID() {
		t.Errorf("sessionID = %q, want %q", result.SessionID, client.SessionID())
	}
	if result.ReceivedAt.Location() != result.ReceivedAt.UTC().Location() {
		t.Error("receivedAt is not UTC")
	}
}

func TestBuildSignal_UserIsHashed(t *testing.T) {
	client := New("1234")
	result := client.buildSignal("signal_type", []SendOption{WithClientUser("clientUser")})

	want := "6721870580401922549fe8fdb09a064dba5b8792fa018d3bd9ffa90fe37a0149"
	if result.ClientUser != want {
		t.Errorf("clientUser = %q, want %q", result.ClientUser, want)
	}
}

func TestBuildSignal_UserWithSaltIsHashed(t *testing.T) {
	client := NewWithConfig("1234", Config{Salt: "someSalt"})
	result := client.buildSignal("signal_type", []SendOption{WithClientUser("clientUser")})

	want := "ffdd613ce521b2e94b8931bdadffd96857f6abbde6c0ee1fcf0b76127fbb9e5a"
	if result.ClientUser != want {
		t.Errorf("clientUser = %q, want %q", result.ClientUser, want)
	}
}

func TestBuildSignal_PayloadOverridesDefaults(t *testing.T) {
	client := NewWithConfig("1234", Config{
		DefaultParams: map[string]string{"env": "prod", "region": "eu"},
	})
	result := client.buildSignal("signal_type", []SendOption{
		WithPayload(map[string]string{"env": "staging", "screen": "settings"}),
	})

	got := make(map[string]bool, len(result.Payload))
	for _, entry := range result.Payload {
		got[entry] = true
	}
	for _, want := range []string{
		"env:staging",
		"region:eu",
		"screen:settings",
		"telemetryClientVersion:" + Version,
	} {
		if !got[want] {
			t.Errorf("payload missing %q; got %v", want, result.Payload)
		}
	}
	if got["env:prod"] {
		t.Errorf("payload kept overridden default env:prod; got %v", result.Payload)
	}
	if len(result.Payload) != 4 {
		t.Errorf("payload has %d entries, want 4: %v", len(result.Payload), result.Payload)
	}
}

func TestBuildSignal_DefaultsNotMutatedBySend(t *testing.T) {
	client := NewWithConfig("1234", Config{
		DefaultParams: map[string]string{"env": "prod"},
	})
	client.buildSignal("signal_type", []SendOption{
		WithPayload(map[string]string{"env": "staging"}),
	})

	if client.defaultParams["env"] != "prod" {
		t.Errorf("default params mutated: env = %q", client.defaultParams["env"])
	}
}

func TestNewWithConfig_VersionMarkerWins(t *testing.T) {
	client := NewWithConfig("1234", Config{
		DefaultParams: map[string]string{"telemetryClientVersion": "fake"},
	})

	if client.defaultParams[clientVersionKey] != Version {
		t.Errorf("version marker = %q, want injected %q", client.defaultParams[clientVersionKey], Version)
	}
}

func TestBuildSignal_PerSendCanOverrideVersionMarker(t *testing.T) {
	client := New("1234")
	result := client.buildSignal("signal_type", []SendOption{
		WithPayload(map[string]string{"telemetryClientVersion": "custom"}),
	})

	if len(result.Payload) != 1 || result.Payload[0] != "telemetryClientVersion:custom" {
		t.Errorf("payload = %v, want explicit per-send override to win", result.Payload)
	}
}

func TestBuildSignal_TestModeAndFloatValue(t *testing.T) {
	client := New("1234")
	result := client.buildSignal("signal_type", []SendOption{
		WithTestMode(true),
		WithFloatValue(42.5),
	})

	if result.IsTestMode != "true" {
		t.Errorf("isTestMode = %q, want %q", result.IsTestMode, "true")
	}
	if result.FloatValue == nil || *result.FloatValue != 42.5 {
		t.Errorf("floatValue = %v, want 42.5", result.FloatValue)
	}
}

func TestBuildSignal_SessionCapturedAtBuildTime(t *testing.T) {
	client := New("1234")
	before := client.SessionID()

	result := client.buildSignal("signal_type", nil)
	client.ResetSession("")

	if result.SessionID != before {
		t.Errorf("sessionID = %q, want the id at build time %q", result.SessionID, before)
	}
}

func TestResetSession(t *testing.T) {
	client := New("1234")
	first := client.SessionID()

	client.ResetSession("")
	second := client.SessionID()
	if first == second {
		t.Error("ResetSession with no id did not change the session")
	}

	client.ResetSession("my session")
	if got := client.SessionID(); got != "my session" {
		t.Errorf("sessionID = %q, want %q", got, "my session")
	}
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		want      string
	}{
		{
			name: "without namespace",
			want: DefaultBaseURL + "/v2/",
		},
		{
			name:      "with namespace",
			namespace: "acme",
			want:      DefaultBaseURL + "/v2/namespace/acme/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewWithConfig("1234", Config{Namespace: tt.namespace})
			if got := client.endpointURL(); got != tt.want {
				t.Errorf("endpointURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSendSync_StatusHandling(t *testing.T) {
	tests := []struct {
		name   string
		status int
		wantOK bool
	}{
		{name: "success", status: http.StatusOK, wantOK: true},
		{name: "server error", status: http.StatusInternalServerError, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				io.Copy(io.Discard, r.Body)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewWithConfig("1234", Config{BaseURL: server.URL})
			err := client.SendSync(context.Background(), "signal_type")

			if tt.wantOK && err != nil {
				t.Errorf("SendSync() error = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("SendSync() error = nil, want status failure")
				}
				if !strings.Contains(err.Error(), "500") {
					t.Errorf("error %q does not carry the status", err)
				}
			}
			if path != "/v2/" {
				t.Errorf("request path = %q, want /v2/", path)
			}
		})
	}
}

func TestSendSync_NamespaceRoute(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewWithConfig("1234", Config{BaseURL: server.URL, Namespace: "acme"})
	if err := client.SendSync(context.Background(), "signal_type"); err != nil {
		t.Fatalf("SendSync() error = %v", err)
	}
	if path != "/v2/namespace/acme/" {
		t.Errorf("request path = %q, want /v2/namespace/acme/", path)
	}
}

func TestSendSync_BodyIsSingleElementArray(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewWithConfig("1234", Config{BaseURL: server.URL})
	if err := client.SendSync(context.Background(), "signal_type", WithFloatValue(42.5)); err != nil {
		t.Fatalf("SendSync() error = %v", err)
	}

	var decoded []signal.Signal
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("body is not a JSON array: %v (body: %s)", err, body)
	}
	if len(decoded) != 1 {
		t.Fatalf("array length = %d, want 1", len(decoded))
	}
	if !strings.Contains(string(body), `"floatValue":42.5`) {
		t.Errorf("body missing floatValue: %s", body)
	}
}

func TestSendSync_SerializationFailureIsReported(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewWithConfig("1234", Config{BaseURL: server.URL})
	err := client.SendSync(context.Background(), "signal_type", WithFloatValue(math.Inf(1)))

	if err == nil {
		t.Fatal("SendSync() error = nil, want serialization failure for non-finite float")
	}
	if hits != 0 {
		t.Errorf("server was hit %d times despite serialization failure", hits)
	}
}

func TestSend_FireAndForgetDelivers(t *testing.T) {
	trans := &recordTransport{}
	client := NewWithConfig("1234", Config{
		Transport:  trans,
		Dispatcher: syncDispatcher{},
	})

	client.Send("signal_type", WithClientUser("clientUser"))

	trans.mu.Lock()
	defer trans.mu.Unlock()
	if len(trans.batches) != 1 {
		t.Fatalf("delivered %d batches, want 1", len(trans.batches))
	}
	if len(trans.batches[0]) != 1 {
		t.Fatalf("batch has %d signals, want 1", len(trans.batches[0]))
	}
	if trans.endpoints[0] != DefaultBaseURL+"/v2/" {
		t.Errorf("endpoint = %q, want %q", trans.endpoints[0], DefaultBaseURL+"/v2/")
	}
}

func TestSend_SwallowsTransportFailures(t *testing.T) {
	trans := &recordTransport{sendErr: io.ErrUnexpectedEOF}
	client := NewWithConfig("1234", Config{
		Transport:  trans,
		Dispatcher: syncDispatcher{},
	})

	// Must not panic and has no result to report.
	client.Send("signal_type")

	trans.mu.Lock()
	defer trans.mu.Unlock()
	if len(trans.batches) != 1 {
		t.Fatalf("delivered %d batches, want 1 attempt (no retries)", len(trans.batches))
	}
}
