package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/signalbeam/signalbeam/pkg/sdk/dispatch"
	"github.com/signalbeam/signalbeam/pkg/sdk/transport"
	"github.com/signalbeam/signalbeam/pkg/signal"
)

// Version is the client library version, attached to every signal's
// payload under the telemetryClientVersion key.
const Version = "0.4.0"

const (
	// DefaultBaseURL is the hosted ingest service. Override with
	// Config.BaseURL to point at a self-hosted sink.
	DefaultBaseURL = "https://ingest.signalbeam.dev"

	clientVersionKey = "telemetryClientVersion"

	// placeholderUser is used verbatim as clientUser when the caller
	// supplies no user identifier. It is never passed through the hash.
	placeholderUser = "go"
)

// Config holds optional client configuration. The zero value is valid.
type Config struct {
	// Namespace routes signals to /v2/namespace/{namespace}/ for
	// multi-tenant deployments. Not escaped; callers own its content.
	Namespace string

	// Salt is appended to user identifiers before hashing. Recommended:
	// a random string of at least 64 characters, consistent across all
	// users of the same application.
	Salt string

	// DefaultParams are merged into every signal's payload. Per-send
	// payload entries override same-named defaults.
	DefaultParams map[string]string

	// BaseURL overrides the ingest endpoint base. Fixed after
	// construction.
	BaseURL string

	// Transport overrides signal delivery (tests inject recorders).
	Transport transport.Transport

	// Dispatcher overrides the fire-and-forget concurrency strategy.
	// Defaults to the build target's native strategy: a goroutine per
	// send on threaded hosts, a shared serial run loop on js/wasm.
	Dispatcher dispatch.Dispatcher
}

// Client sends telemetry signals to an ingest endpoint. It holds the
// app identity, routing, default parameters, and the current session.
//
// Create one Client per logical application and keep it for the process
// lifetime. All methods except ResetSession are safe to call from
// multiple goroutines; ResetSession must not race with in-flight sends
// without external synchronization.
type Client struct {
	baseURL       string
	appID         string
	namespace     string
	salt          string
	defaultParams map[string]string
	sessionID     string

	transport  transport.Transport
	dispatcher dispatch.Dispatcher
}

// New creates a client with default configuration for the given app id.
func New(appID string) *Client {
	return NewWithConfig(appID, Config{})
}

// NewWithConfig creates a client with the given configuration. The
// library version marker is injected into the default parameters last,
// so a caller-supplied value under the same key is overwritten. A fresh
// random session id is generated.
func NewWithConfig(appID string, cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	trans := cfg.Transport
	if trans == nil {
		trans = transport.NewHTTP()
	}
	dispatcher := cfg.Dispatcher
	if dispatcher == nil {
		dispatcher = dispatch.Default()
	}

	return &Client{
		baseURL:   baseURL,
		appID:     appID,
		namespace: cfg.Namespace,
		salt:      cfg.Salt,
		defaultParams: signal.MergeParams(cfg.DefaultParams, map[string]string{
			clientVersionKey: Version,
		}),
		sessionID:  uuid.NewString(),
		transport:  trans,
		dispatcher: dispatcher,
	}
}

// SessionID returns the current session identifier.
func (c *Client) SessionID() string {
	return c.sessionID
}

// ResetSession replaces the session id for future signals. An empty
// newID generates a fresh random identifier; otherwise newID is used
// exactly. Signals already built keep the session id they were built
// with.
func (c *Client) ResetSession(newID string) {
	if newID == "" {
		newID = uuid.NewString()
	}
	c.sessionID = newID
}

// Send emits a signal fire-and-forget: the signal is built immediately
// (session id and timestamp are captured here), delivery is detached
// onto the dispatcher, and the outcome is discarded. Send never blocks
// on the network and never surfaces an error; use SendSync when the
// outcome matters.
func (c *Client) Send(signalType string, opts ...SendOption) {
	s := c.buildSignal(signalType, opts)
	endpoint := c.endpointURL()
	c.dispatcher.Dispatch(func(ctx context.Context) {
		_ = c.transport.Send(ctx, endpoint, []signal.Signal{s})
	})
}

// SendSync emits a signal and waits for the HTTP round trip. It returns
// nil only for a 2xx response; serialization failures, transport
// failures, and non-success statuses are all reported. One attempt, no
// retries.
func (c *Client) SendSync(ctx context.Context, signalType string, opts ...SendOption) error {
	s := c.buildSignal(signalType, opts)
	return c.transport.Send(ctx, c.endpointURL(), []signal.Signal{s})
}

// buildSignal constructs one immutable Signal from the client state and
// the per-send options.
func (c *Client) buildSignal(signalType string, opts []SendOption) signal.Signal {
	var o sendOptions
	for _, opt := range opts {
		opt(&o)
	}

	clientUser := placeholderUser
	if o.hasUser {
		clientUser = signal.HashUserID(o.clientUser, c.salt)
	}

	return signal.Signal{
		ReceivedAt: time.Now().UTC(),
		AppID:      c.appID,
		ClientUser: clientUser,
		SessionID:  c.sessionID,
		Type:       signalType,
		Payload:    signal.EncodePayload(signal.MergeParams(c.defaultParams, o.payload)),
		IsTestMode: fmt.Sprintf("%t", o.isTestMode),
		FloatValue: o.floatValue,
	}
}

// endpointURL resolves the ingest URL from the base and namespace.
func (c *Client) endpointURL() string {
	if c.namespace != "" {
		return fmt.Sprintf("%s/v2/namespace/%s/", c.baseURL, c.namespace)
	}
	return fmt.Sprintf("%s/v2/", c.baseURL)
}
