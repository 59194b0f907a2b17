// Package signal defines the telemetry signal record and the helpers
// that build its wire representation: user identifier hashing and
// payload merge/encoding.
package signal

import "time"

// Signal is a single telemetry event ready for transmission.
// It serializes to the camelCase wire format expected by the ingest API:
//
//	{
//	  "receivedAt": "2025-01-15T10:30:00Z",
//	  "appID": "xxx-xxx-xxx",
//	  "clientUser": "hashed-user-id",
//	  "sessionID": "session-uuid",
//	  "type": "signalType",
//	  "payload": ["key1:value1", "key2:value2"],
//	  "isTestMode": "false",
//	  "floatValue": 42.5
//	}
//
// A Signal is built once per send call and never mutated afterwards.
type Signal struct {
	// ReceivedAt is the UTC timestamp captured when the signal was
	// built, not when it was sent.
	ReceivedAt time.Time `json:"receivedAt"`

	// AppID identifies the destination application.
	AppID string `json:"appID"`

	// ClientUser is the SHA-256 hashed user identifier, never the raw
	// value. When no identifier was supplied it holds the fixed
	// placeholder instead of a hash.
	ClientUser string `json:"clientUser"`

	// SessionID is the client's session identifier at build time.
	SessionID string `json:"sessionID"`

	// Type is the caller-supplied signal name, passed through verbatim.
	Type string `json:"type"`

	// Payload holds the merged parameters as "key:value" strings.
	// Entry order carries no meaning.
	Payload []string `json:"payload"`

	// IsTestMode is the string "true" or "false"; the wire format
	// encodes it as text, not a boolean.
	IsTestMode string `json:"isTestMode"`

	// FloatValue is an optional numeric value (revenue, duration, ...).
	// Omitted from JSON entirely when nil, never rendered as null.
	FloatValue *float64 `json:"floatValue,omitempty"`
}
