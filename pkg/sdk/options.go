package sdk

// sendOptions collects the optional per-send arguments.
type sendOptions struct {
	clientUser string
	hasUser    bool
	payload    map[string]string
	isTestMode bool
	floatValue *float64
}

// SendOption configures a single Send or SendSync call.
type SendOption func(*sendOptions)

// WithClientUser attaches a user identifier to the signal. The raw
// value never leaves the process: it is SHA-256 hashed (with the
// client's salt appended, if any) before transmission. Without this
// option the signal carries the fixed placeholder user instead.
func WithClientUser(user string) SendOption {
	return func(o *sendOptions) {
		o.clientUser = user
		o.hasUser = true
	}
}

// WithPayload attaches key/value parameters to the signal. They are
// merged over the client's default parameters, so a per-send key
// overrides a same-named default.
func WithPayload(params map[string]string) SendOption {
	return func(o *sendOptions) {
		o.payload = params
	}
}

// WithTestMode marks the signal as a test signal, shown separately in
// dashboards. Defaults to false.
func WithTestMode(enabled bool) SendOption {
	return func(o *sendOptions) {
		o.isTestMode = enabled
	}
}

// WithFloatValue attaches a numeric value to the signal (revenue,
// duration, score, ...). Without this option the floatValue field is
// absent from the wire body entirely. Non-finite values cannot be
// represented in JSON: awaited sends report the serialization failure,
// detached sends drop the signal.
func WithFloatValue(v float64) SendOption {
	return func(o *sendOptions) {
		o.floatValue = &v
	}
}
