// Package httpx provides HTTP middleware that emits telemetry signals
// for incoming requests.
package httpx

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/signalbeam/signalbeam/pkg/sdk"
)

// SignalType is the signal name emitted for every request.
const SignalType = "Signalbeam.HTTP.request"

// Middleware returns HTTP middleware that emits one fire-and-forget
// signal per request with the method, normalized path, status, and
// duration in the payload. Delivery never blocks the request path and
// failures are invisible, matching Send's contract.
//
// Usage:
//
//	client := sdk.New("YOUR-APP-ID")
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", handler)
//	http.ListenAndServe(":8080", httpx.Middleware(client)(mux))
func Middleware(client *sdk.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap ResponseWriter to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			client.Send(SignalType, sdk.WithPayload(map[string]string{
				"method":     r.Method,
				"path":       normalizePath(r.URL.Path),
				"status":     strconv.Itoa(rw.statusCode),
				"durationMs": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
			}))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

var (
	numericIDRe = regexp.MustCompile(`/\d+`)
	uuidRe      = regexp.MustCompile(`/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
)

// normalizePath collapses per-resource path segments so payload keys
// stay low-cardinality. Examples:
//   - /api/users/123 → /api/users/{id}
//   - /api/users/abc123e4-... → /api/users/{id}
func normalizePath(path string) string {
	path = numericIDRe.ReplaceAllString(path, "/{id}")
	return uuidRe.ReplaceAllString(path, "/{id}")
}
