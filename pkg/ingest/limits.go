package ingest

import (
	"fmt"

	"github.com/signalbeam/signalbeam/pkg/signal"
)

// Validation limits
const (
	// Per-signal limits
	MaxTypeLength         = 256  // Maximum signal type length
	MaxAppIDLength        = 128  // Maximum app id length
	MaxPayloadEntries     = 100  // Maximum payload entries per signal
	MaxPayloadEntryLength = 1024 // Maximum length of one "key:value" entry

	// Per-request limits
	MaxSignalsPerRequest = 100 // Maximum signals in a single POST body
)

var (
	// ErrTooManySignals is returned when a request body contains too many signals
	ErrTooManySignals = fmt.Errorf("too many signals in request (max %d)", MaxSignalsPerRequest)

	// ErrAppIDEmpty is returned when a signal has no app id
	ErrAppIDEmpty = fmt.Errorf("appID cannot be empty")

	// ErrAppIDTooLong is returned when an app id is too long
	ErrAppIDTooLong = fmt.Errorf("appID too long (max %d chars)", MaxAppIDLength)

	// ErrTypeEmpty is returned when a signal has no type
	ErrTypeEmpty = fmt.Errorf("signal type cannot be empty")

	// ErrTypeTooLong is returned when a signal type is too long
	ErrTypeTooLong = fmt.Errorf("signal type too long (max %d chars)", MaxTypeLength)

	// ErrTooManyPayloadEntries is returned when a signal's payload is too large
	ErrTooManyPayloadEntries = fmt.Errorf("too many payload entries (max %d)", MaxPayloadEntries)

	// ErrPayloadEntryTooLong is returned when one payload entry is too long
	ErrPayloadEntryTooLong = fmt.Errorf("payload entry too long (max %d chars)", MaxPayloadEntryLength)
)

// ValidateSignal validates a received signal against ingest limits
func ValidateSignal(s signal.Signal) error {
	if s.AppID == "" {
		return ErrAppIDEmpty
	}
	if len(s.AppID) > MaxAppIDLength {
		return fmt.Errorf("%w: %q has %d chars", ErrAppIDTooLong, s.AppID, len(s.AppID))
	}
	if s.Type == "" {
		return ErrTypeEmpty
	}
	if len(s.Type) > MaxTypeLength {
		return fmt.Errorf("%w: %q has %d chars", ErrTypeTooLong, s.Type, len(s.Type))
	}
	if len(s.Payload) > MaxPayloadEntries {
		return fmt.Errorf("%w: signal %q has %d entries", ErrTooManyPayloadEntries, s.Type, len(s.Payload))
	}
	for _, entry := range s.Payload {
		if len(entry) > MaxPayloadEntryLength {
			return fmt.Errorf("%w: in signal %q", ErrPayloadEntryTooLong, s.Type)
		}
	}
	return nil
}
