package storage

import (
	"context"
	"time"

	"github.com/signalbeam/signalbeam/pkg/signal"
)

// Storage defines the interface for signal storage backends.
// Implementations: memory (testing), badger (self-hosted sink)
type Storage interface {
	// Write stores signals
	Write(ctx context.Context, signals []signal.Signal) error

	// Query retrieves signals within a time range
	Query(ctx context.Context, req QueryRequest) ([]signal.Signal, error)

	// Delete removes signals received before the given time
	Delete(ctx context.Context, before time.Time) error

	// Close cleanly shuts down the storage
	Close() error

	// Stats returns storage statistics
	Stats(ctx context.Context) (*Stats, error)
}

// QueryRequest specifies what signals to retrieve
type QueryRequest struct {
	// Time range over receivedAt
	Start time.Time
	End   time.Time

	// Filter by app id (optional)
	AppID string

	// Filter by signal type (optional)
	SignalType string

	// Filter by session id (optional)
	SessionID string

	// Limit number of results (0 = no limit)
	Limit int
}

// Stats provides storage health and usage info
type Stats struct {
	// Total signals stored
	TotalSignals uint64

	// Storage size in bytes (0 for in-memory backends)
	SizeBytes uint64

	// Oldest signal timestamp
	OldestSignal time.Time

	// Newest signal timestamp
	NewestSignal time.Time
}
