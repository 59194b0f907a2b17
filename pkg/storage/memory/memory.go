package memory

import (
	"context"
	"sync"
	"time"

	"github.com/signalbeam/signalbeam/pkg/signal"
	"github.com/signalbeam/signalbeam/pkg/storage"
)

// Storage stores signals in memory. Data is lost on restart.
// Useful for testing and development.
type Storage struct {
	signals []signal.Signal
	mu      sync.RWMutex
}

// New creates an in-memory storage backend
func New() *Storage {
	return &Storage{
		signals: make([]signal.Signal, 0, 1024),
	}
}

// Write stores signals in memory
func (s *Storage) Write(ctx context.Context, signals []signal.Signal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.signals = append(s.signals, signals...)
	return nil
}

// Query retrieves signals matching the request
func (s *Storage) Query(ctx context.Context, req storage.QueryRequest) ([]signal.Signal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []signal.Signal
	for _, sig := range s.signals {
		if !matches(sig, req) {
			continue
		}
		results = append(results, sig)
		if req.Limit > 0 && len(results) >= req.Limit {
			break
		}
	}
	return results, nil
}

func matches(sig signal.Signal, req storage.QueryRequest) bool {
	if !req.Start.IsZero() && sig.ReceivedAt.Before(req.Start) {
		return false
	}
	if !req.End.IsZero() && sig.ReceivedAt.After(req.End) {
		return false
	}
	if req.AppID != "" && sig.AppID != req.AppID {
		return false
	}
	if req.SignalType != "" && sig.Type != req.SignalType {
		return false
	}
	if req.SessionID != "" && sig.SessionID != req.SessionID {
		return false
	}
	return true
}

// Delete removes signals received before the given time
func (s *Storage) Delete(ctx context.Context, before time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]signal.Signal, 0, len(s.signals))
	for _, sig := range s.signals {
		if !sig.ReceivedAt.Before(before) {
			filtered = append(filtered, sig)
		}
	}
	s.signals = filtered
	return nil
}

// Close is a no-op for memory storage
func (s *Storage) Close() error {
	return nil
}

// Stats returns storage statistics
func (s *Storage) Stats(ctx context.Context) (*storage.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &storage.Stats{
		TotalSignals: uint64(len(s.signals)),
	}
	for _, sig := range s.signals {
		if stats.OldestSignal.IsZero() || sig.ReceivedAt.Before(stats.OldestSignal) {
			stats.OldestSignal = sig.ReceivedAt
		}
		if sig.ReceivedAt.After(stats.NewestSignal) {
			stats.NewestSignal = sig.ReceivedAt
		}
	}
	return stats, nil
}
