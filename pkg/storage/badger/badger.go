package badger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/signalbeam/signalbeam/pkg/signal"
	"github.com/signalbeam/signalbeam/pkg/storage"
)

// keyPrefix namespaces signal records inside the badger keyspace.
var keyPrefix = []byte("sig:")

// Storage implements storage.Storage using BadgerDB (LSM tree)
type Storage struct {
	db *badger.DB
}

// Config holds BadgerDB configuration
type Config struct {
	// Path to store database files
	Path string

	// InMemory mode (for testing)
	InMemory bool

	// MaxMemoryMB limits BadgerDB memory usage in MB (0 = defaults).
	// The sink is meant to run next to a dev workflow, so defaults are
	// deliberately small.
	MaxMemoryMB int64
}

// New creates a BadgerDB storage backend
func New(cfg Config) (*Storage, error) {
	opts := badger.DefaultOptions(cfg.Path)

	if cfg.InMemory {
		opts = opts.WithInMemory(true)
	}

	// Badger's defaults assume a server; bound the memtable and caches
	// so a laptop-resident sink stays under ~50 MB.
	memTableSize := int64(16 * 1024 * 1024)
	if cfg.MaxMemoryMB > 0 {
		memTableSize = cfg.MaxMemoryMB * 1024 * 1024 / 3
	}

	opts = opts.
		WithCompression(options.Snappy).
		WithNumVersionsToKeep(1).
		WithMemTableSize(memTableSize).
		WithNumMemtables(3).
		WithBlockCacheSize(memTableSize / 2).
		WithIndexCacheSize(memTableSize / 4).
		WithMaxLevels(4).
		WithNumCompactors(1).
		WithValueThreshold(1024).
		WithValueLogFileSize(64 << 20)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return &Storage{db: db}, nil
}

// recordKey builds a time-ordered key: prefix, 8-byte big-endian unix
// nanos of receivedAt, then an xxhash of the identifying fields so
// signals sharing a timestamp do not collide.
func recordKey(sig signal.Signal) []byte {
	key := make([]byte, 0, len(keyPrefix)+16)
	key = append(key, keyPrefix...)
	key = binary.BigEndian.AppendUint64(key, uint64(sig.ReceivedAt.UnixNano()))
	key = binary.BigEndian.AppendUint64(key, xxhash.Sum64String(sig.AppID+"|"+sig.SessionID+"|"+sig.Type+"|"+sig.ClientUser))
	return key
}

func keyTimestamp(key []byte) time.Time {
	nanos := binary.BigEndian.Uint64(key[len(keyPrefix) : len(keyPrefix)+8])
	return time.Unix(0, int64(nanos)).UTC()
}

// Write stores signals. The context is honored between entries so a
// cancelled request does not keep writing.
func (s *Storage) Write(ctx context.Context, signals []signal.Signal) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, sig := range signals {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := json.Marshal(sig)
		if err != nil {
			return fmt.Errorf("failed to marshal signal: %w", err)
		}
		if err := wb.Set(recordKey(sig), value); err != nil {
			return fmt.Errorf("failed to queue signal: %w", err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to write signals: %w", err)
	}
	return nil
}

// Query retrieves signals matching the request, in receivedAt order.
func (s *Storage) Query(ctx context.Context, req storage.QueryRequest) ([]signal.Signal, error) {
	var results []signal.Signal

	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = keyPrefix
		it := txn.NewIterator(itOpts)
		defer it.Close()

		seek := keyPrefix
		if !req.Start.IsZero() {
			seek = binary.BigEndian.AppendUint64(append([]byte{}, keyPrefix...), uint64(req.Start.UnixNano()))
		}

		for it.Seek(seek); it.ValidForPrefix(keyPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			if !req.End.IsZero() && keyTimestamp(item.Key()).After(req.End) {
				break
			}

			var sig signal.Signal
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &sig)
			}); err != nil {
				return fmt.Errorf("failed to decode signal: %w", err)
			}

			if req.AppID != "" && sig.AppID != req.AppID {
				continue
			}
			if req.SignalType != "" && sig.Type != req.SignalType {
				continue
			}
			if req.SessionID != "" && sig.SessionID != req.SessionID {
				continue
			}

			results = append(results, sig)
			if req.Limit > 0 && len(results) >= req.Limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Delete removes signals received before the given time.
func (s *Storage) Delete(ctx context.Context, before time.Time) error {
	var stale [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = keyPrefix
		itOpts.PrefetchValues = false
		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := it.Item().KeyCopy(nil)
			if !keyTimestamp(key).Before(before) {
				break
			}
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("failed to queue delete: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to delete signals: %w", err)
	}
	return nil
}

// Close cleanly shuts down the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Stats returns storage statistics
func (s *Storage) Stats(ctx context.Context) (*storage.Stats, error) {
	stats := &storage.Stats{}

	lsm, vlog := s.db.Size()
	stats.SizeBytes = uint64(lsm + vlog)

	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = keyPrefix
		itOpts.PrefetchValues = false
		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			ts := keyTimestamp(it.Item().Key())
			if stats.OldestSignal.IsZero() {
				stats.OldestSignal = ts
			}
			stats.NewestSignal = ts
			stats.TotalSignals++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
