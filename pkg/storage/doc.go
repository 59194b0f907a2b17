// Package storage defines how the sink persists received signals.
//
// Two backends implement the Storage interface: memory (volatile, used
// in tests and throwaway dev runs) and badger (embedded LSM store for
// self-hosted sinks). Both keep signals ordered by receivedAt so range
// queries and retention deletes stay cheap.
package storage
