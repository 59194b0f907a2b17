package config

import "time"

// Server defaults
const (
	DefaultPort        = "8080"
	DefaultMaxMemoryMB = 48
	DefaultDataDir     = "./data/signalbeam"
)

// Ingest timeouts and limits
const (
	IngestTimeout      = 5 * time.Second
	IngestListTimeout  = 5 * time.Second
	IngestStatsTimeout = 5 * time.Second
	IngestListLimit    = 500
)

// WebSocket configuration
const (
	WSReadBufferSize  = 1024
	WSWriteBufferSize = 1024
	WSBroadcastBuffer = 256
	WSChannelBuffer   = 10
	WSWriteDeadline   = 10 * time.Second
)

// Retention
const (
	BadgerGCInterval = 10 * time.Minute
)
