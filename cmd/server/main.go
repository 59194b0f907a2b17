// Command server runs a self-hosted Signalbeam ingest sink: a
// wire-compatible endpoint for development and testing that stores
// received signals locally and streams them to live-tail clients.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/signalbeam/signalbeam/pkg/config"
	"github.com/signalbeam/signalbeam/pkg/httpx"
	"github.com/signalbeam/signalbeam/pkg/ingest"
	"github.com/signalbeam/signalbeam/pkg/storage"
	badgerstore "github.com/signalbeam/signalbeam/pkg/storage/badger"
)

const (
	serverReadTimeout  = 10 * time.Second
	serverWriteTimeout = 10 * time.Second
	shutdownTimeout    = 30 * time.Second
)

// Config holds server configuration.
type Config struct {
	Port        string
	DataDir     string
	MaxMemoryMB int64
	Retention   time.Duration
}

// loadConfig loads configuration from environment variables.
func loadConfig() Config {
	cfg := Config{
		Port:        getEnv("SIGNALBEAM_PORT", config.DefaultPort),
		DataDir:     getEnv("SIGNALBEAM_DATA_DIR", config.DefaultDataDir),
		MaxMemoryMB: getEnvInt64("SIGNALBEAM_MAX_MEMORY_MB", config.DefaultMaxMemoryMB),
	}
	if days := getEnvInt64("SIGNALBEAM_RETENTION_DAYS", 0); days > 0 {
		cfg.Retention = time.Duration(days) * 24 * time.Hour
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s=%q: %v", key, v, err)
	}
	return n
}

func main() {
	cfg := loadConfig()

	log.Println("Initializing BadgerDB signal storage...")
	store, err := badgerstore.New(badgerstore.Config{
		Path:        cfg.DataDir,
		MaxMemoryMB: cfg.MaxMemoryMB,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := ingest.NewSignalHub()
	go hub.Run(ctx)

	handler := ingest.NewHandler(store)
	handler.SetHub(hub)

	if cfg.Retention > 0 {
		go runRetention(ctx, store, cfg.Retention)
	}

	router := mux.NewRouter()
	router.HandleFunc("/v2/", handler.HandleIngest).Methods("POST")
	router.HandleFunc("/v2/namespace/{namespace}/", handler.HandleIngest).Methods("POST")
	router.HandleFunc("/v2/signals", handler.HandleSignalsList).Methods("GET")
	router.HandleFunc("/v2/stats", handler.HandleStats).Methods("GET")
	router.HandleFunc("/v2/live", hub.HandleWebSocket).Methods("GET")
	router.HandleFunc("/v2/health", handleHealth).Methods("GET")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
	}

	go func() {
		log.Printf("Signalbeam sink listening on :%s (data: %s)", cfg.Port, cfg.DataDir)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Goodbye")
}

// runRetention deletes signals older than the retention window, once
// per GC interval.
func runRetention(ctx context.Context, store storage.Storage, retention time.Duration) {
	ticker := time.NewTicker(config.BadgerGCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-retention)
			if err := store.Delete(ctx, cutoff); err != nil {
				log.Printf("Retention delete failed: %v", err)
			}
		}
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
