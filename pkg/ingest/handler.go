// Package ingest implements the sink's signal intake: the wire
// endpoints clients POST to, validation limits, session cardinality
// tracking, and live-tail streaming.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/signalbeam/signalbeam/pkg/config"
	"github.com/signalbeam/signalbeam/pkg/httpx"
	"github.com/signalbeam/signalbeam/pkg/signal"
	"github.com/signalbeam/signalbeam/pkg/storage"
)

// Handler handles signal ingestion
type Handler struct {
	store    storage.Storage
	sessions *SessionTracker
	hub      *SignalHub
}

// NewHandler creates a new ingest handler
func NewHandler(store storage.Storage) *Handler {
	return &Handler{
		store:    store,
		sessions: NewSessionTracker(),
	}
}

// SetHub attaches a live-tail hub; accepted signals are broadcast to it.
func (h *Handler) SetHub(hub *SignalHub) {
	h.hub = hub
}

// IngestResponse represents the response payload
type IngestResponse struct {
	Status    string `json:"status"`
	Count     int    `json:"count"`
	Namespace string `json:"namespace,omitempty"`
}

// HandleIngest handles POST /v2/ and /v2/namespace/{namespace}/.
// The body is a bare JSON array of signals; the client sends
// one-element arrays, but the contract accepts real batches.
func (h *Handler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	namespace := mux.Vars(r)["namespace"]

	var signals []signal.Signal
	if err := json.NewDecoder(r.Body).Decode(&signals); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, fmt.Errorf("body must be a JSON array of signals: %w", err))
		return
	}
	if len(signals) > MaxSignalsPerRequest {
		httpx.RespondError(w, http.StatusBadRequest, ErrTooManySignals)
		return
	}

	for _, s := range signals {
		if err := ValidateSignal(s); err != nil {
			httpx.RespondError(w, http.StatusBadRequest, fmt.Errorf("invalid signal: %w", err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.IngestTimeout)
	defer cancel()

	if err := h.store.Write(ctx, signals); err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, fmt.Errorf("failed to store signals: %w", err))
		return
	}

	for _, s := range signals {
		h.sessions.Track(s.AppID, s.SessionID, s.ClientUser)
	}

	if h.hub != nil && h.hub.HasClients() {
		h.hub.Broadcast(signals)
	}

	httpx.RespondJSON(w, http.StatusOK, IngestResponse{
		Status:    "success",
		Count:     len(signals),
		Namespace: namespace,
	})
}

// HandleSignalsList handles GET /v2/signals, returning recent signals
// filtered by the app, type, session, and since query parameters.
func (h *Handler) HandleSignalsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := storage.QueryRequest{
		AppID:      q.Get("app"),
		SignalType: q.Get("type"),
		SessionID:  q.Get("session"),
		Limit:      config.IngestListLimit,
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			httpx.RespondError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		if limit < req.Limit {
			req.Limit = limit
		}
	}
	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, fmt.Errorf("invalid since timestamp %q", v))
			return
		}
		req.Start = since
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.IngestListTimeout)
	defer cancel()

	signals, err := h.store.Query(ctx, req)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, fmt.Errorf("query failed: %w", err))
		return
	}
	if signals == nil {
		signals = []signal.Signal{}
	}
	httpx.RespondJSON(w, http.StatusOK, signals)
}

// StatsResponse combines storage and session statistics.
type StatsResponse struct {
	Storage  storage.Stats `json:"storage"`
	Sessions SessionStats  `json:"sessions"`
}

// HandleStats handles GET /v2/stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), config.IngestStatsTimeout)
	defer cancel()

	stats, err := h.store.Stats(ctx)
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, fmt.Errorf("stats failed: %w", err))
		return
	}

	httpx.RespondJSON(w, http.StatusOK, StatsResponse{
		Storage:  *stats,
		Sessions: h.sessions.Stats(),
	})
}
