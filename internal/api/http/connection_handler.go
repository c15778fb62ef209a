package http

import (
	"net/http"

	"videostore-admin/internal/database"
	"videostore-admin/internal/service"
)

// ConnectionHandler lets the shell's settings screen drive the
// connection lifecycle explicitly. Connect failures report transport
// diagnostics; disconnect is always safe to call.
type ConnectionHandler struct {
	db *database.Manager
}

func NewConnectionHandler(db *database.Manager) *ConnectionHandler {
	return &ConnectionHandler{db: db}
}

type connectionStatus struct {
	Connected bool `json:"connected"`
}

// HandleConnect handles POST /api/v1/connection/connect
func (h *ConnectionHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Connect(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, connectionStatus{Connected: true})
}

// HandleDisconnect handles POST /api/v1/connection/disconnect
func (h *ConnectionHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Disconnect(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, connectionStatus{Connected: false})
}

// HandleStatus handles GET /api/v1/connection/status
func (h *ConnectionHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, connectionStatus{Connected: h.db.Connected()})
}

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// HandleStats handles GET /api/v1/dashboard
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
