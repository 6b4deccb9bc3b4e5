package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mribera/penjat3d/internal/api/handler"
	"github.com/mribera/penjat3d/internal/middleware"
	"github.com/mribera/penjat3d/internal/services/media"
	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	HubManager        *sse.HubManager
	MediaDevice       *media.Device
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	device := cfg.MediaDevice
	if device == nil {
		device = media.NewDevice()
	}

	sessionHandler := handler.NewSessionHandler(cfg.SessionController, hubManager, device, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/guess", sessionHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/restart", sessionHandler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Media routes
	api.HandleFunc("/media/mute", sessionHandler.Mute).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
