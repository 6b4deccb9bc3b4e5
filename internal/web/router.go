package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mribera/penjat3d/internal/middleware"
	"github.com/mribera/penjat3d/internal/services/media"
	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/web/handler"
	"github.com/mribera/penjat3d/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	HubManager        *sse.HubManager
	MediaDevice       *media.Device
	StaticDir         string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	r.Use(middleware.Logging(cfg.Logger))

	// Create SSE hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	device := cfg.MediaDevice
	if device == nil {
		device = media.NewDevice()
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler(device)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, hubManager, device, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	// Session routes
	r.HandleFunc("/session", sessionHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/session/{id}", sessionHandler.View).Methods(http.MethodGet)
	r.HandleFunc("/session/{id}/guess", sessionHandler.Guess).Methods(http.MethodPost)
	r.HandleFunc("/session/{id}/restart", sessionHandler.Restart).Methods(http.MethodPost)
	r.HandleFunc("/session/{id}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Media routes
	r.HandleFunc("/media/mute", sessionHandler.Mute).Methods(http.MethodPost)

	return r
}
