package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/media"
	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/web/sse"
	"github.com/mribera/penjat3d/internal/web/templates/components"
	"github.com/mribera/penjat3d/internal/web/templates/layout"
	"github.com/mribera/penjat3d/internal/web/templates/pages"
)

// SessionHandler handles the game session pages and actions
type SessionHandler struct {
	controller  *session.Controller
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
	device      *media.Device
	logger      *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	controller *session.Controller,
	hubManager *sse.HubManager,
	device *media.Device,
	logger *slog.Logger,
) *SessionHandler {
	h := &SessionHandler{
		controller:  controller,
		hubManager:  hubManager,
		broadcaster: sse.NewBroadcaster(hubManager, logger),
		device:      device,
		logger:      logger,
	}

	// Deferred win/loss flips land on a timer, outside any request; push
	// them to connected clients the same way guess updates go out
	controller.SetUpdateListener(h.broadcaster.BroadcastSessionUpdate)

	return h
}

// Create handles POST /session: starts a new session and redirects to it
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.controller.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/session/"+string(view.Session.ID), http.StatusSeeOther)
}

// View handles GET /session/{id}: renders the game page
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	view, err := h.controller.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Partida",
			Muted: h.device.Muted(),
		},
		View: view,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Guess handles POST /session/{id}/guess: submits a letter
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var letter rune
	for _, c := range r.PostFormValue("letter") {
		letter = c
		break
	}

	view, err := h.controller.Guess(r.Context(), id, letter)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.broadcaster.BroadcastSessionUpdate(r.Context(), view)

	if r.Header.Get("HX-Request") == "true" {
		// Fragments arrive over SSE; nothing to swap inline
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/session/"+string(id), http.StatusSeeOther)
}

// Restart handles POST /session/{id}/restart: re-runs the start protocol
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	view, err := h.controller.Restart(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.broadcaster.BroadcastSessionUpdate(r.Context(), view)
	http.Redirect(w, r, "/session/"+string(view.Session.ID), http.StatusSeeOther)
}

// Events handles GET /session/{id}/events: the SSE stream
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.controller.Get(r.Context(), id); err != nil {
		http.NotFound(w, r)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}

// Mute handles POST /media/mute: first user gesture starts the shared audio
// device; afterwards it just toggles
func (h *SessionHandler) Mute(w http.ResponseWriter, r *http.Request) {
	h.device.EnsureStarted()
	muted := h.device.ToggleMuted()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.MuteToggle(muted).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
