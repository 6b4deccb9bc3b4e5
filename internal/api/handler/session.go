package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mribera/penjat3d/internal/api/apierr"
	"github.com/mribera/penjat3d/internal/api/request"
	"github.com/mribera/penjat3d/internal/api/response"
	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/media"
	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/web/sse"
)

// SessionHandler handles the JSON session API
type SessionHandler struct {
	controller *session.Controller
	hubManager *sse.HubManager
	device     *media.Device
	logger     *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	controller *session.Controller,
	hubManager *sse.HubManager,
	device *media.Device,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		hubManager: hubManager,
		device:     device,
		logger:     logger,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.controller.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionViewFromModel(view))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	view, err := h.controller.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionViewFromModel(view))
}

// Guess handles POST /api/v1/sessions/{id}/guess
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	var letter rune
	for _, c := range req.Letter {
		letter = c
		break
	}
	if letter == 0 {
		WriteError(w, apierr.NewInvalidRequestError("Missing letter"))
		return
	}

	view, err := h.controller.Guess(r.Context(), id, letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionViewFromModel(view))
}

// Restart handles POST /api/v1/sessions/{id}/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	view, err := h.controller.Restart(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionViewFromModel(view))
}

// Events handles GET /api/v1/sessions/{id}/events: the SSE stream
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if _, err := h.controller.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}

// Mute handles PUT /api/v1/media/mute
func (h *SessionHandler) Mute(w http.ResponseWriter, r *http.Request) {
	var req request.MuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	h.device.EnsureStarted()
	h.device.SetMuted(req.Muted)

	response.JSON(w, http.StatusOK, map[string]bool{"muted": h.device.Muted()})
}
