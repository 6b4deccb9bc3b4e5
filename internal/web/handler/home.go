package handler

import (
	"net/http"

	"github.com/mribera/penjat3d/internal/services/media"
	"github.com/mribera/penjat3d/internal/web/templates/layout"
	"github.com/mribera/penjat3d/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	device *media.Device
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(device *media.Device) *HomeHandler {
	return &HomeHandler{device: device}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Inici",
			Muted: h.device.Muted(),
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
