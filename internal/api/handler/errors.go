package handler

import (
	"net/http"

	"github.com/mribera/penjat3d/internal/api/apierr"
)

// WriteError writes an error response, mapping domain errors to HTTP codes
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}
