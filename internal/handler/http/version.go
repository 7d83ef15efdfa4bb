package http

import (
	"net/http"
)

// getServerVersion answers the deployed version as plain text. The
// mini-program's about screen polls it.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
