package web

import (
	"io"
	"net/http"
)

// handleGetUpload serves a stored scan image back to the client.
func (s *Server) handleGetUpload(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	reader, mimeType, err := s.images.Get(r.Context(), key)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.logger.Error("failed to close image reader", "key", key, "error", err)
		}
	}()

	w.Header().Set("Content-Type", mimeType)
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write image failed", "key", key, "error", err)
	}
}
