package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/krishimitra/krishimitra/internal/i18n"
	"github.com/krishimitra/krishimitra/internal/service"
)

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	text, err := s.chat.Reply(r.Context(), i18n.Parse(req.Language), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrInputMissing) {
			s.writeError(w, http.StatusBadRequest, "No message provided")
			return
		}
		s.logger.Error("chat failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to process chat message")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"response": text})
}
