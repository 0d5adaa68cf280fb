package server

import (
	"net/http"

	"github.com/bobmcallan/cleartext/internal/models"
)

// handleSimplify handles POST /simplify.
func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.TextInput
	if !DecodeJSON(w, r, &req) {
		return
	}

	simplified, err := s.app.TutorService.Simplify(r.Context(), req.Text)
	if err != nil {
		WriteServiceError(w, err, "Error processing simplification")
		return
	}

	WriteJSON(w, http.StatusOK, models.SimplifyResponse{Simplified: simplified})
}

// handleAskTutor handles POST /ask-tutor.
func (s *Server) handleAskTutor(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.TextInput
	if !DecodeJSON(w, r, &req) {
		return
	}

	explanation, err := s.app.TutorService.Explain(r.Context(), req.Text)
	if err != nil {
		WriteServiceError(w, err, "Error processing tutor request")
		return
	}

	WriteJSON(w, http.StatusOK, models.ExplainResponse{Explanation: explanation})
}
