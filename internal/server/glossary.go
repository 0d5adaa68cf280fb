package server

import (
	"net/http"

	"github.com/bobmcallan/cleartext/internal/models"
)

// handleGlossary handles POST /glossary. Empty text yields an empty glossary;
// only a failure to analyse the text is an error.
func (s *Server) handleGlossary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.TextInput
	if !DecodeJSON(w, r, &req) {
		return
	}

	glossary, err := s.app.GlossaryService.BuildGlossary(r.Context(), req.Text)
	if err != nil {
		WriteServiceError(w, err, "Error generating glossary")
		return
	}

	s.logger.Debug().Int("terms", glossary.Len()).Msg("Glossary generated")

	WriteJSON(w, http.StatusOK, models.GlossaryResponse{Glossary: glossary.Definitions()})
}
