package handlers

import (
	"net/http"

	"github.com/WD-Technology/muzagrouppingpong/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// StartHandler handles POST /api/tournaments: generates a bracket from the
// current player pool.
func (h *TournamentHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	bracket, err := h.tournamentService.StartTournament(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ActiveHandler handles GET /api/tournaments/active: the latest non-archived
// tournament with its matches, or null when none exists.
func (h *TournamentHandler) ActiveHandler(w http.ResponseWriter, r *http.Request) {
	bracket, err := h.tournamentService.CurrentBracket(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if bracket == nil {
		if err := writeJSON(w, http.StatusOK, nil, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}
	if err := writeJSON(w, http.StatusOK, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetHandler handles POST /api/tournaments/reset: archives the current
// tournament(s) so a new one can start; history stays queryable.
func (h *TournamentHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.ResetTournament(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
