package handlers

import (
	"context"
	"net/http"

	"github.com/WD-Technology/muzagrouppingpong/scoring"
	"github.com/WD-Technology/muzagrouppingpong/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

type pointInput struct {
	Side int `json:"side"`
}

// GetHandler handles GET /api/matches/{matchID}
func (h *MatchHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := h.matchService.GetMatch(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, score, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AwardPointHandler handles POST /api/matches/{matchID}/points
func (h *MatchHandler) AwardPointHandler(w http.ResponseWriter, r *http.Request) {
	h.pointAction(w, r, h.matchService.AwardPoint)
}

// UndoPointHandler handles POST /api/matches/{matchID}/points/undo
func (h *MatchHandler) UndoPointHandler(w http.ResponseWriter, r *http.Request) {
	h.pointAction(w, r, h.matchService.UndoPoint)
}

func (h *MatchHandler) pointAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, matchID int, side scoring.Side) (*services.MatchScore, error)) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input pointInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := action(r.Context(), id, scoring.Side(input.Side))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, score, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartNextSetHandler handles POST /api/matches/{matchID}/sets/next
func (h *MatchHandler) StartNextSetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := h.matchService.StartNextSet(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, score, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FinishHandler handles POST /api/matches/{matchID}/finish
func (h *MatchHandler) FinishHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := h.matchService.FinishMatch(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, score, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
