package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wheelgame-go/internal/api/request"
	"github.com/mcoot/wheelgame-go/internal/api/response"
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/services/scoring"
)

// PlayerHandler handles scoreboard endpoints
type PlayerHandler struct {
	gameController *game.Controller
	scoringService *scoring.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(gameController *game.Controller, scoringService *scoring.Service) *PlayerHandler {
	return &PlayerHandler{
		gameController: gameController,
		scoringService: scoringService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players := h.gameController.Scores()

	resp := response.Players{Players: response.ScoresFromModel(players)}
	if leader := h.scoringService.DetermineLeader(players); leader != "" {
		name := string(leader)
		resp.Leader = &name
	}
	response.JSON(w, http.StatusOK, resp)
}

// GetScore handles GET /api/v1/players/{name}/score
func (h *PlayerHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	name := model.PlayerName(mux.Vars(r)["name"])

	score, err := h.gameController.RetrieveScore(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Score{Player: string(name), Score: score})
}

// UpdateScore handles PATCH /api/v1/players/{name}/score
func (h *PlayerHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	name := model.PlayerName(mux.Vars(r)["name"])

	var req request.UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var op model.ScoreOp
	switch model.ScoreOpKind(req.Op) {
	case model.ScoreOpAdjust:
		op = model.Adjust(req.Amount)
	case model.ScoreOpBankrupt:
		op = model.BankruptOp()
	default:
		WriteError(w, NewInvalidRequestError("op must be 'adjust' or 'bankrupt'"))
		return
	}

	score, err := h.gameController.UpdateScore(r.Context(), name, op)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Score{Player: string(name), Score: score})
}
