package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/mcoot/wheelgame-go/internal/api/request"
	"github.com/mcoot/wheelgame-go/internal/api/response"
	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/web/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	hub            *sse.Hub
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, hub *sse.Hub) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hub:            hub,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK)
}

// Next handles POST /api/v1/game/next
func (h *GameHandler) Next(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gameController.LoadNextPuzzle(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	h.writeState(w, http.StatusOK)
}

// Select handles POST /api/v1/game/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Player == "" {
		WriteError(w, NewInvalidRequestError("player is required"))
		return
	}

	if err := h.gameController.SelectPlayer(r.Context(), model.PlayerName(req.Player)); err != nil {
		WriteError(w, err)
		return
	}
	h.writeState(w, http.StatusOK)
}

// Spin handles POST /api/v1/game/spin
func (h *GameHandler) Spin(w http.ResponseWriter, r *http.Request) {
	var req request.SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Amount == nil {
		WriteError(w, NewInvalidRequestError("amount is required"))
		return
	}

	if err := h.gameController.EnterSpin(r.Context(), *req.Amount); err != nil {
		WriteError(w, err)
		return
	}
	h.writeState(w, http.StatusOK)
}

// Wheel handles POST /api/v1/game/spin/wheel
func (h *GameHandler) Wheel(w http.ResponseWriter, r *http.Request) {
	wedge, err := h.gameController.SpinWheel(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SpinResult{
		Wedge:       wedge,
		PendingSpin: h.gameController.Snapshot().PendingSpin,
	})
}

// Letter handles POST /api/v1/game/letters
func (h *GameHandler) Letter(w http.ResponseWriter, r *http.Request) {
	var req request.LetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if utf8.RuneCountInString(req.Letter) != 1 {
		WriteError(w, model.ErrInvalidLetter)
		return
	}
	letter, _ := utf8.DecodeRuneInString(req.Letter)

	if err := h.applyIntents(r, req.Player, req.Spin); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.RequestLetter(r.Context(), letter)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LetterResultFromModel(result))
}

// Solve handles POST /api/v1/game/solve
func (h *GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.applyIntents(r, req.Player, nil); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.SubmitSolve(r.Context(), req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SolveResultFromModel(result))
}

// Bankrupt handles POST /api/v1/game/bankrupt
func (h *GameHandler) Bankrupt(w http.ResponseWriter, r *http.Request) {
	// The body is optional
	var req request.BankruptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.applyIntents(r, req.Player, nil); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.gameController.Bankrupt(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	h.writeState(w, http.StatusOK)
}

// Events handles GET /api/v1/game/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub)
}

// applyIntents selects a player and enters a spin when the request carries them
func (h *GameHandler) applyIntents(r *http.Request, player *string, spin *int) error {
	if player != nil {
		if err := h.gameController.SelectPlayer(r.Context(), model.PlayerName(*player)); err != nil {
			return err
		}
	}
	if spin != nil {
		if err := h.gameController.EnterSpin(r.Context(), *spin); err != nil {
			return err
		}
	}
	return nil
}

func (h *GameHandler) writeState(w http.ResponseWriter, status int) {
	response.JSON(w, status, response.GameStateFromSnapshot(h.gameController.Snapshot()))
}
