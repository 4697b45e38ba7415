package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/mcoot/wheelgame-go/internal/model"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/web/sse"
	"github.com/mcoot/wheelgame-go/internal/web/templates/components"
	"github.com/mcoot/wheelgame-go/internal/web/templates/layout"
	"github.com/mcoot/wheelgame-go/internal/web/templates/pages"
)

// EventsPath is where the page subscribes to board updates
const EventsPath = "/game/events"

// GameHandler handles the board page and the host's actions
type GameHandler struct {
	gameController *game.Controller
	hub            *sse.Hub
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController *game.Controller, hub *sse.Hub, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hub:            hub,
		logger:         logger,
	}
}

// View renders the board page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	data := pages.GameData{
		PageData: layout.PageData{Title: "Wheel of Fortune", EventsURL: EventsPath},
		Snapshot: h.gameController.Snapshot(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Events streams board, scoreboard and message updates
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub)
}

// Next loads the next puzzle
func (h *GameHandler) Next(w http.ResponseWriter, r *http.Request) {
	_, err := h.gameController.LoadNextPuzzle(r.Context())
	h.respond(w, r, err)
}

// Select chooses the current player
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respond(w, r, errInvalidForm)
		return
	}
	name := model.PlayerName(strings.TrimSpace(r.FormValue("player")))
	h.respond(w, r, h.gameController.SelectPlayer(r.Context(), name))
}

// Spin records a spin amount typed in by the host
func (h *GameHandler) Spin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respond(w, r, errInvalidForm)
		return
	}
	amount, err := strconv.Atoi(strings.TrimSpace(r.FormValue("amount")))
	if err != nil {
		h.respond(w, r, errors.New("please enter the spin amount as a whole number"))
		return
	}
	h.respond(w, r, h.gameController.EnterSpin(r.Context(), amount))
}

// Wheel spins the wheel for the selected player
func (h *GameHandler) Wheel(w http.ResponseWriter, r *http.Request) {
	_, err := h.gameController.SpinWheel(r.Context())
	h.respond(w, r, err)
}

// Letter requests a letter for the selected player
func (h *GameHandler) Letter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respond(w, r, errInvalidForm)
		return
	}
	value := strings.TrimSpace(r.FormValue("letter"))
	if utf8.RuneCountInString(value) != 1 {
		h.respond(w, r, model.ErrInvalidLetter)
		return
	}
	letter, _ := utf8.DecodeRuneInString(value)

	_, err := h.gameController.RequestLetter(r.Context(), letter)
	h.respond(w, r, err)
}

// Solve submits a guess for the selected player
func (h *GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respond(w, r, errInvalidForm)
		return
	}
	_, err := h.gameController.SubmitSolve(r.Context(), r.FormValue("guess"))
	h.respond(w, r, err)
}

// Bankrupt resets the selected player's score
func (h *GameHandler) Bankrupt(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.gameController.Bankrupt(r.Context()))
}

type oobPart struct {
	id string
	c  templ.Component
}

var errInvalidForm = errors.New("invalid form data")

// announcedErrors already put their own message on the board
var announcedErrors = []error{
	model.ErrNoSpinAmount,
	model.ErrInsufficientFunds,
	model.ErrIncorrectGuess,
	model.ErrPuzzlesExhausted,
	model.ErrLayoutOverflow,
}

// respond writes out-of-band swaps for the parts of the page an action can
// change. Board and scoreboard changes also reach every page through SSE.
func (h *GameHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	snap := h.gameController.Snapshot()

	parts := []oobPart{
		{components.StatusID, components.Status(snap)},
		{components.ScoreboardID, components.Scoreboard(snap.Players, snap.SelectedPlayer)},
		{components.PendingSpinID, components.PendingSpin(snap.PendingSpin)},
		{components.AlphabetID, components.Alphabet(snap.RequestedLetters)},
	}
	if err != nil {
		h.logger.Info("game action rejected",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		parts = append(parts, oobPart{components.MessageID, components.Message(errorMessage(err, snap.Message))})
	}

	var buf bytes.Buffer
	for _, part := range parts {
		var inner bytes.Buffer
		if renderErr := part.c.Render(r.Context(), &inner); renderErr != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		buf.WriteString(sse.WrapForOOBSwap(part.id, inner.String()))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// errorMessage returns the text to show for a rejected action
func errorMessage(err error, announced string) string {
	for _, target := range announcedErrors {
		if errors.Is(err, target) && announced != "" {
			return announced
		}
	}
	msg := err.Error()
	if msg == "" {
		return msg
	}
	first, size := utf8.DecodeRuneInString(msg)
	return strings.ToUpper(string(first)) + msg[size:]
}
