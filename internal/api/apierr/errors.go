package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeInvalidLetter          = "INVALID_LETTER"
	CodeInvalidSpinAmount      = "INVALID_SPIN_AMOUNT"
	CodeNoSpinAmount           = "NO_SPIN_AMOUNT"
	CodeInsufficientFunds      = "INSUFFICIENT_FUNDS"
	CodeIncorrectGuess         = "INCORRECT_GUESS"
	CodeNoPlayerSelected       = "NO_PLAYER_SELECTED"
	CodeUnknownPlayer          = "UNKNOWN_PLAYER"
	CodeLetterAlreadyRequested = "LETTER_ALREADY_REQUESTED"
	CodeRevealInProgress       = "REVEAL_IN_PROGRESS"
	CodeUnknownRevealToken     = "UNKNOWN_REVEAL_TOKEN"
	CodeNoActivePuzzle         = "NO_ACTIVE_PUZZLE"
	CodePuzzleSolved           = "PUZZLE_SOLVED"
	CodePuzzlesExhausted       = "PUZZLES_EXHAUSTED"
	CodeLayoutOverflow         = "LAYOUT_OVERFLOW"
	CodeEmptyWord              = "EMPTY_WORD"
	CodeInternalError          = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status an error maps to
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors. ErrNoPlayerSelected wraps ErrUnknownPlayer, so it goes first.
	switch {
	case errors.Is(err, model.ErrNoPlayerSelected):
		return &httpError{http.StatusConflict, APIError{CodeNoPlayerSelected, "Select a player first"}}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownPlayer, "Player is not on the scoreboard"}}
	case errors.Is(err, model.ErrNoSpinAmount):
		return &httpError{http.StatusConflict, APIError{CodeNoSpinAmount, "Please add the spin amount before requesting a letter"}}
	case errors.Is(err, model.ErrInvalidSpinAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSpinAmount, "Spin amount must not be negative"}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, "Not enough money to purchase a vowel"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrLetterAlreadyRequested):
		return &httpError{http.StatusConflict, APIError{CodeLetterAlreadyRequested, "Letter has already been requested"}}
	case errors.Is(err, model.ErrIncorrectGuess):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeIncorrectGuess, "That phrase is incorrect"}}
	case errors.Is(err, model.ErrRevealInProgress):
		return &httpError{http.StatusConflict, APIError{CodeRevealInProgress, "Letters are still being revealed"}}
	case errors.Is(err, model.ErrUnknownRevealToken):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownRevealToken, "No such reveal is pending"}}
	case errors.Is(err, model.ErrNoActivePuzzle):
		return &httpError{http.StatusConflict, APIError{CodeNoActivePuzzle, "No puzzle is active"}}
	case errors.Is(err, model.ErrPuzzleSolved):
		return &httpError{http.StatusConflict, APIError{CodePuzzleSolved, "Puzzle has already been solved"}}
	case errors.Is(err, model.ErrPuzzlesExhausted):
		return &httpError{http.StatusConflict, APIError{CodePuzzlesExhausted, "There are no more puzzles"}}
	case errors.Is(err, model.ErrLayoutOverflow):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeLayoutOverflow, "Puzzle does not fit on the board"}}
	case errors.Is(err, model.ErrEmptyWord):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeEmptyWord, "Puzzle phrase contains an empty word"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
