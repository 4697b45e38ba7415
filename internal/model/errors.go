package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Data file errors
	ErrMissingDataFile = errors.New("data file not found")
	ErrCatalogNotFound = errors.New("catalog not found in storage")

	// Player errors
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrNoPlayerSelected  = fmt.Errorf("%w: no player selected", ErrUnknownPlayer)
	ErrInsufficientFunds = errors.New("insufficient funds to purchase a vowel")

	// Turn errors
	ErrNoSpinAmount           = errors.New("no spin amount entered")
	ErrInvalidSpinAmount      = errors.New("spin amount must not be negative")
	ErrInvalidLetter          = errors.New("invalid letter")
	ErrLetterAlreadyRequested = errors.New("letter has already been requested")
	ErrIncorrectGuess         = errors.New("incorrect guess")
	ErrRevealInProgress       = errors.New("a reveal is still in progress")
	ErrUnknownRevealToken     = errors.New("unknown reveal token")

	// Puzzle errors
	ErrNoActivePuzzle   = errors.New("no puzzle is active")
	ErrPuzzleSolved     = errors.New("puzzle has already been solved")
	ErrPuzzlesExhausted = errors.New("all puzzles have been shown")
	ErrLayoutOverflow   = errors.New("puzzle does not fit on the board")
	ErrEmptyWord        = errors.New("puzzle phrase contains an empty word")
)
