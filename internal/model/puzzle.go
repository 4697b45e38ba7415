package model

import (
	"strings"
	"unicode/utf8"
)

// PuzzleID is the sequence number of a puzzle within its source
type PuzzleID int

// Puzzle is one phrase to be guessed. Immutable once loaded.
type Puzzle struct {
	ID              PuzzleID
	FullPhrase      string
	IndividualWords []string // FullPhrase split on single spaces
	NumberOfWords   int
	PhraseLength    int // in characters, spaces included
}

// NewPuzzle creates a puzzle from a phrase
func NewPuzzle(id PuzzleID, phrase string) *Puzzle {
	words := strings.Split(phrase, " ")
	return &Puzzle{
		ID:              id,
		FullPhrase:      phrase,
		IndividualWords: words,
		NumberOfWords:   len(words),
		PhraseLength:    utf8.RuneCountInString(phrase),
	}
}

// LetterCount returns the number of characters that occupy tiles
func (p *Puzzle) LetterCount() int {
	total := 0
	for _, w := range p.IndividualWords {
		total += utf8.RuneCountInString(w)
	}
	return total
}

// Matches compares a guess against the phrase, ignoring case but not whitespace
func (p *Puzzle) Matches(guess string) bool {
	return strings.ToLower(guess) == strings.ToLower(p.FullPhrase)
}
