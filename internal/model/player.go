package model

// MaxPlayers is the number of seats on the scoreboard
const MaxPlayers = 3

// PlayerName uniquely identifies a contestant
type PlayerName string

// Player is a contestant and their running score
type Player struct {
	Name  PlayerName
	Score int
}

// ScoreOpKind distinguishes score adjustments from a bankrupt reset
type ScoreOpKind string

const (
	ScoreOpAdjust   ScoreOpKind = "adjust"
	ScoreOpBankrupt ScoreOpKind = "bankrupt"
)

// ScoreOp is a change to a player's score
type ScoreOp struct {
	Kind   ScoreOpKind
	Amount int // only meaningful for ScoreOpAdjust
}

// Adjust returns an op that adds amount (which may be negative) to a score
func Adjust(amount int) ScoreOp {
	return ScoreOp{Kind: ScoreOpAdjust, Amount: amount}
}

// BankruptOp returns an op that forces a score to exactly zero
func BankruptOp() ScoreOp {
	return ScoreOp{Kind: ScoreOpBankrupt}
}
