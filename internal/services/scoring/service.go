package scoring

import (
	"sort"

	"github.com/mcoot/wheelgame-go/internal/model"
)

// Service provides score arithmetic and standings
type Service struct {
	vowelCost  int
	solveBonus int
}

// New creates a new ScoringService
func New(vowelCost, solveBonus int) *Service {
	return &Service{
		vowelCost:  vowelCost,
		solveBonus: solveBonus,
	}
}

// ApplyOp returns the score after applying op. A bankrupt always yields 0.
func (s *Service) ApplyOp(score int, op model.ScoreOp) int {
	switch op.Kind {
	case model.ScoreOpBankrupt:
		return 0
	default:
		return score + op.Amount
	}
}

// LetterPayout is the amount earned for a letter that appears count times
func (s *Service) LetterPayout(count, spin int) int {
	return count * spin
}

// VowelCost is the charge for requesting a vowel
func (s *Service) VowelCost() int {
	return s.vowelCost
}

// SolveBonus is the amount awarded for a correct solve
func (s *Service) SolveBonus() int {
	return s.solveBonus
}

// CanAffordVowel reports whether a player with score can buy a vowel
func (s *Service) CanAffordVowel(score int) bool {
	return score >= s.vowelCost
}

// RankPlayers returns players sorted by score descending, seat order kept for ties
func (s *Service) RankPlayers(players []model.Player) []model.Player {
	ranked := make([]model.Player, len(players))
	copy(ranked, players)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// DetermineLeader returns the leading player's name, or empty string if tie
func (s *Service) DetermineLeader(players []model.Player) model.PlayerName {
	if len(players) == 0 {
		return ""
	}

	ranked := s.RankPlayers(players)
	topScore := ranked[0].Score
	tieCount := 0
	for _, p := range ranked {
		if p.Score == topScore {
			tieCount++
		}
	}

	if tieCount > 1 {
		return "" // Tie
	}

	return ranked[0].Name
}

// Interface for dependency injection
type ServiceInterface interface {
	ApplyOp(score int, op model.ScoreOp) int
	LetterPayout(count, spin int) int
	VowelCost() int
	SolveBonus() int
	CanAffordVowel(score int) bool
	RankPlayers(players []model.Player) []model.Player
	DetermineLeader(players []model.Player) model.PlayerName
}

var _ ServiceInterface = (*Service)(nil)
