package wheel

import (
	"log/slog"

	"github.com/mcoot/wheelgame-go/internal/dependencies/random"
)

// WedgeKind distinguishes cash wedges from the bankrupt wedge
type WedgeKind string

const (
	WedgeCash     WedgeKind = "cash"
	WedgeBankrupt WedgeKind = "bankrupt"
)

// Wedge is one segment of the wheel
type Wedge struct {
	Kind   WedgeKind `json:"kind"`
	Amount int       `json:"amount"` // zero for the bankrupt wedge
}

// DefaultWedges is a 24-segment wheel with two bankrupt wedges
var DefaultWedges = []Wedge{
	{Kind: WedgeCash, Amount: 2500},
	{Kind: WedgeCash, Amount: 600},
	{Kind: WedgeCash, Amount: 700},
	{Kind: WedgeCash, Amount: 600},
	{Kind: WedgeCash, Amount: 650},
	{Kind: WedgeCash, Amount: 500},
	{Kind: WedgeCash, Amount: 700},
	{Kind: WedgeBankrupt},
	{Kind: WedgeCash, Amount: 600},
	{Kind: WedgeCash, Amount: 550},
	{Kind: WedgeCash, Amount: 500},
	{Kind: WedgeCash, Amount: 600},
	{Kind: WedgeBankrupt},
	{Kind: WedgeCash, Amount: 650},
	{Kind: WedgeCash, Amount: 1000},
	{Kind: WedgeCash, Amount: 700},
	{Kind: WedgeCash, Amount: 800},
	{Kind: WedgeCash, Amount: 500},
	{Kind: WedgeCash, Amount: 650},
	{Kind: WedgeCash, Amount: 500},
	{Kind: WedgeCash, Amount: 900},
	{Kind: WedgeCash, Amount: 300},
	{Kind: WedgeCash, Amount: 900},
	{Kind: WedgeCash, Amount: 500},
}

// Spinner picks a wedge
type Spinner interface {
	Spin() Wedge
}

// Service spins a wheel of wedges using an injected random source
type Service struct {
	wedges []Wedge
	random random.Random
	logger *slog.Logger
}

// New creates a new WheelService. An empty wedge list uses DefaultWedges.
func New(wedges []Wedge, rnd random.Random, logger *slog.Logger) *Service {
	if len(wedges) == 0 {
		wedges = DefaultWedges
	}
	return &Service{
		wedges: wedges,
		random: rnd,
		logger: logger,
	}
}

// Spin returns a uniformly chosen wedge
func (s *Service) Spin() Wedge {
	wedge := s.wedges[s.random.Intn(len(s.wedges))]
	s.logger.Debug("wheel spun",
		slog.String("kind", string(wedge.Kind)),
		slog.Int("amount", wedge.Amount),
	)
	return wedge
}

// Wedges returns the wheel's segments in order
func (s *Service) Wedges() []Wedge {
	return append([]Wedge(nil), s.wedges...)
}

var _ Spinner = (*Service)(nil)
