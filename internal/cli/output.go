package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wheelgame-go/internal/api/response"
	"github.com/mcoot/wheelgame-go/internal/services/wheel"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		o.println(string(data))
	} else {
		o.println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.GameState:
		o.printGameState(v)
	case response.LetterResult:
		o.printLetterResult(v)
	case response.SolveResult:
		o.printf("%s solved the puzzle! +$%d, score $%d\n", v.Player, v.Bonus, v.Score)
	case response.SpinResult:
		o.printSpinResult(v)
	case response.Players:
		o.printPlayers(v)
	case response.Score:
		o.printf("%s: $%d\n", v.Player, v.Score)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGameState(g response.GameState) {
	switch {
	case g.Phase == "exhausted":
		o.println("All puzzles have been shown")
	case g.PuzzleID != nil:
		o.printf("Puzzle %d of %d (%s)\n", g.PuzzlesShown, g.PuzzleCount, g.Phase)
	default:
		o.printf("%d puzzles loaded (%s)\n", g.PuzzleCount, g.Phase)
	}

	o.println(RenderBoard(g.Board))

	for _, p := range g.Players {
		marker := "  "
		if g.SelectedPlayer != nil && *g.SelectedPlayer == p.Player {
			marker = "> "
		}
		o.printf("%s%-12s $%d\n", marker, p.Player, p.Score)
	}

	if g.PendingSpin != nil {
		o.printf("Spin: $%d\n", *g.PendingSpin)
	}
	if len(g.RequestedLetters) > 0 {
		o.printf("Letters: %s\n", strings.Join(g.RequestedLetters, " "))
	}
	if g.RevealInProgress {
		o.println("Revealing...")
	}
	if g.Message != "" {
		o.printf("Message: %s\n", g.Message)
	}
}

// RenderBoard draws the board as text: end tiles are '|', blank tiles '.',
// hidden tiles '_' and tiles mid-reveal '*'. Shorter rows are centred.
func RenderBoard(b response.Board) string {
	widest := 0
	for _, row := range b.Rows {
		widest = max(widest, len(row))
	}

	lines := make([]string, 0, len(b.Rows))
	for _, row := range b.Rows {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", widest-len(row)))
		for i, tile := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			switch tile.State {
			case response.TileEnd:
				sb.WriteByte('|')
			case response.TileHidden:
				sb.WriteByte('_')
			case response.TileRevealing:
				sb.WriteByte('*')
			case response.TileRevealed:
				sb.WriteString(tile.Letter)
			default:
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (o *Output) printLetterResult(r response.LetterResult) {
	switch r.Count {
	case 0:
		o.printf("There are no %s's\n", r.Letter)
	case 1:
		o.printf("There is 1 %s\n", r.Letter)
	default:
		o.printf("There are %d %s's\n", r.Count, r.Letter)
	}
	if r.VowelCost > 0 {
		o.printf("%s bought a vowel for $%d\n", r.Player, r.VowelCost)
	}
	o.printf("%s earned $%d, score $%d\n", r.Player, r.Payout, r.Score)
}

func (o *Output) printSpinResult(r response.SpinResult) {
	if r.Wedge.Kind == wheel.WedgeBankrupt {
		o.println("BANKRUPT!")
		return
	}
	o.printf("The wheel landed on $%d\n", r.Wedge.Amount)
}

func (o *Output) printPlayers(p response.Players) {
	for _, s := range p.Players {
		o.printf("%-12s $%d\n", s.Player, s.Score)
	}
	if p.Leader != nil {
		o.printf("Leader: %s\n", *p.Leader)
	} else {
		o.println("Leader: none")
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) println(s string) {
	_, _ = fmt.Fprintln(o.w, s)
}
