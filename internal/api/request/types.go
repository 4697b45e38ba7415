package request

// SelectPlayerRequest is the request body for choosing the current player
type SelectPlayerRequest struct {
	Player string `json:"player"`
}

// SpinRequest is the request body for entering the value the wheel landed on
type SpinRequest struct {
	Amount *int `json:"amount"`
}

// LetterRequest is the request body for requesting a letter.
// Player and Spin are optional shortcuts for selecting a player and entering a spin first.
type LetterRequest struct {
	Letter string  `json:"letter"`
	Player *string `json:"player,omitempty"`
	Spin   *int    `json:"spin,omitempty"`
}

// SolveRequest is the request body for solving the puzzle
type SolveRequest struct {
	Guess  string  `json:"guess"`
	Player *string `json:"player,omitempty"`
}

// BankruptRequest is the request body for bankrupting a player
type BankruptRequest struct {
	Player *string `json:"player,omitempty"`
}

// UpdateScoreRequest is the request body for changing a player's score
type UpdateScoreRequest struct {
	Op     string `json:"op"` // "adjust" or "bankrupt"
	Amount int    `json:"amount,omitempty"`
}
