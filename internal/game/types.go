// internal/game/types.go
//
// Core type definitions for a console Wordle round.
// Defines:
//   - State:      the explicit states of the round state machine.
//   - RoundState: data for a single round (secret, attempts, win flag).
//   - Result:     immutable snapshot of a finished round.

package game

import "errors"

const (
	// MaxAttempts bounds the number of scored guesses in a round.
	MaxAttempts = 6
)

// ErrRoundOver is returned when stepping a state machine whose round has
// already been displayed.
var ErrRoundOver = errors.New("round is over")

// State is one node of the round state machine.
type State int

const (
	StateWordEntry          State = iota // prompt for a guess
	StateConfirm                         // confirm the staged guess
	StateScore                           // record the guess
	StateIsWinner                        // evaluate win / attempts exhausted
	StateReview                          // print clues for the guess
	StateConfirmAfterReview              // wait for acknowledgment
	StateDisplay                         // print summary; terminal
)

var stateNames = [...]string{
	StateWordEntry:          "WORD_ENTRY",
	StateConfirm:            "CONFIRM",
	StateScore:              "SCORE",
	StateIsWinner:           "IS_WINNER",
	StateReview:             "REVIEW",
	StateConfirmAfterReview: "CONFIRM_AFTER_REVIEW",
	StateDisplay:            "DISPLAY",
}

// String returns the upper-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// RoundState holds the state of a single round.
// It is mutated only by the RoundFSM that owns it.
type RoundState struct {
	id           string   // random identifier used in logs
	secret       string   // the solution word (always lowercase)
	attempts     []string // scored guesses in submission order
	won          bool     // true once a scored guess matched secret
	currentGuess string   // guess staged for confirmation
}

// Result is a snapshot of a finished round.
type Result struct {
	RoundID  string   `json:"roundId"`
	Secret   string   `json:"secret"`
	Attempts []string `json:"attempts"`
	Won      bool     `json:"won"`
}
