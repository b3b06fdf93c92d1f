// internal/game/round.go
//
// RoundState construction and mutation.
// RoundState is a plain data holder: it performs no validation and callers
// (the RoundFSM) guarantee guesses are well-formed before recording them.

package game

import (
	"strings"

	"github.com/google/uuid"
)

// NewRoundState constructs a fresh round for secret.
// The secret is lowercased; attempts start empty and the round is not won.
func NewRoundState(secret string) *RoundState {
	return &RoundState{
		id:       uuid.NewString(),
		secret:   strings.ToLower(strings.TrimSpace(secret)),
		attempts: []string{},
	}
}

// RecordAttempt appends guess to the attempt list.
func (r *RoundState) RecordAttempt(guess string) {
	r.attempts = append(r.attempts, guess)
}

// CheckWin compares guess with the secret and returns the updated win flag.
// A round that has been won stays won.
func (r *RoundState) CheckWin(guess string) bool {
	r.won = r.won || guess == r.secret
	return r.won
}

// Stage holds guess pending confirmation, replacing any previous one.
func (r *RoundState) Stage(guess string) { r.currentGuess = guess }

// Discard clears the staged guess.
func (r *RoundState) Discard() { r.currentGuess = "" }

func (r *RoundState) ID() string           { return r.id }
func (r *RoundState) Secret() string       { return r.secret }
func (r *RoundState) AttemptCount() int    { return len(r.attempts) }
func (r *RoundState) HasWon() bool         { return r.won }
func (r *RoundState) CurrentGuess() string { return r.currentGuess }

// Attempts returns a copy of the scored guesses in submission order.
func (r *RoundState) Attempts() []string {
	return append([]string(nil), r.attempts...)
}

// Result snapshots the round.
func (r *RoundState) Result() Result {
	return Result{
		RoundID:  r.id,
		Secret:   r.secret,
		Attempts: r.Attempts(),
		Won:      r.won,
	}
}
