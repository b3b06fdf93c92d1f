// internal/game/fsm.go
//
// RoundFSM drives one round from word entry to the final summary.
//
// States and transitions:
//   WORD_ENTRY           → CONFIRM on a 5-letter guess, else re-prompt
//   CONFIRM              → SCORE on y/yes, WORD_ENTRY on n/no, else re-prompt
//   SCORE                → IS_WINNER
//   IS_WINNER            → DISPLAY when won or attempts exhausted, else REVIEW
//   REVIEW               → CONFIRM_AFTER_REVIEW
//   CONFIRM_AFTER_REVIEW → WORD_ENTRY
//   DISPLAY              → (done)
//
// Invalid input never leaves the current state. The only errors returned are
// console read failures, wrapped with the state that was reading.

package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-console/internal/console"
	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

// RoundFSM is the state machine for a single round.
type RoundFSM struct {
	round *RoundState
	io    console.Console
	log   zerolog.Logger
	state State
	done  bool
}

// NewRoundFSM returns a machine in WORD_ENTRY that owns round.
func NewRoundFSM(round *RoundState, c console.Console, logger zerolog.Logger) *RoundFSM {
	return &RoundFSM{
		round: round,
		io:    c,
		log:   logger.With().Str("round", round.ID()).Logger(),
		state: StateWordEntry,
	}
}

// State reports the current state.
func (f *RoundFSM) State() State { return f.state }

// Done reports whether DISPLAY has completed.
func (f *RoundFSM) Done() bool { return f.done }

// Round exposes the owned round state.
func (f *RoundFSM) Round() *RoundState { return f.round }

// Play steps the machine until the round summary has been displayed.
func (f *RoundFSM) Play() (Result, error) {
	f.log.Info().Msg("round started")
	for !f.done {
		if err := f.Step(); err != nil {
			return f.round.Result(), err
		}
	}
	return f.round.Result(), nil
}

// Step runs the entry action of the current state and applies its transition.
func (f *RoundFSM) Step() error {
	if f.done {
		return ErrRoundOver
	}
	from := f.state

	switch f.state {
	case StateWordEntry:
		in, err := f.io.Prompt("Enter a 5-letter word: ")
		if err != nil {
			return f.readErr(err)
		}
		guess := strings.ToLower(in)
		if !words.IsWord(guess) {
			f.log.Debug().Str("input", in).Msg("rejected guess")
			f.io.Println("Invalid input. Please enter exactly five letters.")
			break
		}
		f.round.Stage(guess)
		f.state = StateConfirm

	case StateConfirm:
		in, err := f.io.Prompt(fmt.Sprintf("Use '%s'? (y/n): ", f.round.CurrentGuess()))
		if err != nil {
			return f.readErr(err)
		}
		switch strings.ToLower(in) {
		case "y", "yes":
			f.state = StateScore
		case "n", "no":
			f.round.Discard()
			f.state = StateWordEntry
		default:
			f.log.Debug().Str("input", in).Msg("rejected confirmation")
			f.io.Println("Please answer with y or n.")
		}

	case StateScore:
		f.round.RecordAttempt(f.round.CurrentGuess())
		f.state = StateIsWinner

	case StateIsWinner:
		switch {
		case f.round.CheckWin(f.round.CurrentGuess()):
			f.state = StateDisplay
		case f.round.AttemptCount() >= MaxAttempts:
			f.state = StateDisplay
		default:
			f.state = StateReview
		}

	case StateReview:
		f.writeReview(ReviewGuess(f.round.CurrentGuess(), f.round.Secret()))
		f.state = StateConfirmAfterReview

	case StateConfirmAfterReview:
		if _, err := f.io.Prompt("Press Enter to continue to the next guess..."); err != nil {
			return f.readErr(err)
		}
		f.state = StateWordEntry

	case StateDisplay:
		f.writeSummary()
		f.log.Info().
			Bool("won", f.round.HasWon()).
			Int("attempts", f.round.AttemptCount()).
			Msg("round finished")
		if _, err := f.io.Prompt("Press Enter to return to the main menu..."); err != nil {
			return f.readErr(err)
		}
		f.done = true
		return nil

	default:
		return fmt.Errorf("unknown state %d", f.state)
	}

	if f.state != from {
		f.log.Debug().Stringer("from", from).Stringer("to", f.state).Msg("transition")
	}
	return nil
}

func (f *RoundFSM) readErr(err error) error {
	return fmt.Errorf("read input in %s: %w", f.state, err)
}

func (f *RoundFSM) writeReview(rv Review) {
	f.io.Println()
	f.io.Println("Review:")
	f.io.Printf("Letters present in secret word: %s\n", rv.PresentText())
	f.io.Printf("Letters correct and in right position: %s\n\n", rv.PlacedText())
}

func (f *RoundFSM) writeSummary() {
	f.io.Println()
	f.io.Println("===== Round Summary =====")
	attempts := f.round.Attempts()
	if len(attempts) == 0 {
		f.io.Println("No attempts were recorded.")
	}
	for i, guess := range attempts {
		f.io.Printf("Attempt %d: %s\n", i+1, guess)
	}
	f.io.Printf("Total attempts used: %d/%d\n", f.round.AttemptCount(), MaxAttempts)
	if f.round.HasWon() {
		f.io.Println("You Won.")
	} else {
		f.io.Println("You Lost.")
	}
}
