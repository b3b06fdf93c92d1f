// Package menu runs the top-level loop: play a round or leave.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-console/internal/console"
	"github.com/robalobadob/wordle/apps/go-console/internal/game"
	"github.com/robalobadob/wordle/apps/go-console/internal/store"
	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

// Menu builds a fresh round for every "play" choice.
type Menu struct {
	io     console.Console
	words  []string
	choose words.Chooser
	store  store.Store
	log    zerolog.Logger
}

// New constructs a Menu. choose picks each round's secret from list.
func New(c console.Console, list []string, choose words.Chooser, st store.Store, logger zerolog.Logger) *Menu {
	return &Menu{io: c, words: list, choose: choose, store: st, log: logger}
}

// Run loops until the player leaves or input ends.
// End of input is a normal exit; other errors are returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.io.Println()
		m.io.Println("=== Wordle Menu ===")
		m.io.Println("1) Play a round of Wordle")
		m.io.Println("2) Leave")
		choice, err := m.io.Prompt("Choose an option: ")
		if err != nil {
			return m.inputEnded(err)
		}
		m.log.Debug().Str("choice", choice).Msg("menu choice")

		switch choice {
		case "1":
			if err := m.playRound(ctx); err != nil {
				return m.inputEnded(err)
			}
		case "2":
			if err := m.farewell(ctx); err != nil {
				return err
			}
			return nil
		default:
			m.io.Println("Invalid menu option. Please choose 1 or 2.")
		}
	}
}

func (m *Menu) playRound(ctx context.Context) error {
	round := game.NewRoundState(m.choose(m.words))
	res, err := game.NewRoundFSM(round, m.io, m.log).Play()
	if err != nil {
		return err
	}
	if err := m.store.Save(ctx, res); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

func (m *Menu) farewell(ctx context.Context) error {
	results, err := m.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list rounds: %w", err)
	}
	if t := store.Summarize(results); t.Played > 0 {
		m.io.Printf("You played %d round(s) this session and won %d.\n", t.Played, t.Won)
	}
	m.io.Println("Thanks for Playing and come back another time!")
	return nil
}

// inputEnded turns end of input into a clean exit.
func (m *Menu) inputEnded(err error) error {
	if errors.Is(err, io.EOF) {
		m.log.Info().Msg("input closed, leaving")
		return nil
	}
	return err
}
