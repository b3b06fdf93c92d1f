package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-console/internal/config"
	"github.com/robalobadob/wordle/apps/go-console/internal/console"
	"github.com/robalobadob/wordle/apps/go-console/internal/daily"
	"github.com/robalobadob/wordle/apps/go-console/internal/logging"
	"github.com/robalobadob/wordle/apps/go-console/internal/menu"
	"github.com/robalobadob/wordle/apps/go-console/internal/store"
	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Logger = logging.New(cfg.LogLevel, os.Stderr)

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	choose := words.Chooser(words.Random)
	switch {
	case cfg.Secret != "":
		choose = words.Fixed(cfg.Secret)
	case cfg.Daily:
		choose = daily.Chooser(time.Now, cfg.DailySalt)
	}
	log.Debug().Int("words", len(list)).Bool("daily", cfg.Daily).Msg("starting wordle")

	m := menu.New(console.New(os.Stdin, os.Stdout), list, choose, store.NewMemoryStore(), log.Logger)
	if err := m.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
