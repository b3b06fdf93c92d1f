// internal/store/memory.go
//
// In-memory record of the rounds finished during one program run.
// Used by the menu to report a session tally when the player leaves.
//
// Characteristics:
//   - Results are kept in submission order and indexed by round ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Errors are returned for missing round IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-console/internal/game"
)

// ErrNotFound is returned by Get for unknown round IDs.
var ErrNotFound = errors.New("not found")

// Store defines the registry of finished rounds.
type Store interface {
	// Save records a finished round. Saving the same round ID again replaces it.
	Save(ctx context.Context, r game.Result) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (game.Result, error)

	// List returns all rounds in the order they were first saved.
	List(ctx context.Context) ([]game.Result, error)
}

// Tally summarizes a set of rounds.
type Tally struct {
	Played int
	Won    int
}

// Summarize counts played and won rounds.
func Summarize(results []game.Result) Tally {
	t := Tally{Played: len(results)}
	for _, r := range results {
		if r.Won {
			t.Won++
		}
	}
	return t
}

// memory is an in-memory Store implementation.
type memory struct {
	mu     sync.RWMutex   // guards order and rounds
	order  []string       // round IDs in first-save order
	rounds map[string]game.Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.Result)}
}

// Save adds or replaces the round in the map.
func (m *memory) Save(ctx context.Context, r game.Result) error {
	if r.RoundID == "" {
		return errors.New("round id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rounds[r.RoundID]; !ok {
		m.order = append(m.order, r.RoundID)
	}
	m.rounds[r.RoundID] = r
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (game.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return game.Result{}, ErrNotFound
}

// List returns a copy of every saved round.
func (m *memory) List(ctx context.Context) ([]game.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]game.Result, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rounds[id])
	}
	return out, nil
}
