// internal/game/review.go
//
// Clue computation shown after a non-winning, non-final guess.
//
//   - Present: distinct guess letters that occur anywhere in the secret,
//     sorted ascending.
//   - Placed:  guess letters whose position matches the secret, in
//     left-to-right order. Repeated letters are kept (e.g. "ll" in both
//     words at the same indices shows twice).

package game

import (
	"sort"
	"strings"
)

// Review is the clue information for one guess.
type Review struct {
	Present []string
	Placed  []string
}

// ReviewGuess computes the clues for guess against secret.
func ReviewGuess(guess, secret string) Review {
	seen := make(map[rune]bool, len(guess))
	var rv Review
	for _, r := range guess {
		if seen[r] {
			continue
		}
		seen[r] = true
		if strings.ContainsRune(secret, r) {
			rv.Present = append(rv.Present, string(r))
		}
	}
	sort.Strings(rv.Present)

	n := min(len(guess), len(secret))
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			rv.Placed = append(rv.Placed, string(guess[i]))
		}
	}
	return rv
}

// PresentText renders Present as "a, e, p" or "None".
func (rv Review) PresentText() string { return joinOrNone(rv.Present) }

// PlacedText renders Placed as "e" or "None".
func (rv Review) PlacedText() string { return joinOrNone(rv.Placed) }

func joinOrNone(letters []string) string {
	if len(letters) == 0 {
		return "None"
	}
	return strings.Join(letters, ", ")
}
