// internal/words/words.go
//
// Word list management for the console game.
//
// Responsibilities:
//   - Load candidate secret words from a file or fall back to the embedded list.
//   - Validate word shape (exactly 5 lowercase letters a–z).
//   - Provide choosers that pick a secret word from a list.
//
// Word lists:
//   - Lines are trimmed and lowercased; anything that is not a 5-letter
//     alphabetic word is skipped.
//   - An empty resulting list is an error (ErrEmptyList).
//
// Choosers are plain functions so rounds can be driven with a deterministic
// secret in tests (Fixed) or a crypto-random one in play (Random).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-console/assets"
)

// Length is the number of letters in every word of the game.
const Length = 5

// ErrEmptyList is returned when a word source yields no usable words.
var ErrEmptyList = errors.New("words: answers list is empty")

// Chooser picks one word from a non-empty list.
type Chooser func(list []string) string

// Load returns the candidate secret words.
// With an empty path the embedded default list is used.
func Load(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("read embedded answers: %w", err)
		}
		list = normalize(list)
	} else {
		list, err = readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize lowercases and trims entries, dropping anything that is not a word.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsWord reports whether s is exactly Length lowercase ASCII letters.
func IsWord(s string) bool {
	return len(s) == Length && isAlpha(s)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a cryptographically random word from list.
// If list is empty, falls back to "crane".
func Random(list []string) string {
	if len(list) == 0 {
		return "crane"
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0]
	}
	return list[nBig.Int64()]
}

// Fixed returns a Chooser that always yields word, ignoring the list.
func Fixed(word string) Chooser {
	word = strings.ToLower(strings.TrimSpace(word))
	return func([]string) string { return word }
}
