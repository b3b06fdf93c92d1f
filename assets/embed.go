// Package assets embeds the default answer list shipped with the game.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed answers.txt
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file,
// trimmed and lowercased. Callers validate word shape.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded candidate secret words.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}
