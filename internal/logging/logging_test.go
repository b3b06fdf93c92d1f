package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"", DefaultLevel},
		{"loud", DefaultLevel},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if got := New(tt.in, &buf).GetLevel(); got != tt.want {
			t.Errorf("New(%q) level = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesJSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)
	logger.Info().Str("round", "r1").Msg("round started")
	logger.Debug().Msg("dropped")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "round started" || entry["round"] != "r1" || entry["level"] != "info" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in %v", entry)
	}
}
