package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := DateKey(ts); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
}

func TestWordIndexStableWithinDay(t *testing.T) {
	morning := time.Date(2026, 10, 15, 1, 0, 0, 0, time.UTC)
	night := time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC)
	a := WordIndex(morning, "salt", 7)
	b := WordIndex(night, "salt", 7)
	if a != b {
		t.Fatalf("expected same index within a day, got %d and %d", a, b)
	}
	if a < 0 || a >= 7 {
		t.Fatalf("index out of range: %d", a)
	}
}

func TestWordIndexEmptyList(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestChooser(t *testing.T) {
	list := []string{"apple", "brave", "chair", "droid", "eagle", "flame", "grape"}
	day := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	choose := Chooser(func() time.Time { return day }, "local_dev_salt")

	first := choose(list)
	if first != list[WordIndex(day, "local_dev_salt", len(list))] {
		t.Fatalf("chooser disagrees with WordIndex: %q", first)
	}
	if again := choose(list); again != first {
		t.Fatalf("expected %q on repeat, got %q", first, again)
	}
	if got := choose(nil); got != "" {
		t.Fatalf("expected empty word for empty list, got %q", got)
	}
}
