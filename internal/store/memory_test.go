package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-console/internal/game"
)

func TestMemoryStoreSaveGetList(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	first := game.Result{RoundID: "r1", Secret: "apple", Attempts: []string{"apple"}, Won: true}
	second := game.Result{RoundID: "r2", Secret: "grape", Attempts: []string{"zzzzz"}}
	for _, r := range []game.Result{first, second} {
		if err := st.Save(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.RoundID, err)
		}
	}

	got, err := st.Get(ctx, "r2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Secret != "grape" {
		t.Fatalf("expected grape, got %+v", got)
	}

	second.Won = true
	if err := st.Save(ctx, second); err != nil {
		t.Fatalf("resave: %v", err)
	}
	list, err := st.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].RoundID != "r1" || list[1].RoundID != "r2" || !list[1].Won {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestMemoryStoreErrors(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.Save(ctx, game.Result{}); err == nil {
		t.Fatal("expected error for missing round id")
	}
}

func TestSummarize(t *testing.T) {
	tally := Summarize([]game.Result{{Won: true}, {Won: false}, {Won: true}})
	if tally.Played != 3 || tally.Won != 2 {
		t.Fatalf("unexpected tally %+v", tally)
	}
	if empty := Summarize(nil); empty != (Tally{}) {
		t.Fatalf("expected zero tally, got %+v", empty)
	}
}
