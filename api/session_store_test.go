package api

import (
	"testing"
	"time"

	"rainbet-service/betting"
)

func TestSessionStore_LedgerIsCreatedLazilyAndReused(t *testing.T) {
	store := NewSessionStore()

	if store.Count() != 0 {
		t.Fatalf("fresh store should be empty, has %d sessions", store.Count())
	}

	first := store.Ledger("session-a")
	if first == nil {
		t.Fatal("expected a ledger")
	}
	if store.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Count())
	}

	first.RecordBet("2024-01-15", betting.CategoryRain)

	// Same session gets the same ledger back
	second := store.Ledger("session-a")
	if second.Odds("2024-01-15").RainCount != 1 {
		t.Error("second lookup did not return the same ledger")
	}
}

func TestSessionStore_SessionsOwnSeparateLedgers(t *testing.T) {
	store := NewSessionStore()

	store.Ledger("session-a").RecordBet("2024-01-15", betting.CategoryRain)

	if odds := store.Ledger("session-b").Odds("2024-01-15"); odds.Total != 0 {
		t.Errorf("session-b saw session-a's votes: %+v", odds)
	}
	if store.Count() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Count())
	}
}

func TestSessionStore_PruneIdleSessions(t *testing.T) {
	store := NewSessionStore()

	store.Ledger("stale")
	time.Sleep(20 * time.Millisecond)
	store.Ledger("fresh")

	pruned := store.PruneIdleSessions(10 * time.Millisecond)
	if pruned != 1 {
		t.Fatalf("expected to prune 1 session, pruned %d", pruned)
	}
	if store.Count() != 1 {
		t.Errorf("expected 1 surviving session, got %d", store.Count())
	}

	// Pruned sessions start over with an empty ledger
	if odds := store.Ledger("stale").Odds("2024-01-15"); odds.Total != 0 {
		t.Errorf("pruned session kept its tally: %+v", odds)
	}
}
