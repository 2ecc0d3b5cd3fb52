package entitlement

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memTrialStore struct {
	ms     int64
	getErr error
	sets   int
}

func (m *memTrialStore) TrialStartedAt(ctx context.Context) (int64, error) {
	return m.ms, m.getErr
}

func (m *memTrialStore) SetTrialStartedAt(ctx context.Context, ms int64) error {
	m.ms = ms
	m.sets++
	return nil
}

func fixedTrial(store *memTrialStore, now time.Time) *Trial {
	tr := NewTrial(store)
	tr.now = func() time.Time { return now }
	return tr
}

func TestTrial_StartsOnFirstCheck(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	store := &memTrialStore{}
	tr := fixedTrial(store, now)

	active, err := tr.Active(context.Background())
	if err != nil || !active {
		t.Fatalf("Active = %v, %v; want true", active, err)
	}
	if store.ms != now.UnixMilli() {
		t.Errorf("stored %d, want %d", store.ms, now.UnixMilli())
	}
}

func TestTrial_ActiveWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	store := &memTrialStore{ms: now.Add(-47 * time.Hour).UnixMilli()}
	tr := fixedTrial(store, now)

	active, err := tr.Active(context.Background())
	if err != nil || !active {
		t.Fatalf("Active = %v, %v; want true on day 1", active, err)
	}
}

func TestTrial_ExpiredAfterThreeDays(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	store := &memTrialStore{ms: now.Add(-73 * time.Hour).UnixMilli()}
	tr := fixedTrial(store, now)

	active, err := tr.Active(context.Background())
	if err != nil || active {
		t.Fatalf("Active = %v, %v; want false after day 3", active, err)
	}
}

func TestTrial_SecondsValueHealedBeforeComputation(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	startedSecs := now.Add(-24 * time.Hour).Unix() // legacy: epoch seconds
	store := &memTrialStore{ms: startedSecs}
	tr := fixedTrial(store, now)

	active, err := tr.Active(context.Background())
	if err != nil || !active {
		t.Fatalf("Active = %v, %v; one elapsed day must stay active", active, err)
	}
	if store.ms != startedSecs*1000 {
		t.Errorf("stored %d, want healed %d", store.ms, startedSecs*1000)
	}
	if store.sets != 1 {
		t.Errorf("sets = %d, want exactly one healing write", store.sets)
	}
}

func TestTrial_InvalidValueRestarts(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	store := &memTrialStore{ms: -5}
	tr := fixedTrial(store, now)

	active, err := tr.Active(context.Background())
	if err != nil || !active {
		t.Fatalf("Active = %v, %v; invalid value restarts the trial", active, err)
	}
	if store.ms != now.UnixMilli() {
		t.Errorf("stored %d, want reset to now", store.ms)
	}
}

type fixedChecker struct {
	active bool
	err    error
}

func (f fixedChecker) HasActiveEntitlement(ctx context.Context) (bool, error) {
	return f.active, f.err
}

func TestGate_TrialShortCircuits(t *testing.T) {
	now := time.Now()
	store := &memTrialStore{ms: now.UnixMilli()}
	g := NewGate(fixedTrial(store, now), fixedChecker{err: errors.New("network down")})

	allowed, err := g.Allowed(context.Background())
	if err != nil || !allowed {
		t.Fatalf("Allowed = %v, %v; trial path must not hit the network", allowed, err)
	}
}

func TestGate_SubscriptionAfterExpiredTrial(t *testing.T) {
	now := time.Now()
	store := &memTrialStore{ms: now.Add(-100 * time.Hour).UnixMilli()}

	g := NewGate(fixedTrial(store, now), fixedChecker{active: true})
	allowed, err := g.Allowed(context.Background())
	if err != nil || !allowed {
		t.Fatalf("Allowed = %v, %v; want subscription to grant access", allowed, err)
	}

	g = NewGate(fixedTrial(store, now), fixedChecker{active: false})
	allowed, err = g.Allowed(context.Background())
	if err != nil || allowed {
		t.Fatalf("Allowed = %v, %v; want denial with no entitlement", allowed, err)
	}
}
