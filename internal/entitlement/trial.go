// Package entitlement gates session starts: a local 3-day trial window
// or an active remote subscription entitlement.
package entitlement

import (
	"context"
	"fmt"
	"time"
)

// TrialDays is the free trial length.
const TrialDays = 3

// msThreshold separates epoch seconds from epoch milliseconds. Legacy
// installs persisted the trial start in seconds; anything below this is
// converted and re-persisted before the elapsed computation.
const msThreshold = 1e12

// TrialStore persists the single "trial started at" timestamp in epoch
// milliseconds. Get returns 0 when no trial has started.
type TrialStore interface {
	TrialStartedAt(ctx context.Context) (int64, error)
	SetTrialStartedAt(ctx context.Context, ms int64) error
}

// Trial evaluates the local trial window, self-healing invalid or
// legacy-unit stored values.
type Trial struct {
	store TrialStore
	now   func() time.Time
}

// NewTrial creates a trial gate over the given store.
func NewTrial(store TrialStore) *Trial {
	return &Trial{store: store, now: time.Now}
}

// Active reports whether the local trial is still running. A missing or
// invalid stored value starts (or restarts) the trial now, which counts
// as active.
func (t *Trial) Active(ctx context.Context) (bool, error) {
	nowMs := t.now().UnixMilli()

	startedMs, err := t.store.TrialStartedAt(ctx)
	if err != nil {
		return false, fmt.Errorf("read trial state: %w", err)
	}

	if startedMs <= 0 {
		if err := t.store.SetTrialStartedAt(ctx, nowMs); err != nil {
			return false, fmt.Errorf("start trial: %w", err)
		}
		return true, nil
	}

	// Legacy unit healing happens before the elapsed-days computation.
	if startedMs < msThreshold {
		startedMs *= 1000
		if err := t.store.SetTrialStartedAt(ctx, startedMs); err != nil {
			return false, fmt.Errorf("heal trial state: %w", err)
		}
	}

	days := (nowMs - startedMs) / (24 * time.Hour).Milliseconds()
	return days < TrialDays, nil
}

// EntitlementChecker is the remote subscription half of the gate.
type EntitlementChecker interface {
	HasActiveEntitlement(ctx context.Context) (bool, error)
}

// Gate combines the trial window with the remote entitlement check.
type Gate struct {
	trial   *Trial
	checker EntitlementChecker
}

// NewGate builds the session-start gate.
func NewGate(trial *Trial, checker EntitlementChecker) *Gate {
	return &Gate{trial: trial, checker: checker}
}

// Allowed reports whether a session may start: trial active OR
// subscription active. A failing remote check while the trial is over
// denies access; the trial path never needs the network.
func (g *Gate) Allowed(ctx context.Context) (bool, error) {
	active, err := g.trial.Active(ctx)
	if err != nil {
		return false, err
	}
	if active {
		return true, nil
	}
	return g.checker.HasActiveEntitlement(ctx)
}
