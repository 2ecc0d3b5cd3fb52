package results

import (
	"context"
	"errors"
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
)

// EmptyRetryDelay is how long the reconciler waits before its single
// retry when the first query returns zero rows. The backend's write
// path is eventually consistent across the navigate boundary.
const EmptyRetryDelay = 1500 * time.Millisecond

// ErrNoData is reported when the observation query itself fails. It is
// not retried; the view shows the static no-data message.
var ErrNoData = errors.New("no data for this session")

// Report is the reconciled result-screen state.
type Report struct {
	SessionID int
	Metrics   Metrics

	// ServerScore is the row-summed score; valid only when HasRows.
	ServerScore int
	HasRows     bool

	// Breakdown is computed only when HasRows.
	Breakdown ScoreBreakdown

	// MistakeCount gates the correction offer.
	MistakeCount int
}

// EffectiveScore returns the server-derived score, or the locally
// tallied fallback when the session produced no rows.
func (r Report) EffectiveScore(localScore int) int {
	if r.HasRows {
		return r.ServerScore
	}
	return localScore
}

// Reconciler loads and folds the authoritative rows for a session.
type Reconciler struct {
	results backend.Results
	sleep   func(context.Context, time.Duration) error
}

// NewReconciler creates a reconciler over the backend query surface.
func NewReconciler(results backend.Results) *Reconciler {
	return &Reconciler{results: results, sleep: sleepCtx}
}

// Load queries the rows for sessionID, retrying exactly once after
// EmptyRetryDelay when the first read comes back empty. A query failure
// maps to ErrNoData without any retry.
func (rc *Reconciler) Load(ctx context.Context, sessionID int) (Report, error) {
	rows, err := rc.results.FetchObservations(ctx, sessionID)
	if err != nil {
		return Report{}, ErrNoData
	}

	if len(rows) == 0 && sessionID != 0 {
		if err := rc.sleep(ctx, EmptyRetryDelay); err != nil {
			return Report{}, err
		}
		rows, err = rc.results.FetchObservations(ctx, sessionID)
		if err != nil {
			return Report{}, ErrNoData
		}
	}

	report := Report{
		SessionID:    sessionID,
		Metrics:      ComputeMetrics(rows),
		HasRows:      len(rows) > 0,
		MistakeCount: CountMistakes(rows),
	}
	if report.HasRows {
		report.ServerScore = SumSessionScore(rows)
		report.Breakdown = ComputeBreakdown(rows)
	}
	return report, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
