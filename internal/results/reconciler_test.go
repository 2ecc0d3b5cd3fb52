package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
)

type fakeResults struct {
	pages [][]backend.ObservationRow
	errs  []error
	calls int
}

func (f *fakeResults) FetchObservations(ctx context.Context, sessionID int) ([]backend.ObservationRow, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var rows []backend.ObservationRow
	if i < len(f.pages) {
		rows = f.pages[i]
	}
	return rows, err
}

func newTestReconciler(f *fakeResults) (*Reconciler, *int) {
	rc := NewReconciler(f)
	slept := 0
	rc.sleep = func(ctx context.Context, d time.Duration) error {
		if d != EmptyRetryDelay {
			return errors.New("unexpected delay")
		}
		slept++
		return nil
	}
	return rc, &slept
}

func TestReconciler_EmptyThenRowsAfterRetry(t *testing.T) {
	fourRows := []backend.ObservationRow{
		row("Addition", "VRAI", 2),
		row("Addition", "FAUX", 2),
		row("Soustraction", "VRAI", 3),
		row("Multiplication", "VRAI", 1),
	}
	f := &fakeResults{pages: [][]backend.ObservationRow{nil, fourRows}}
	rc, slept := newTestReconciler(f)

	report, err := rc.Load(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 1, *slept, "exactly one delayed retry")
	require.Equal(t, 2, f.calls)
	require.True(t, report.HasRows, "retry rows must win over the empty first read")
	require.Equal(t, 4, report.Metrics.Addition.Count+report.Metrics.Soustraction.Count+report.Metrics.Multiplication.Count)
	require.Equal(t, 1, report.MistakeCount)
}

func TestReconciler_EmptyTwiceIsGenuineNoData(t *testing.T) {
	f := &fakeResults{pages: [][]backend.ObservationRow{nil, nil}}
	rc, slept := newTestReconciler(f)

	report, err := rc.Load(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 1, *slept)
	require.False(t, report.HasRows)
	require.Equal(t, 17, report.EffectiveScore(17), "local score is the fallback")
}

func TestReconciler_QueryFailureNoRetry(t *testing.T) {
	f := &fakeResults{errs: []error{errors.New("boom")}}
	rc, slept := newTestReconciler(f)

	_, err := rc.Load(context.Background(), 42)
	require.ErrorIs(t, err, ErrNoData)
	require.Equal(t, 0, *slept)
	require.Equal(t, 1, f.calls, "query failures are not retried")
}

func TestReconciler_ZeroSessionSkipsRetry(t *testing.T) {
	f := &fakeResults{pages: [][]backend.ObservationRow{nil}}
	rc, slept := newTestReconciler(f)

	report, err := rc.Load(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 0, *slept)
	require.False(t, report.HasRows)
}

func TestReconciler_ServerScorePreferred(t *testing.T) {
	rows := []backend.ObservationRow{
		{Operation: "Addition", Etat: "VRAI", Score: fp(12)},
		{Operation: "Addition", Etat: "VRAI", Score: fp(8)},
	}
	f := &fakeResults{pages: [][]backend.ObservationRow{rows}}
	rc, _ := newTestReconciler(f)

	report, err := rc.Load(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, 20, report.EffectiveScore(3), "server sum wins over the local tally")
	require.Equal(t, 20, report.Breakdown.Base)
}
