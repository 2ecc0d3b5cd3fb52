package results

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
	"github.com/Tnecniv1/Calcul-Pixel/internal/results"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
	"github.com/Tnecniv1/Calcul-Pixel/internal/training"
)

// fakeClient serves canned observation rows and badge results.
type fakeClient struct {
	rows     []backend.ObservationRow
	rowsErr  error
	badges   backend.BadgeCheckResult
	badgeErr error
}

func (f *fakeClient) CreateSession(context.Context, int) (int, error) { return 0, nil }
func (f *fakeClient) GenerateExercises(context.Context, int) ([]exercise.Exercise, error) {
	return nil, nil
}
func (f *fakeClient) SubmitObservations(context.Context, string, []exercise.Observation) error {
	return nil
}
func (f *fakeClient) FetchObservations(context.Context, int) ([]backend.ObservationRow, error) {
	return f.rows, f.rowsErr
}
func (f *fakeClient) ReviewItems(context.Context, int) ([]backend.ReviewItem, error) {
	return nil, nil
}
func (f *fakeClient) VerifyReview(context.Context, int, []backend.ReviewTry) (backend.VerifyResult, error) {
	return backend.VerifyResult{}, nil
}
func (f *fakeClient) RecordCorrection(context.Context, int) (int, error) { return 1, nil }
func (f *fakeClient) CheckAndUnlockBadges(context.Context) (backend.BadgeCheckResult, error) {
	return f.badges, f.badgeErr
}
func (f *fakeClient) FetchMessages(context.Context, *time.Time) ([]chat.Message, error) {
	return nil, nil
}
func (f *fakeClient) SendMessage(context.Context, string) (chat.Message, error) {
	return chat.Message{}, nil
}
func (f *fakeClient) SubscribeMessages(func(chat.Message)) (func(), error) {
	return func() {}, nil
}
func (f *fakeClient) HasActiveEntitlement(context.Context) (bool, error) { return false, nil }

func fp(v float64) *float64 { return &v }

func row(etat string, score float64) backend.ObservationRow {
	return backend.ObservationRow{
		Operation:    "Addition",
		Etat:         etat,
		Score:        fp(score),
		TempsSeconds: fp(3),
	}
}

func summary() training.Summary {
	return training.Summary{SessionID: 7, Score: 1, Total: 2}
}

func TestReportShowsServerScore(t *testing.T) {
	f := &fakeClient{rows: []backend.ObservationRow{row("VRAI", 1), row("FAUX", -1)}}
	s := New(f, summary())

	s.Update(reportMsg{Report: mustLoad(t, f)})

	view := s.View(100, 40)
	if view == "" {
		t.Fatal("expected non-empty report view")
	}
	if !s.report.HasRows {
		t.Fatal("expected rows in report")
	}
	if got := s.report.EffectiveScore(99); got != 0 {
		t.Errorf("server score = %d, want 0", got)
	}
}

func TestNoDataFallsBackToLocalScore(t *testing.T) {
	f := &fakeClient{rowsErr: errors.New("boom")}
	s := New(f, summary())

	s.Update(reportMsg{Err: results.ErrNoData})

	if !s.noData {
		t.Fatal("expected noData state")
	}
	if view := s.View(100, 40); view == "" {
		t.Fatal("expected non-empty fallback view")
	}
}

func TestCorrectionOfferPushesReview(t *testing.T) {
	f := &fakeClient{rows: []backend.ObservationRow{row("FAUX", -1)}}
	s := New(f, summary())
	s.Update(reportMsg{Report: mustLoad(t, f)})

	if !s.offerReview() {
		t.Fatal("expected correction offer with one mistake")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if cmd == nil {
		t.Fatal("expected push command on C")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}
}

func TestBadgeCheckWaitsForLoadedReport(t *testing.T) {
	f := &fakeClient{
		rows:   []backend.ObservationRow{row("VRAI", 1)},
		badges: backend.BadgeCheckResult{NewlyUnlocked: []backend.BadgeDefinition{{BadgeID: "perf_premiere"}}},
	}
	s := New(f, summary())

	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected load command")
	}

	_, cmd := s.Update(reportMsg{Report: mustLoad(t, f)})
	if cmd == nil {
		t.Fatal("expected badge check chained off the loaded report")
	}
	s.Update(cmd())
	if len(s.badges.NewlyUnlocked) != 1 {
		t.Fatalf("badges = %+v, want one unlock", s.badges.NewlyUnlocked)
	}
}

func TestNoBadgeCheckWithoutReport(t *testing.T) {
	s := New(&fakeClient{rowsErr: errors.New("boom")}, summary())

	_, cmd := s.Update(reportMsg{Err: results.ErrNoData})
	if cmd != nil {
		t.Fatal("failed report must not trigger the badge check")
	}
}

func TestBadgeFailureHidesBanner(t *testing.T) {
	f := &fakeClient{rows: []backend.ObservationRow{row("VRAI", 1)}}
	s := New(f, summary())
	s.Update(reportMsg{Report: mustLoad(t, f)})
	s.Update(badgesMsg{Err: errors.New("boom")})

	if len(s.badges.NewlyUnlocked) != 0 {
		t.Fatal("expected no badges after failed check")
	}
}

func mustLoad(t *testing.T, f *fakeClient) results.Report {
	t.Helper()
	report, err := results.NewReconciler(f).Load(context.Background(), 7)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	return report
}
