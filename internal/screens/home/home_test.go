package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/entitlement"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
)

// fakeClient provides entitlement and score behavior for gate tests.
type fakeClient struct {
	entitled bool
	score    int
}

func (f *fakeClient) CreateSession(context.Context, int) (int, error) { return 1, nil }
func (f *fakeClient) GenerateExercises(context.Context, int) ([]exercise.Exercise, error) {
	return nil, nil
}
func (f *fakeClient) SubmitObservations(context.Context, string, []exercise.Observation) error {
	return nil
}
func (f *fakeClient) FetchObservations(context.Context, int) ([]backend.ObservationRow, error) {
	return nil, nil
}
func (f *fakeClient) ReviewItems(context.Context, int) ([]backend.ReviewItem, error) {
	return nil, nil
}
func (f *fakeClient) VerifyReview(context.Context, int, []backend.ReviewTry) (backend.VerifyResult, error) {
	return backend.VerifyResult{}, nil
}
func (f *fakeClient) RecordCorrection(context.Context, int) (int, error) { return 1, nil }
func (f *fakeClient) CheckAndUnlockBadges(context.Context) (backend.BadgeCheckResult, error) {
	return backend.BadgeCheckResult{}, nil
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
func (f *fakeClient) HasActiveEntitlement(context.Context) (bool, error) {
	return f.entitled, nil
}
func (f *fakeClient) TotalScore(context.Context) (int, error) { return f.score, nil }

// memTrialStore is an in-memory trial state.
type memTrialStore struct {
	ms int64
}

func (m *memTrialStore) TrialStartedAt(context.Context) (int64, error) { return m.ms, nil }
func (m *memTrialStore) SetTrialStartedAt(_ context.Context, ms int64) error {
	m.ms = ms
	return nil
}

func newHome(client backend.Client, trial *memTrialStore) *HomeScreen {
	gate := entitlement.NewGate(entitlement.NewTrial(trial), client)
	return New(client, gate)
}

func TestScoreLightsPixels(t *testing.T) {
	f := &fakeClient{score: 12}
	h := newHome(f, &memTrialStore{})

	msg := h.loadScore()()
	h.Update(msg)

	if h.score != 12 {
		t.Fatalf("score = %d, want 12", h.score)
	}
	if view := h.View(100, 40); view == "" {
		t.Fatal("expected non-empty home view")
	}
}

func TestGateAllowsDuringTrial(t *testing.T) {
	f := &fakeClient{}
	h := newHome(f, &memTrialStore{}) // first check starts the trial

	h.Update(openPickerMsg{})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected gate check command")
	}

	_, next := h.Update(cmd())
	if next == nil {
		t.Fatal("expected navigation after allowed gate")
	}
	if _, ok := next().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg to the session")
	}
}

func TestGateDeniesAfterTrialWithoutSubscription(t *testing.T) {
	f := &fakeClient{entitled: false}
	expired := time.Now().Add(-4 * 24 * time.Hour).UnixMilli()
	h := newHome(f, &memTrialStore{ms: expired})

	h.Update(openPickerMsg{})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, next := h.Update(cmd())
	if next != nil {
		t.Fatal("expected no navigation after denied gate")
	}
	if h.status == "" {
		t.Fatal("expected denial status message")
	}
}

func TestSubscriptionBypassesExpiredTrial(t *testing.T) {
	f := &fakeClient{entitled: true}
	expired := time.Now().Add(-4 * 24 * time.Hour).UnixMilli()
	h := newHome(f, &memTrialStore{ms: expired})

	h.Update(openPickerMsg{})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, next := h.Update(cmd())
	if next == nil {
		t.Fatal("expected navigation with active subscription")
	}
}
