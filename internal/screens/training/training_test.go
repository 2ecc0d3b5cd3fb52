package training

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// fakeClient implements backend.Client with canned trainer behavior.
type fakeClient struct {
	exercises []exercise.Exercise
	flushErr  error

	submitted  [][]exercise.Observation
	nonces     []string
	createErr  error
	createdVol int
}

func (f *fakeClient) CreateSession(_ context.Context, volume int) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.createdVol = volume
	return 42, nil
}

func (f *fakeClient) GenerateExercises(context.Context, int) ([]exercise.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeClient) SubmitObservations(_ context.Context, nonce string, obs []exercise.Observation) error {
	f.nonces = append(f.nonces, nonce)
	if f.flushErr != nil {
		err := f.flushErr
		f.flushErr = nil
		return err
	}
	f.submitted = append(f.submitted, obs)
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
func (f *fakeClient) HasActiveEntitlement(context.Context) (bool, error) { return false, nil }

func exo(op exercise.Operation, a, b float64) exercise.Exercise {
	return exercise.Exercise{Operation: op, OperandOne: a, OperandTwo: b, ParcoursID: 1}
}

// startScreen runs session startup synchronously.
func startScreen(t *testing.T, f *fakeClient, volume int) *Screen {
	t.Helper()
	s := New(f, volume)
	s.startedAt = time.Now()
	msg := s.startSession()()
	ready, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("expected sessionReadyMsg, got %T", msg)
	}
	s.Update(ready)
	return s
}

// answer types raw into the input and presses enter, pumping the
// resulting messages back through Update.
func answer(t *testing.T, s *Screen, raw string) {
	t.Helper()
	s.input.Model.SetValue(raw)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg := cmd()
	updated, next := s.Update(msg)
	if updated == nil {
		t.Fatal("expected a screen")
	}
	// A final answer triggers the flush command.
	if next != nil {
		s.Update(next())
	}
}

func TestTitle(t *testing.T) {
	s := New(&fakeClient{}, 10)
	if s.Title() != "Entraînement" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSessionFlowSubmitsOneBatch(t *testing.T) {
	f := &fakeClient{exercises: []exercise.Exercise{
		exo(exercise.Addition, 2, 3),
		exo(exercise.Multiplication, 6, 9),
	}}
	s := startScreen(t, f, 2)

	answer(t, s, "5")
	// Dismiss feedback before the next answer.
	s.Update(feedbackDoneMsg{})
	answer(t, s, "54")

	if len(f.submitted) != 1 {
		t.Fatalf("expected one batch, got %d", len(f.submitted))
	}
	if len(f.submitted[0]) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(f.submitted[0]))
	}
	if f.createdVol != 2 {
		t.Errorf("created volume = %d, want 2", f.createdVol)
	}
}

func TestFlushRetryReusesNonce(t *testing.T) {
	f := &fakeClient{
		exercises: []exercise.Exercise{exo(exercise.Addition, 1, 1)},
		flushErr:  errors.New("network down"),
	}
	s := startScreen(t, f, 1)

	answer(t, s, "2")

	if !s.flushFailed {
		t.Fatal("expected flushFailed after failed submit")
	}

	// Enter retries the same batch.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected retry command")
	}
	s.Update(cmd())

	if len(f.nonces) != 2 {
		t.Fatalf("expected 2 submit attempts, got %d", len(f.nonces))
	}
	if f.nonces[0] != f.nonces[1] {
		t.Errorf("nonce changed across retry: %q vs %q", f.nonces[0], f.nonces[1])
	}
	if len(f.submitted) != 1 {
		t.Fatalf("expected the retry to deliver one batch, got %d", len(f.submitted))
	}
}

func TestUnauthenticatedStartShowsError(t *testing.T) {
	f := &fakeClient{createErr: backend.ErrNotAuthenticated}
	s := New(f, 10)
	msg := s.startSession()()
	s.Update(msg)

	if s.errMsg == "" {
		t.Fatal("expected error message after unauthenticated start")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestEscOpensQuitConfirm(t *testing.T) {
	f := &fakeClient{exercises: []exercise.Exercise{exo(exercise.Addition, 1, 1)}}
	s := startScreen(t, f, 1)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.showQuit {
		t.Fatal("expected quit confirmation")
	}

	// N resumes.
	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.showQuit {
		t.Fatal("expected quit confirmation dismissed")
	}
}
