package training

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// fakeTrainer records submissions and can be programmed to fail.
type fakeTrainer struct {
	sessionID int
	exercises []exercise.Exercise
	startErr  error
	submitErr error
	submits   int
	lastNonce string
	lastBatch []exercise.Observation
}

func (f *fakeTrainer) CreateSession(ctx context.Context, volume int) (int, error) {
	if f.startErr != nil {
		return 0, f.startErr
	}
	return f.sessionID, nil
}

func (f *fakeTrainer) GenerateExercises(ctx context.Context, volume int) ([]exercise.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeTrainer) SubmitObservations(ctx context.Context, nonce string, obs []exercise.Observation) error {
	f.submits++
	f.lastNonce = nonce
	f.lastBatch = obs
	if f.submitErr != nil {
		return f.submitErr
	}
	return nil
}

func threeExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{Operation: exercise.Addition, OperandOne: 2, OperandTwo: 3, ParcoursID: 1},
		{Operation: exercise.Soustraction, OperandOne: 9, OperandTwo: 4, ParcoursID: 1},
		{Operation: exercise.Multiplication, OperandOne: 3, OperandTwo: 3, ParcoursID: 1},
	}
}

func TestRunner_ScenarioThreeExercises(t *testing.T) {
	ft := &fakeTrainer{sessionID: 42, exercises: threeExercises()}
	r := NewRunner(ft)
	require.NoError(t, r.Start(context.Background(), 3))
	require.Equal(t, StateReady, r.State())

	res, err := r.Validate("5") // correct
	require.NoError(t, err)
	require.True(t, res.Correct)
	require.False(t, res.Done)

	res, err = r.Validate("5") // correct
	require.NoError(t, err)
	require.True(t, res.Correct)

	res, err = r.Validate("8") // wrong (3*3=9)
	require.NoError(t, err)
	require.False(t, res.Correct)
	require.True(t, res.Done)

	require.NoError(t, r.Flush(context.Background()))
	require.Equal(t, StateFinished, r.State())

	sum := r.Summary()
	require.Equal(t, 42, sum.SessionID)
	require.Equal(t, 2, sum.Score)
	require.Equal(t, 3, sum.Total)
	require.Len(t, sum.Mistakes, 1)
	require.Equal(t, 9.0, sum.Mistakes[0].Expected)
	require.Equal(t, 8.0, sum.Mistakes[0].UserAnswer)

	// One observation per exercise regardless of correctness mix.
	require.Len(t, ft.lastBatch, 3)
}

func TestRunner_NonNumericRecordsZeroProposition(t *testing.T) {
	ft := &fakeTrainer{sessionID: 7, exercises: threeExercises()[:1]}
	r := NewRunner(ft)
	require.NoError(t, r.Start(context.Background(), 1))

	res, err := r.Validate("abc")
	require.NoError(t, err)
	require.False(t, res.Correct)
	require.True(t, res.Done)

	require.NoError(t, r.Flush(context.Background()))
	require.Len(t, ft.lastBatch, 1)
	require.Equal(t, 0.0, ft.lastBatch[0].Proposition)
	require.False(t, ft.lastBatch[0].Parsed, "placeholder proposition must be flagged unparsed")
	require.Equal(t, exercise.CorrectionNone, ft.lastBatch[0].Correction)

	// The raw value is preserved as NaN on the mistake for display.
	require.True(t, math.IsNaN(r.Summary().Mistakes[0].UserAnswer))
}

func TestRunner_ValidateWithoutSession(t *testing.T) {
	r := NewRunner(&fakeTrainer{})
	r.exercises = threeExercises()

	_, err := r.Validate("5")
	require.ErrorIs(t, err, ErrNoSession)
	require.Equal(t, 0, r.Index(), "must not advance without a session id")
	require.Equal(t, 0, r.buf.Len())
}

func TestRunner_StartUnauthenticated(t *testing.T) {
	ft := &fakeTrainer{startErr: backend.ErrNotAuthenticated}
	r := NewRunner(ft)

	err := r.Start(context.Background(), 10)
	require.ErrorIs(t, err, backend.ErrNotAuthenticated)
	require.Equal(t, StateReady, r.State(), "runner stays ready with zero exercises")
	require.Empty(t, r.Exercises())
}

func TestRunner_FlushRetryKeepsBufferAndNonce(t *testing.T) {
	ft := &fakeTrainer{sessionID: 5, exercises: threeExercises()[:2]}
	r := NewRunner(ft)
	require.NoError(t, r.Start(context.Background(), 2))
	r.Validate("5")
	r.Validate("5")

	ft.submitErr = errors.New("network down")
	require.Error(t, r.Flush(context.Background()))
	require.Equal(t, StateReady, r.State())
	firstNonce := ft.lastNonce

	ft.submitErr = nil
	require.NoError(t, r.Flush(context.Background()))
	require.Equal(t, 2, ft.submits)
	require.Equal(t, firstNonce, ft.lastNonce, "retry must reuse the batch nonce")
	require.Len(t, ft.lastBatch, 2, "retry must resubmit the full batch")
}

func TestRunner_ElapsedNonNegativeWholeSeconds(t *testing.T) {
	ft := &fakeTrainer{sessionID: 1, exercises: threeExercises()[:2]}
	r := NewRunner(ft)
	require.NoError(t, r.Start(context.Background(), 2))

	base := time.Now()
	r.now = func() time.Time { return base.Add(2700 * time.Millisecond) }
	r.anchor = base
	_, err := r.Validate("5")
	require.NoError(t, err)

	// Clock skew: anchor in the future must clamp to zero.
	r.anchor = base.Add(time.Hour)
	_, err = r.Validate("5")
	require.NoError(t, err)

	require.NoError(t, r.Flush(context.Background()))
	require.Equal(t, 2, ft.lastBatch[0].TempsSeconds, "2.7s floors to 2")
	require.Equal(t, 0, ft.lastBatch[1].TempsSeconds)
}

func TestBuffer_DrainAllSingleShot(t *testing.T) {
	var b Buffer
	b.Append(exercise.Observation{ParcoursID: 1})
	b.Append(exercise.Observation{ParcoursID: 2})

	out := b.DrainAll()
	require.Len(t, out, 2)
	require.Equal(t, 0, b.Len())
	require.Empty(t, b.DrainAll())
}
