// Package training drives the drill loop: sequential exercise
// presentation, per-exercise timing, correctness evaluation, mistake
// tracking, and the single batched flush at session end.
package training

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// State is the runner's lifecycle state.
type State int

const (
	StateLoading State = iota
	StateReady
	StatePosting
	StateFinished
)

// ErrNoSession is reported when an answer is submitted without a live
// session identifier. Retryable; the runner does not advance.
var ErrNoSession = errors.New("no live session identifier")

// ErrSessionDone is reported when Validate is called after the last
// exercise was already answered.
var ErrSessionDone = errors.New("session already complete")

// Result describes one processed answer.
type Result struct {
	Correct bool
	// Done is true when this was the last exercise; the caller must
	// flush before navigating to results.
	Done bool
}

// Summary is the handoff to the result screen after a successful flush.
type Summary struct {
	SessionID int
	Score     int
	Total     int
	Mistakes  []exercise.Mistake
}

// Runner owns one training session. It is single-threaded: the UI event
// loop calls it sequentially, so the timer anchor, session id, and
// buffer are plain fields rather than synchronized state.
type Runner struct {
	trainer backend.Trainer
	now     func() time.Time

	state     State
	sessionID int
	exercises []exercise.Exercise
	index     int
	score     int
	mistakes  []exercise.Mistake

	buf     Buffer
	pending []exercise.Observation // drained buffer retained across flush retries
	nonce   string

	anchor time.Time
}

// NewRunner creates a runner over the given backend.
func NewRunner(trainer backend.Trainer) *Runner {
	return &Runner{
		trainer: trainer,
		now:     time.Now,
		state:   StateLoading,
		nonce:   uuid.New().String(),
	}
}

// State returns the current lifecycle state.
func (r *Runner) State() State { return r.state }

// SessionID returns the server-assigned session identifier, 0 before
// Start succeeds.
func (r *Runner) SessionID() int { return r.sessionID }

// Exercises returns the session's exercise list.
func (r *Runner) Exercises() []exercise.Exercise { return r.exercises }

// Index returns the zero-based position of the current exercise.
func (r *Runner) Index() int { return r.index }

// Score returns the locally tallied correct count.
func (r *Runner) Score() int { return r.score }

// Current returns the active exercise, or false when none remains.
func (r *Runner) Current() (exercise.Exercise, bool) {
	if r.index >= len(r.exercises) {
		return exercise.Exercise{}, false
	}
	return r.exercises[r.index], true
}

// Start creates the session and fetches its exercises. On failure
// (including backend.ErrNotAuthenticated) the runner lands in StateReady
// with zero exercises and the error is surfaced to the caller; the view
// must handle the empty-exercise display.
func (r *Runner) Start(ctx context.Context, volume int) error {
	r.state = StateLoading

	id, err := r.trainer.CreateSession(ctx, volume)
	if err != nil {
		r.state = StateReady
		return err
	}
	r.sessionID = id

	exos, err := r.trainer.GenerateExercises(ctx, volume)
	if err != nil {
		r.state = StateReady
		return err
	}
	r.exercises = exos
	r.index = 0
	r.anchor = r.now()
	r.state = StateReady
	return nil
}

// ResetAnchor restarts the per-exercise timer, e.g. when the view
// becomes visible again.
func (r *Runner) ResetAnchor() {
	r.anchor = r.now()
}

// Validate processes the raw answer for the current exercise. Exactly
// one observation is appended per exercise regardless of correctness or
// parseability; unparseable input records proposition 0 and an NaN
// mistake value. Advances to the next exercise and re-anchors the timer.
func (r *Runner) Validate(raw string) (Result, error) {
	cur, ok := r.Current()
	if !ok {
		return Result{}, ErrSessionDone
	}
	if r.sessionID == 0 {
		return Result{}, ErrNoSession
	}

	elapsed := int(r.now().Sub(r.anchor).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	value, parsed := exercise.ParseAnswer(raw)
	correct := parsed && value == cur.Expected()

	proposition := 0.0
	if parsed {
		proposition = value
	}
	r.buf.Append(exercise.Observation{
		EntrainementID: r.sessionID,
		ParcoursID:     cur.ParcoursID,
		OperandOne:     cur.OperandOne,
		OperandTwo:     cur.OperandTwo,
		Operation:      cur.Operation,
		Proposition:    proposition,
		TempsSeconds:   elapsed,
		Correction:     exercise.CorrectionNone,
		Parsed:         parsed,
	})

	if correct {
		r.score++
	} else {
		r.mistakes = append(r.mistakes, exercise.NewMistake(cur, value, parsed))
	}

	r.index++
	r.anchor = r.now()

	return Result{Correct: correct, Done: r.index >= len(r.exercises)}, nil
}

// Flush submits the entire buffer in one batched call. On failure the
// drained records are retained and the next Flush re-sends them under
// the same batch nonce, so a response lost after a server-side commit
// cannot double-submit. On success the runner is finished and Summary
// carries the handoff.
func (r *Runner) Flush(ctx context.Context) error {
	if r.state == StateFinished {
		return nil
	}
	r.state = StatePosting

	if r.pending == nil {
		r.pending = r.buf.DrainAll()
	}

	if err := r.trainer.SubmitObservations(ctx, r.nonce, r.pending); err != nil {
		r.state = StateReady
		return err
	}

	r.state = StateFinished
	return nil
}

// Summary returns the result-screen handoff. Only meaningful once the
// runner is finished.
func (r *Runner) Summary() Summary {
	return Summary{
		SessionID: r.sessionID,
		Score:     r.score,
		Total:     len(r.exercises),
		Mistakes:  r.mistakes,
	}
}
