// Package review implements the mistake-correction loop: a bounded set
// of previously-incorrect items, free-form answer editing, one batched
// server verification per round, and iteration until nothing is wrong.
package review

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// Phase is the state machine's current phase.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseInteracting
	PhaseVerifying
	PhaseResolved
)

// ErrIncompleteAnswers is the local rejection when any unlocked item
// lacks a syntactically valid numeric answer; no network call is made.
var ErrIncompleteAnswers = errors.New("every item needs a numeric answer")

// Item is one correction slot.
type Item struct {
	backend.ReviewItem

	Answer string
	Wrong  bool // marked wrong by the last verification round
	Locked bool // answered correctly in a previous round; no further edits

	// FirstAnswer is the user's original wrong value from the client-side
	// mistake list, NaN when unknown or unparseable. Display only; the
	// server list is the truth for what is still wrong.
	FirstAnswer float64
}

// Outcome reports one verification round.
type Outcome struct {
	Resolved   bool
	WrongCount int

	// Attempt is the correction attempt number recorded server-side;
	// only set when Resolved.
	Attempt int

	// RecordWarning carries a non-blocking failure of the attempt
	// recording. The correction itself still counts as complete.
	RecordWarning error
}

// Session is the review state machine for one training session.
type Session struct {
	reviewer  backend.Reviewer
	sessionID int

	phase Phase
	items []Item
}

// NewSession creates a review session. Load must run before interaction.
func NewSession(reviewer backend.Reviewer, sessionID int) *Session {
	return &Session{reviewer: reviewer, sessionID: sessionID, phase: PhaseLoading}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Items returns the correction slots in load order.
func (s *Session) Items() []Item { return s.items }

// Load fetches the server-selected correction set and initializes one
// empty answer slot per item. The client mistakes enrich the display by
// joining on the operand pair.
func (s *Session) Load(ctx context.Context, mistakes []exercise.Mistake) error {
	items, err := s.reviewer.ReviewItems(ctx, s.sessionID)
	if err != nil {
		return fmt.Errorf("load review items: %w", err)
	}

	s.items = make([]Item, len(items))
	for i, it := range items {
		s.items[i] = Item{ReviewItem: it, FirstAnswer: math.NaN()}
		for _, m := range mistakes {
			if m.OperandOne == it.OperandOne && m.OperandTwo == it.OperandTwo {
				s.items[i].FirstAnswer = m.UserAnswer
				break
			}
		}
	}
	s.phase = PhaseInteracting
	return nil
}

// SetAnswer updates one item's answer slot and clears its wrong mark.
// Locked items ignore edits.
func (s *Session) SetAnswer(id int, raw string) {
	for i := range s.items {
		if s.items[i].ID != id || s.items[i].Locked {
			continue
		}
		s.items[i].Answer = raw
		s.items[i].Wrong = false
		return
	}
}

// Submit verifies the full answer set in one call. Any unparseable
// answer rejects locally with ErrIncompleteAnswers. When the server
// signals errors without naming ids, every item is marked wrong.
func (s *Session) Submit(ctx context.Context) (Outcome, error) {
	tries := make([]backend.ReviewTry, 0, len(s.items))
	for _, it := range s.items {
		v, ok := exercise.ParseAnswer(it.Answer)
		if !ok {
			return Outcome{}, ErrIncompleteAnswers
		}
		tries = append(tries, backend.ReviewTry{ID: it.ID, Reponse: v})
	}

	s.phase = PhaseVerifying
	res, err := s.reviewer.VerifyReview(ctx, s.sessionID, tries)
	if err != nil {
		s.phase = PhaseInteracting
		return Outcome{}, fmt.Errorf("verify answers: %w", err)
	}

	wrongIDs, markAll := res.ResolveWrongIDs()
	wrong := make(map[int]bool, len(wrongIDs))
	if markAll {
		for _, it := range s.items {
			wrong[it.ID] = true
		}
	} else {
		for _, id := range wrongIDs {
			wrong[id] = true
		}
	}

	if len(wrong) == 0 {
		s.phase = PhaseResolved
		out := Outcome{Resolved: true, Attempt: 1}
		attempt, err := s.reviewer.RecordCorrection(ctx, s.sessionID)
		if err != nil {
			// The user's corrective work stands; the attempt counter may
			// be understated.
			out.RecordWarning = err
		} else {
			out.Attempt = attempt
		}
		return out, nil
	}

	for i := range s.items {
		if wrong[s.items[i].ID] {
			s.items[i].Wrong = true
		} else {
			s.items[i].Wrong = false
			s.items[i].Locked = true
		}
	}
	s.phase = PhaseInteracting
	return Outcome{WrongCount: len(wrong)}, nil
}
