package review

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
	"github.com/Tnecniv1/Calcul-Pixel/internal/review"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/components"
)

// fakeReviewer serves a fixed correction set.
type fakeReviewer struct {
	items    []backend.ReviewItem
	result   backend.VerifyResult
	attempts int
}

func (f *fakeReviewer) ReviewItems(context.Context, int) ([]backend.ReviewItem, error) {
	return f.items, nil
}
func (f *fakeReviewer) VerifyReview(context.Context, int, []backend.ReviewTry) (backend.VerifyResult, error) {
	return f.result, nil
}
func (f *fakeReviewer) RecordCorrection(context.Context, int) (int, error) {
	f.attempts++
	return f.attempts, nil
}

func fp(v float64) *float64 { return &v }

func newTestScreen(f *fakeReviewer, mistakes []exercise.Mistake) *Screen {
	return &Screen{
		session:  review.NewSession(f, 1),
		mistakes: mistakes,
		input:    components.NewTextInput("Réponse...", true, 12),
	}
}

func loadedScreen(t *testing.T, f *fakeReviewer) *Screen {
	t.Helper()
	s := newTestScreen(f, nil)
	s.Update(s.load()())
	return s
}

func TestEmptyCorrectionSetPopsBack(t *testing.T) {
	s := newTestScreen(&fakeReviewer{}, nil)

	_, cmd := s.Update(s.load()())
	if cmd == nil {
		t.Fatal("expected pop command for empty correction set")
	}
}

func TestAllCorrectResolves(t *testing.T) {
	f := &fakeReviewer{items: []backend.ReviewItem{
		{ID: 1, Operation: "Multiplication", OperandOne: 7, OperandTwo: 8, Solution: fp(56)},
	}}
	s := loadedScreen(t, f)

	s.input.Model.SetValue("56")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected verify command on last item")
	}
	s.Update(cmd())

	if !s.resolved {
		t.Fatal("expected resolved state")
	}
	if f.attempts != 1 {
		t.Errorf("recorded attempts = %d, want 1", f.attempts)
	}
}

func TestWrongAnswerStaysInteractive(t *testing.T) {
	f := &fakeReviewer{
		items: []backend.ReviewItem{
			{ID: 1, Operation: "Addition", OperandOne: 2, OperandTwo: 2, Solution: fp(4)},
		},
		result: backend.VerifyResult{WrongIDs: []int{1}, Incorrect: 1},
	}
	s := loadedScreen(t, f)

	s.input.Model.SetValue("5")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(cmd())

	if s.resolved {
		t.Fatal("expected unresolved state")
	}
	if !s.session.Items()[0].Wrong {
		t.Fatal("expected item marked wrong")
	}
	if s.status == "" {
		t.Fatal("expected a retry status message")
	}
}

func TestNonNumericAnswerRejectsLocally(t *testing.T) {
	f := &fakeReviewer{items: []backend.ReviewItem{
		{ID: 1, Operation: "Addition", OperandOne: 1, OperandTwo: 1, Solution: fp(2)},
	}}
	s := loadedScreen(t, f)

	s.input.Model.SetValue("abc")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(cmd())

	if s.resolved {
		t.Fatal("expected unresolved state")
	}
	if s.status == "" {
		t.Fatal("expected local rejection message")
	}
}

func TestMistakeJoinShowsFirstAnswer(t *testing.T) {
	f := &fakeReviewer{items: []backend.ReviewItem{
		{ID: 1, Operation: "Multiplication", OperandOne: 6, OperandTwo: 9, Solution: fp(54)},
	}}
	s := newTestScreen(f, []exercise.Mistake{{
		Operation:  exercise.Multiplication,
		OperandOne: 6,
		OperandTwo: 9,
		Expected:   54,
		UserAnswer: 52,
	}})
	s.Update(s.load()())

	view := s.View(100, 40)
	if !strings.Contains(view, "52") {
		t.Errorf("expected first answer in view, got:\n%s", view)
	}
}
