package review

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

type fakeReviewer struct {
	items       []backend.ReviewItem
	verify      backend.VerifyResult
	verifyErr   error
	verifyCalls int
	lastTries   []backend.ReviewTry
	recordErr   error
	recorded    int
}

func (f *fakeReviewer) ReviewItems(ctx context.Context, sessionID int) ([]backend.ReviewItem, error) {
	return f.items, nil
}

func (f *fakeReviewer) VerifyReview(ctx context.Context, sessionID int, tries []backend.ReviewTry) (backend.VerifyResult, error) {
	f.verifyCalls++
	f.lastTries = tries
	return f.verify, f.verifyErr
}

func (f *fakeReviewer) RecordCorrection(ctx context.Context, sessionID int) (int, error) {
	f.recorded++
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	return f.recorded, nil
}

func twoItems() []backend.ReviewItem {
	return []backend.ReviewItem{
		{ID: 11, Operation: "Addition", OperandOne: 2, OperandTwo: 3},
		{ID: 12, Operation: "Multiplication", OperandOne: 4, OperandTwo: 5},
	}
}

func loaded(t *testing.T, f *fakeReviewer, mistakes []exercise.Mistake) *Session {
	t.Helper()
	s := NewSession(f, 42)
	require.NoError(t, s.Load(context.Background(), mistakes))
	require.Equal(t, PhaseInteracting, s.Phase())
	return s
}

func TestSession_AllCorrectResolvesInOneRound(t *testing.T) {
	f := &fakeReviewer{items: twoItems()}
	s := loaded(t, f, nil)

	s.SetAnswer(11, "5")
	s.SetAnswer(12, "20")

	out, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, out.Resolved)
	require.NoError(t, out.RecordWarning)
	require.Equal(t, 1, out.Attempt)
	require.Equal(t, PhaseResolved, s.Phase())
	require.Len(t, f.lastTries, 2)
}

func TestSession_IncompleteAnswersRejectLocally(t *testing.T) {
	f := &fakeReviewer{items: twoItems()}
	s := loaded(t, f, nil)

	s.SetAnswer(11, "5")
	s.SetAnswer(12, "pas un nombre")

	_, err := s.Submit(context.Background())
	require.ErrorIs(t, err, ErrIncompleteAnswers)
	require.Equal(t, 0, f.verifyCalls, "no network call on local rejection")
	require.Equal(t, PhaseInteracting, s.Phase())
}

func TestSession_CountsWithoutIDsMarkAllWrong(t *testing.T) {
	f := &fakeReviewer{
		items:  twoItems(),
		verify: backend.VerifyResult{Incorrect: 2},
	}
	s := loaded(t, f, nil)
	s.SetAnswer(11, "1")
	s.SetAnswer(12, "1")

	out, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.False(t, out.Resolved)
	require.Equal(t, 2, out.WrongCount, "fail-safe marks every item")
	for _, it := range s.Items() {
		require.True(t, it.Wrong)
		require.False(t, it.Locked)
	}
}

func TestSession_PartialWrongLocksCorrectItems(t *testing.T) {
	f := &fakeReviewer{
		items:  twoItems(),
		verify: backend.VerifyResult{WrongIDs: []int{12}, Incorrect: 1},
	}
	s := loaded(t, f, nil)
	s.SetAnswer(11, "5")
	s.SetAnswer(12, "99")

	out, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, out.WrongCount)

	items := s.Items()
	require.True(t, items[0].Locked)
	require.False(t, items[0].Wrong)
	require.True(t, items[1].Wrong)

	// Locked items ignore edits; editing the wrong one clears its mark.
	s.SetAnswer(11, "666")
	s.SetAnswer(12, "20")
	items = s.Items()
	require.Equal(t, "5", items[0].Answer)
	require.False(t, items[1].Wrong)
}

func TestSession_PersistentlyWrongNeverResolves(t *testing.T) {
	f := &fakeReviewer{
		items:  twoItems(),
		verify: backend.VerifyResult{WrongIDs: []int{11}, Incorrect: 1},
	}
	s := loaded(t, f, nil)
	s.SetAnswer(11, "1")
	s.SetAnswer(12, "20")

	for round := 0; round < 3; round++ {
		out, err := s.Submit(context.Background())
		require.NoError(t, err)
		require.False(t, out.Resolved, "round %d", round)
		require.True(t, s.Items()[0].Wrong)
	}
	require.Equal(t, 0, f.recorded)
}

func TestSession_RecordFailureIsSoftWarning(t *testing.T) {
	f := &fakeReviewer{items: twoItems(), recordErr: errors.New("backend down")}
	s := loaded(t, f, nil)
	s.SetAnswer(11, "5")
	s.SetAnswer(12, "20")

	out, err := s.Submit(context.Background())
	require.NoError(t, err, "recording failure must not block the resolution")
	require.True(t, out.Resolved)
	require.Error(t, out.RecordWarning)
	require.Equal(t, PhaseResolved, s.Phase())
}

func TestSession_IncorrectSampleAndMissingShapes(t *testing.T) {
	var sample backend.VerifyResult
	sample.IncorrectSample = []struct {
		ID int `json:"id"`
	}{{ID: 12}}
	sample.Incorrect = 1

	f := &fakeReviewer{items: twoItems(), verify: sample}
	s := loaded(t, f, nil)
	s.SetAnswer(11, "5")
	s.SetAnswer(12, "0")

	out, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, out.WrongCount)
	require.True(t, s.Items()[1].Wrong)

	f2 := &fakeReviewer{items: twoItems(), verify: backend.VerifyResult{MissingIDs: []int{11}, Missing: 1}}
	s2 := loaded(t, f2, nil)
	s2.SetAnswer(11, "0")
	s2.SetAnswer(12, "20")

	out, err = s2.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, out.WrongCount)
	require.True(t, s2.Items()[0].Wrong)
}

func TestSession_LoadJoinsClientMistakes(t *testing.T) {
	f := &fakeReviewer{items: twoItems()}
	mistakes := []exercise.Mistake{
		{Operation: exercise.Multiplication, OperandOne: 4, OperandTwo: 5, Expected: 20, UserAnswer: 25},
	}
	s := loaded(t, f, mistakes)

	items := s.Items()
	require.True(t, math.IsNaN(items[0].FirstAnswer), "no client record for item 11")
	require.Equal(t, 25.0, items[1].FirstAnswer)
}
