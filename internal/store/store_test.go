package store

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openTestLocal(t *testing.T) *Local {
	t.Helper()
	return NewLocal(openTestStore(t))
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGenerateExercises(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	exs, err := l.GenerateExercises(ctx, 9)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(exs) != 9 {
		t.Fatalf("got %d exercises, want 9", len(exs))
	}
	for i, e := range exs {
		if e.Solution == nil {
			t.Fatalf("exercise %d has no solution", i)
		}
		if got := e.Expected(); got != *e.Solution {
			t.Errorf("exercise %d: expected %v, solution %v", i, got, *e.Solution)
		}
		if e.Operation == exercise.Soustraction && e.Expected() < 0 {
			t.Errorf("exercise %d: negative subtraction result %v", i, e.Expected())
		}
	}
}

func TestSubmitObservationsDerivesFields(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	id, err := l.CreateSession(ctx, 2)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	obs := []exercise.Observation{
		{EntrainementID: id, ParcoursID: 1, OperandOne: 6, OperandTwo: 9,
			Operation: exercise.Multiplication, Proposition: 54, TempsSeconds: 2,
			Correction: exercise.CorrectionNone, Parsed: true},
		{EntrainementID: id, ParcoursID: 1, OperandOne: 6, OperandTwo: 9,
			Operation: exercise.Multiplication, Proposition: 50, TempsSeconds: 8,
			Correction: exercise.CorrectionNone, Parsed: true},
	}
	if err := l.SubmitObservations(ctx, "batch-1", obs); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := l.FetchObservations(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].Etat != "VRAI" || *rows[0].Score != 1 {
		t.Errorf("correct row: etat %q score %v", rows[0].Etat, *rows[0].Score)
	}
	if *rows[0].BonusVitesse != fastBonus {
		t.Errorf("fast correct answer bonus = %v, want %v", *rows[0].BonusVitesse, fastBonus)
	}
	if rows[1].Etat != "FAUX" || *rows[1].Score != -1 {
		t.Errorf("wrong row: etat %q score %v", rows[1].Etat, *rows[1].Score)
	}
	if *rows[1].BonusVitesse != 0 || *rows[1].BonusMarge != 0 {
		t.Errorf("wrong row got bonuses: %v %v", *rows[1].BonusVitesse, *rows[1].BonusMarge)
	}
	wantMarge := math.Abs(50-54) / 54 * 100
	if math.Abs(*rows[1].MargeErreur-wantMarge) > 1e-9 {
		t.Errorf("marge = %v, want %v", *rows[1].MargeErreur, wantMarge)
	}
}

func TestSubmitObservationsUnparsedAnswerStaysWrong(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	id, err := l.CreateSession(ctx, 1)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// 7-7 has solution 0, the same value the placeholder proposition
	// uses for unparseable input. The parsed flag must break the tie.
	obs := []exercise.Observation{
		{EntrainementID: id, ParcoursID: 1, OperandOne: 7, OperandTwo: 7,
			Operation: exercise.Soustraction, Proposition: 0, TempsSeconds: 1,
			Correction: exercise.CorrectionNone, Parsed: false},
	}
	if err := l.SubmitObservations(ctx, "batch-unparsed", obs); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := l.FetchObservations(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Etat != "FAUX" || *rows[0].Score != -1 {
		t.Errorf("unparsed row: etat %q score %v, want FAUX -1", rows[0].Etat, *rows[0].Score)
	}
	if *rows[0].BonusVitesse != 0 || *rows[0].BonusMarge != 0 {
		t.Errorf("unparsed row got bonuses: %v %v", *rows[0].BonusVitesse, *rows[0].BonusMarge)
	}
}

func TestSubmitObservationsBatchDedup(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	id, err := l.CreateSession(ctx, 1)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	obs := []exercise.Observation{
		{EntrainementID: id, ParcoursID: 1, OperandOne: 2, OperandTwo: 2,
			Operation: exercise.Addition, Proposition: 4, TempsSeconds: 1,
			Correction: exercise.CorrectionNone, Parsed: true},
	}

	// Same nonce twice simulates a retry after a lost response.
	if err := l.SubmitObservations(ctx, "batch-retry", obs); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := l.SubmitObservations(ctx, "batch-retry", obs); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	rows, err := l.FetchObservations(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after duplicate batch, want 1", len(rows))
	}
}

func TestReviewRoundTrip(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	id, err := l.CreateSession(ctx, 2)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	obs := []exercise.Observation{
		{EntrainementID: id, ParcoursID: 1, OperandOne: 7, OperandTwo: 8,
			Operation: exercise.Multiplication, Proposition: 54, TempsSeconds: 4,
			Correction: exercise.CorrectionNone, Parsed: true},
		{EntrainementID: id, ParcoursID: 1, OperandOne: 3, OperandTwo: 4,
			Operation: exercise.Addition, Proposition: 7, TempsSeconds: 2,
			Correction: exercise.CorrectionNone, Parsed: true},
	}
	if err := l.SubmitObservations(ctx, "batch-rev", obs); err != nil {
		t.Fatalf("submit: %v", err)
	}

	items, err := l.ReviewItems(ctx, id)
	if err != nil {
		t.Fatalf("review items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d review items, want 1", len(items))
	}
	if items[0].Solution == nil || *items[0].Solution != 56 {
		t.Fatalf("review item solution = %v, want 56", items[0].Solution)
	}

	// Still wrong on first try.
	res, err := l.VerifyReview(ctx, id, []backend.ReviewTry{{ID: items[0].ID, Reponse: 55}})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ids, markAll := res.ResolveWrongIDs(); markAll || len(ids) != 1 || ids[0] != items[0].ID {
		t.Fatalf("wrong ids = %v markAll=%v", ids, markAll)
	}

	// Correct on the second try.
	res, err = l.VerifyReview(ctx, id, []backend.ReviewTry{{ID: items[0].ID, Reponse: 56}})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ids, markAll := res.ResolveWrongIDs(); markAll || len(ids) != 0 {
		t.Fatalf("wrong ids after correct answer = %v markAll=%v", ids, markAll)
	}

	attempt, err := l.RecordCorrection(ctx, id)
	if err != nil {
		t.Fatalf("record correction: %v", err)
	}
	if attempt != 1 {
		t.Fatalf("attempt = %d, want 1", attempt)
	}
}

func TestVerifyReviewUnknownIDIsMissing(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	id, err := l.CreateSession(ctx, 1)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	res, err := l.VerifyReview(ctx, id, []backend.ReviewTry{{ID: 999, Reponse: 1}})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.Missing != 1 || len(res.MissingIDs) != 1 {
		t.Fatalf("missing = %d ids %v, want 1", res.Missing, res.MissingIDs)
	}
}

func TestBadgeUnlocksOnce(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	id, err := l.CreateSession(ctx, 1)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	obs := []exercise.Observation{
		{EntrainementID: id, ParcoursID: 1, OperandOne: 1, OperandTwo: 1,
			Operation: exercise.Addition, Proposition: 2, TempsSeconds: 1,
			Correction: exercise.CorrectionNone, Parsed: true},
	}
	if err := l.SubmitObservations(ctx, "batch-badge", obs); err != nil {
		t.Fatalf("submit: %v", err)
	}

	first, err := l.CheckAndUnlockBadges(ctx)
	if err != nil {
		t.Fatalf("check badges: %v", err)
	}
	if len(first.NewlyUnlocked) == 0 {
		t.Fatal("expected at least one badge after a session")
	}

	second, err := l.CheckAndUnlockBadges(ctx)
	if err != nil {
		t.Fatalf("check badges again: %v", err)
	}
	if len(second.NewlyUnlocked) != 0 {
		t.Fatalf("badges unlocked twice: %v", second.NewlyUnlocked)
	}
	if second.TotalUnlocked != first.TotalUnlocked {
		t.Fatalf("total changed: %d vs %d", second.TotalUnlocked, first.TotalUnlocked)
	}
}

func TestChatPageAndFanout(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	var pushed []string
	unsub, err := l.SubscribeMessages(func(m chat.Message) {
		pushed = append(pushed, m.Content)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsub()

	if _, err := l.SendMessage(ctx, "salut"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := l.SendMessage(ctx, "ça va ?"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(pushed) != 2 {
		t.Fatalf("pushed %d messages, want 2", len(pushed))
	}

	msgs, err := l.FetchMessages(ctx, nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	// Newest first.
	if !msgs[0].CreatedAt.After(msgs[1].CreatedAt) && !msgs[0].CreatedAt.Equal(msgs[1].CreatedAt) {
		t.Fatalf("messages not in descending order: %v, %v", msgs[0].CreatedAt, msgs[1].CreatedAt)
	}

	unsub()
	if _, err := l.SendMessage(ctx, "personne n'écoute"); err != nil {
		t.Fatalf("send after unsub: %v", err)
	}
	if len(pushed) != 2 {
		t.Fatalf("handler ran after unsubscribe: %d", len(pushed))
	}

	before := msgs[1].CreatedAt
	older, err := l.FetchMessages(ctx, &before)
	if err != nil {
		t.Fatalf("fetch older: %v", err)
	}
	for _, m := range older {
		if !m.CreatedAt.Before(before) {
			t.Fatalf("cursor not strict: %v >= %v", m.CreatedAt, before)
		}
	}
}

func TestTrialStateRoundTrip(t *testing.T) {
	l := openTestLocal(t)
	ctx := context.Background()

	ms, err := l.TrialStartedAt(ctx)
	if err != nil {
		t.Fatalf("read empty: %v", err)
	}
	if ms != 0 {
		t.Fatalf("empty trial state = %d, want 0", ms)
	}

	now := time.Now().UnixMilli()
	if err := l.SetTrialStartedAt(ctx, now); err != nil {
		t.Fatalf("set: %v", err)
	}
	ms, err = l.TrialStartedAt(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ms != now {
		t.Fatalf("trial state = %d, want %d", ms, now)
	}

	// Overwrite replaces, never duplicates.
	if err := l.SetTrialStartedAt(ctx, now+1000); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	ms, _ = l.TrialStartedAt(ctx)
	if ms != now+1000 {
		t.Fatalf("trial state after overwrite = %d, want %d", ms, now+1000)
	}
}
