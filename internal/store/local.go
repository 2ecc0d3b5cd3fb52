package store

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tnecniv1/Calcul-Pixel/ent"
	"github.com/Tnecniv1/Calcul-Pixel/ent/badgeunlock"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
	"github.com/Tnecniv1/Calcul-Pixel/ent/message"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

const (
	localSenderID   = 1
	localSenderName = "Moi"

	reviewLimit = 10
)

// Speed bonus tiers for correct answers, in whole seconds.
const (
	fastAnswerSec  = 3
	quickAnswerSec = 5
	fastBonus      = 0.5
	quickBonus     = 0.25
	precisionBonus = 0.5
)

// Local serves the full backend contract from the embedded database.
// It also persists the trial-start timestamp for the entitlement gate.
type Local struct {
	store *Store
	rng   *rand.Rand

	mu      sync.Mutex
	subs    map[int]func(chat.Message)
	nextSub int
}

// NewLocal wraps an open Store as a local backend.
func NewLocal(s *Store) *Local {
	return &Local{
		store: s,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		subs:  make(map[int]func(chat.Message)),
	}
}

var _ backend.Client = (*Local)(nil)

// CreateSession opens a new training session row.
func (l *Local) CreateSession(ctx context.Context, volume int) (int, error) {
	e, err := l.store.client.Entrainement.Create().
		SetVolume(volume).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return e.ID, nil
}

// GenerateExercises produces a mixed drill list cycling through the
// three operations, with operand ranges sized per operation.
func (l *Local) GenerateExercises(_ context.Context, volume int) ([]exercise.Exercise, error) {
	ops := []exercise.Operation{exercise.Addition, exercise.Soustraction, exercise.Multiplication}
	out := make([]exercise.Exercise, 0, volume)
	for i := 0; i < volume; i++ {
		op := ops[i%len(ops)]
		var a, b float64
		switch op {
		case exercise.Multiplication:
			a = float64(2 + l.rng.Intn(11))
			b = float64(2 + l.rng.Intn(11))
		case exercise.Soustraction:
			a = float64(10 + l.rng.Intn(90))
			b = float64(1 + l.rng.Intn(int(a)))
		default:
			a = float64(10 + l.rng.Intn(90))
			b = float64(10 + l.rng.Intn(90))
		}
		e := exercise.Exercise{Operation: op, OperandOne: a, OperandTwo: b, ParcoursID: 1}
		sol := e.Expected()
		e.Solution = &sol
		out = append(out, e)
	}
	return out, nil
}

// SubmitObservations makes a session buffer durable in one transaction.
// The batch nonce deduplicates retries: if any row with this batch id
// already exists, the whole call is a no-op.
func (l *Local) SubmitObservations(ctx context.Context, nonce string, obs []exercise.Observation) error {
	if len(obs) == 0 {
		return nil
	}

	exists, err := l.store.client.Observation.Query().
		Where(observation.BatchID(nonce)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check batch: %w", err)
	}
	if exists {
		return nil
	}

	builders := make([]*ent.ObservationCreate, 0, len(obs))
	for _, o := range obs {
		sol := exercise.Exercise{
			Operation:  o.Operation,
			OperandOne: o.OperandOne,
			OperandTwo: o.OperandTwo,
		}.Expected()

		correct := o.Parsed && o.Proposition == sol
		etat := "FAUX"
		score := -1.0
		if correct {
			etat = "VRAI"
			score = 1.0
		}

		marge := math.Abs(o.Proposition-sol) / math.Max(math.Abs(sol), 1) * 100

		var vitesse, margeBonus float64
		if correct {
			switch {
			case o.TempsSeconds <= fastAnswerSec:
				vitesse = fastBonus
			case o.TempsSeconds <= quickAnswerSec:
				vitesse = quickBonus
			}
			margeBonus = precisionBonus
		}

		builders = append(builders, l.store.client.Observation.Create().
			SetEntrainementID(o.EntrainementID).
			SetParcoursID(o.ParcoursID).
			SetOperateurUn(o.OperandOne).
			SetOperateurDeux(o.OperandTwo).
			SetOperation(string(o.Operation)).
			SetProposition(o.Proposition).
			SetSolution(sol).
			SetEtat(etat).
			SetTempsSeconds(o.TempsSeconds).
			SetMargeErreur(marge).
			SetScore(score).
			SetBonusVitesse(vitesse).
			SetBonusMarge(margeBonus).
			SetScoreGlobal(score+vitesse+margeBonus).
			SetCorrection(o.Correction).
			SetBatchID(nonce))
	}

	if _, err := l.store.client.Observation.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("insert observations: %w", err)
	}
	return nil
}

// FetchObservations returns the durable rows for a session.
func (l *Local) FetchObservations(ctx context.Context, sessionID int) ([]backend.ObservationRow, error) {
	rows, err := l.store.client.Observation.Query().
		Where(observation.EntrainementID(sessionID)).
		Order(ent.Asc(observation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch observations: %w", err)
	}

	out := make([]backend.ObservationRow, 0, len(rows))
	for _, r := range rows {
		temps := float64(r.TempsSeconds)
		out = append(out, backend.ObservationRow{
			Operation:    r.Operation,
			Etat:         r.Etat,
			Proposition:  ptr(r.Proposition),
			Solution:     ptr(r.Solution),
			TempsSeconds: &temps,
			MargeErreur:  ptr(r.MargeErreur),
			Score:        ptr(r.Score),
			BonusVitesse: ptr(r.BonusVitesse),
			BonusMarge:   ptr(r.BonusMarge),
			ScoreGlobal:  ptr(r.ScoreGlobal),
		})
	}
	return out, nil
}

// ReviewItems returns the most recent incorrect rows of a session,
// bounded so a review round stays short.
func (l *Local) ReviewItems(ctx context.Context, sessionID int) ([]backend.ReviewItem, error) {
	rows, err := l.store.client.Observation.Query().
		Where(
			observation.EntrainementID(sessionID),
			observation.Etat("FAUX"),
		).
		Order(ent.Desc(observation.FieldCreatedAt)).
		Limit(reviewLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("review items: %w", err)
	}

	items := make([]backend.ReviewItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, backend.ReviewItem{
			ID:         r.ID,
			Operation:  r.Operation,
			OperandOne: r.OperateurUn,
			OperandTwo: r.OperateurDeux,
			Solution:   ptr(r.Solution),
		})
	}
	return items, nil
}

// VerifyReview checks resubmitted answers against the stored solutions.
// Tries referencing unknown rows count as missing.
func (l *Local) VerifyReview(ctx context.Context, sessionID int, tries []backend.ReviewTry) (backend.VerifyResult, error) {
	var res backend.VerifyResult
	for _, t := range tries {
		row, err := l.store.client.Observation.Query().
			Where(
				observation.ID(t.ID),
				observation.EntrainementID(sessionID),
			).
			Only(ctx)
		if ent.IsNotFound(err) {
			res.MissingIDs = append(res.MissingIDs, t.ID)
			res.Missing++
			continue
		}
		if err != nil {
			return backend.VerifyResult{}, fmt.Errorf("verify review: %w", err)
		}
		if t.Reponse != row.Solution {
			res.WrongIDs = append(res.WrongIDs, t.ID)
			res.Incorrect++
		}
	}
	return res, nil
}

// RecordCorrection increments the session's correction attempt counter
// and returns the new value.
func (l *Local) RecordCorrection(ctx context.Context, sessionID int) (int, error) {
	e, err := l.store.client.Entrainement.UpdateOneID(sessionID).
		AddTentative(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("record correction: %w", err)
	}
	return e.Tentative, nil
}

// localBadges are the locally evaluable badge definitions. Level and
// streak badges need server-side course data, so only performance and
// speed badges are checked here.
var localBadges = []struct {
	def   backend.BadgeDefinition
	check func(stats badgeStats) bool
}{
	{
		def: backend.BadgeDefinition{
			BadgeID: "perf_premiere", Category: "performance",
			Name: "Première Session", Description: "Terminer une session",
			Emoji: "🎖️", Threshold: 1,
		},
		check: func(s badgeStats) bool { return s.totalSessions >= 1 },
	},
	{
		def: backend.BadgeDefinition{
			BadgeID: "perf_parfaites", Category: "performance",
			Name: "Sans Faute", Description: "10 sessions parfaites",
			Emoji: "💯", Threshold: 10,
		},
		check: func(s badgeStats) bool { return s.perfectSessions >= 10 },
	},
	{
		def: backend.BadgeDefinition{
			BadgeID: "perf_centurion", Category: "performance",
			Name: "Centurion", Description: "100 sessions terminées",
			Emoji: "🏛️", Threshold: 100,
		},
		check: func(s badgeStats) bool { return s.totalSessions >= 100 },
	},
	{
		def: backend.BadgeDefinition{
			BadgeID: "rapidite_eclair", Category: "rapidite",
			Name: "Éclair", Description: "Temps moyen sous 3 secondes",
			Emoji: "⚡", Threshold: 3,
		},
		check: func(s badgeStats) bool { return s.answered > 0 && s.avgTimeSec < 3 },
	},
}

type badgeStats struct {
	totalSessions   int
	perfectSessions int
	answered        int
	avgTimeSec      float64
}

// CheckAndUnlockBadges evaluates the local badge set against stored
// sessions and persists any new unlocks.
func (l *Local) CheckAndUnlockBadges(ctx context.Context) (backend.BadgeCheckResult, error) {
	stats, err := l.collectBadgeStats(ctx)
	if err != nil {
		return backend.BadgeCheckResult{}, err
	}

	var res backend.BadgeCheckResult
	for _, b := range localBadges {
		if !b.check(stats) {
			continue
		}
		exists, err := l.store.client.BadgeUnlock.Query().
			Where(badgeunlock.BadgeID(b.def.BadgeID)).
			Exist(ctx)
		if err != nil {
			return backend.BadgeCheckResult{}, fmt.Errorf("check badge: %w", err)
		}
		if exists {
			continue
		}
		if _, err := l.store.client.BadgeUnlock.Create().
			SetBadgeID(b.def.BadgeID).
			Save(ctx); err != nil {
			return backend.BadgeCheckResult{}, fmt.Errorf("unlock badge: %w", err)
		}
		res.NewlyUnlocked = append(res.NewlyUnlocked, b.def)
	}

	total, err := l.store.client.BadgeUnlock.Query().Count(ctx)
	if err != nil {
		return backend.BadgeCheckResult{}, fmt.Errorf("count badges: %w", err)
	}
	res.TotalUnlocked = total
	return res, nil
}

func (l *Local) collectBadgeStats(ctx context.Context) (badgeStats, error) {
	var stats badgeStats

	sessions, err := l.store.client.Entrainement.Query().
		Order(ent.Asc(entrainement.FieldID)).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("badge stats: %w", err)
	}

	var timeSum float64
	for _, s := range sessions {
		rows, err := l.store.client.Observation.Query().
			Where(observation.EntrainementID(s.ID)).
			All(ctx)
		if err != nil {
			return stats, fmt.Errorf("badge stats: %w", err)
		}
		if len(rows) == 0 {
			continue
		}
		stats.totalSessions++
		perfect := true
		for _, r := range rows {
			stats.answered++
			timeSum += float64(r.TempsSeconds)
			if r.Etat != "VRAI" {
				perfect = false
			}
		}
		if perfect {
			stats.perfectSessions++
		}
	}
	if stats.answered > 0 {
		stats.avgTimeSec = timeSum / float64(stats.answered)
	}
	return stats, nil
}

// FetchMessages returns one page of chat messages in descending time
// order, strictly older than before when a cursor is given.
func (l *Local) FetchMessages(ctx context.Context, before *time.Time) ([]chat.Message, error) {
	q := l.store.client.Message.Query()
	if before != nil {
		q = q.Where(message.CreatedAtLT(*before))
	}
	rows, err := q.
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(chat.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", err)
	}

	out := make([]chat.Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, messageFromRow(r))
	}
	return out, nil
}

// SendMessage persists a message and fans it out to realtime
// subscribers, mirroring the push a remote backend would deliver.
func (l *Local) SendMessage(ctx context.Context, content string) (chat.Message, error) {
	row, err := l.store.client.Message.Create().
		SetID(uuid.NewString()).
		SetSenderID(localSenderID).
		SetSenderName(localSenderName).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return chat.Message{}, fmt.Errorf("send message: %w", err)
	}

	msg := messageFromRow(row)

	l.mu.Lock()
	handlers := make([]func(chat.Message), 0, len(l.subs))
	for _, h := range l.subs {
		handlers = append(handlers, h)
	}
	l.mu.Unlock()
	for _, h := range handlers {
		h(msg)
	}

	return msg, nil
}

// SubscribeMessages registers an in-process handler for message inserts.
func (l *Local) SubscribeMessages(handler func(chat.Message)) (func(), error) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = handler
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}, nil
}

// TotalScore sums the base score over every stored observation.
func (l *Local) TotalScore(ctx context.Context) (int, error) {
	rows, err := l.store.client.Observation.Query().
		Select(observation.FieldScore).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("total score: %w", err)
	}
	var sum float64
	for _, r := range rows {
		sum += r.Score
	}
	return int(sum), nil
}

// HasActiveEntitlement is always false locally; offline play relies on
// the trial window.
func (l *Local) HasActiveEntitlement(context.Context) (bool, error) {
	return false, nil
}

// TrialStartedAt returns the persisted trial start in epoch
// milliseconds, 0 when no trial has started.
func (l *Local) TrialStartedAt(ctx context.Context) (int64, error) {
	row, err := l.store.client.TrialState.Query().First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read trial state: %w", err)
	}
	return row.StartedAtMs, nil
}

// SetTrialStartedAt persists the trial start, replacing any prior row.
func (l *Local) SetTrialStartedAt(ctx context.Context, ms int64) error {
	row, err := l.store.client.TrialState.Query().First(ctx)
	if ent.IsNotFound(err) {
		_, err = l.store.client.TrialState.Create().
			SetStartedAtMs(ms).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("write trial state: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read trial state: %w", err)
	}
	if _, err := row.Update().SetStartedAtMs(ms).Save(ctx); err != nil {
		return fmt.Errorf("write trial state: %w", err)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }

func messageFromRow(r *ent.Message) chat.Message {
	return chat.Message{
		ID:          r.ID,
		SenderID:    r.SenderID,
		SenderName:  r.SenderName,
		DisplayName: r.DisplayName,
		AvatarURL:   r.AvatarURL,
		Content:     r.Content,
		CreatedAt:   r.CreatedAt,
	}
}
