// Package backend defines the contracts the client consumes from the
// Pixel backend: session/exercise RPCs, authoritative observation rows,
// review verification, badge evaluation, chat, and entitlements.
//
// Two implementations exist: the remote HTTP/websocket client in this
// package, and the local ent+SQLite backend in internal/store used for
// offline play and tests.
package backend

import (
	"context"
	"errors"
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// ErrNotAuthenticated is returned when an operation requires a signed-in
// user and none is available.
var ErrNotAuthenticated = errors.New("not authenticated")

// Trainer covers the session-runner RPCs.
type Trainer interface {
	// CreateSession opens a new training session sized to volume and
	// returns its server-assigned identifier.
	CreateSession(ctx context.Context, volume int) (int, error)

	// GenerateExercises returns a generated exercise list for the session.
	GenerateExercises(ctx context.Context, volume int) ([]exercise.Exercise, error)

	// SubmitObservations flushes a full session buffer in one call.
	// The nonce is a client-generated batch identifier the backend
	// deduplicates on, so a retry after a lost response cannot
	// double-submit rows.
	SubmitObservations(ctx context.Context, nonce string, obs []exercise.Observation) error
}

// ObservationRow is the authoritative per-attempt row as stored by the
// backend. The remote schema is loosely typed, so scalar fields that can
// be absent arrive as pointers.
type ObservationRow struct {
	Operation    string   `json:"Operation"`
	Etat         string   `json:"Etat"`
	Proposition  *float64 `json:"Proposition"`
	Solution     *float64 `json:"Solution"`
	TempsSeconds *float64 `json:"Temps_Seconds"`
	MargeErreur  *float64 `json:"Marge_Erreur"`
	Score        *float64 `json:"Score"`
	BonusVitesse *float64 `json:"bonus_vitesse"`
	BonusMarge   *float64 `json:"bonus_marge"`
	ScoreGlobal  *float64 `json:"score_global"`
}

// Results covers the result-reconciler query.
type Results interface {
	// FetchObservations returns every observation row for a session.
	// The write path is eventually consistent; callers retry once on an
	// empty result.
	FetchObservations(ctx context.Context, sessionID int) ([]ObservationRow, error)
}

// ReviewItem is one incorrect attempt the server selected for correction.
type ReviewItem struct {
	ID         int      `json:"id"`
	Operation  string   `json:"Operation"`
	OperandOne float64  `json:"Operateur_Un"`
	OperandTwo float64  `json:"Operateur_Deux"`
	Solution   *float64 `json:"Solution"`
}

// ReviewTry pairs a review item with the user's resubmitted answer.
type ReviewTry struct {
	ID      int     `json:"id"`
	Reponse float64 `json:"reponse"`
}

// VerifyResult is the verification response. The server populates one of
// the three id shapes; Incorrect and Missing are counts that may be
// nonzero even when no ids were returned.
type VerifyResult struct {
	WrongIDs        []int `json:"wrong_ids"`
	IncorrectSample []struct {
		ID int `json:"id"`
	} `json:"incorrect_sample"`
	MissingIDs []int `json:"missing_ids"`
	Incorrect  int   `json:"incorrect"`
	Missing    int   `json:"missing"`
}

// ResolveWrongIDs extracts the wrong item ids from whichever response
// shape is populated, most specific first. When the counts say errors
// exist but no ids were returned, it returns nil and a true fallback
// flag; callers must then treat every item as wrong.
func (v VerifyResult) ResolveWrongIDs() (ids []int, markAll bool) {
	if len(v.WrongIDs) > 0 {
		return v.WrongIDs, false
	}
	if len(v.IncorrectSample) > 0 {
		ids = make([]int, 0, len(v.IncorrectSample))
		for _, s := range v.IncorrectSample {
			ids = append(ids, s.ID)
		}
		return ids, false
	}
	if len(v.MissingIDs) > 0 {
		return v.MissingIDs, false
	}
	if v.Incorrect > 0 || v.Missing > 0 {
		return nil, true
	}
	return nil, false
}

// Reviewer covers the mistake-correction RPCs.
type Reviewer interface {
	// ReviewItems returns the bounded set of items needing correction
	// for a session.
	ReviewItems(ctx context.Context, sessionID int) ([]ReviewItem, error)

	// VerifyReview submits the full answer set and reports which items
	// are still wrong.
	VerifyReview(ctx context.Context, sessionID int, tries []ReviewTry) (VerifyResult, error)

	// RecordCorrection increments the per-session correction attempt
	// counter and returns the new attempt number.
	RecordCorrection(ctx context.Context, sessionID int) (int, error)
}

// BadgeDefinition describes one unlockable badge.
type BadgeDefinition struct {
	BadgeID     string `json:"badge_id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Threshold   int    `json:"threshold"`
}

// BadgeCheckResult reports badges newly unlocked by the latest session.
type BadgeCheckResult struct {
	NewlyUnlocked []BadgeDefinition `json:"newly_unlocked"`
	TotalUnlocked int               `json:"total_unlocked"`
}

// Badges covers delegated badge-unlock evaluation.
type Badges interface {
	CheckAndUnlockBadges(ctx context.Context) (BadgeCheckResult, error)
}

// Chat covers message history, sending, and the realtime push stream.
type Chat interface {
	// FetchMessages returns up to one page of messages strictly older
	// than before (nil for the newest page), in descending time order.
	FetchMessages(ctx context.Context, before *time.Time) ([]chat.Message, error)

	// SendMessage stores a message and returns the persisted row for the
	// optimistic local echo.
	SendMessage(ctx context.Context, content string) (chat.Message, error)

	// SubscribeMessages registers a handler for pushed inserts and
	// returns an unsubscribe func. The handler runs until unsubscribed.
	SubscribeMessages(handler func(chat.Message)) (func(), error)
}

// ScoreProvider is an optional capability: the cumulative score across
// all sessions, used by the home-screen pixel grid. Callers type-assert
// and fall back to 0 when the backend does not provide it.
type ScoreProvider interface {
	TotalScore(ctx context.Context) (int, error)
}

// Entitlements is the remote half of the session gate.
type Entitlements interface {
	HasActiveEntitlement(ctx context.Context) (bool, error)
}

// Client is the full collaborator surface.
type Client interface {
	Trainer
	Results
	Reviewer
	Badges
	Chat
	Entitlements
}
