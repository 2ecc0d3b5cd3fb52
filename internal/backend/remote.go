package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/internal/chat"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// RemoteConfig configures the remote backend client.
type RemoteConfig struct {
	// BaseURL is the API root, e.g. https://api.pixel.example.
	BaseURL string

	// WSURL is the realtime websocket endpoint. Empty disables realtime.
	WSURL string

	// Token is the bearer token of the signed-in user. Empty means
	// unauthenticated; session creation fails with ErrNotAuthenticated.
	Token string

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// Remote is the HTTP/websocket implementation of the backend contracts.
type Remote struct {
	base   string
	wsURL  string
	token  string
	client *http.Client
}

var _ Client = (*Remote)(nil)

// NewRemote creates a remote backend client.
func NewRemote(cfg RemoteConfig) *Remote {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Remote{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		wsURL:  cfg.WSURL,
		token:  cfg.Token,
		client: hc,
	}
}

// Authenticated reports whether a user token is configured.
func (r *Remote) Authenticated() bool {
	return r.token != ""
}

func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.base+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: HTTP %d %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// CreateSession opens a mixed training session.
func (r *Remote) CreateSession(ctx context.Context, volume int) (int, error) {
	if !r.Authenticated() {
		return 0, ErrNotAuthenticated
	}
	var out struct {
		EntrainementID int `json:"entrainement_id"`
	}
	err := r.do(ctx, http.MethodPost, "/entrainements/mixte", map[string]int{"volume": volume}, &out)
	if err != nil {
		return 0, err
	}
	return out.EntrainementID, nil
}

type exerciseRow struct {
	Type       string   `json:"Type"`
	OperandOne float64  `json:"Operateur_Un"`
	OperandTwo float64  `json:"Operateur_Deux"`
	Solution   *float64 `json:"Solution"`
	ParcoursID int      `json:"Parcours_Id"`
}

// GenerateExercises fetches a generated exercise list sized to volume.
// Rows with an unrecognized operation label are dropped.
func (r *Remote) GenerateExercises(ctx context.Context, volume int) ([]exercise.Exercise, error) {
	var out struct {
		Exercices []exerciseRow `json:"exercices"`
	}
	path := fmt.Sprintf("/exercices/mixte?volume=%d", volume)
	if err := r.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	exos := make([]exercise.Exercise, 0, len(out.Exercices))
	for _, row := range out.Exercices {
		op, ok := exercise.ParseOperation(row.Type)
		if !ok {
			continue
		}
		exos = append(exos, exercise.Exercise{
			Operation:  op,
			OperandOne: row.OperandOne,
			OperandTwo: row.OperandTwo,
			Solution:   row.Solution,
			ParcoursID: row.ParcoursID,
		})
	}
	return exos, nil
}

type observationIn struct {
	EntrainementID int     `json:"Entrainement_Id"`
	ParcoursID     int     `json:"Parcours_Id"`
	OperandOne     float64 `json:"Operateur_Un"`
	OperandTwo     float64 `json:"Operateur_Deux"`
	Operation      string  `json:"Operation"`
	Proposition    float64 `json:"Proposition"`
	TempsSeconds   int     `json:"Temps_Seconds"`
	Correction     string  `json:"Correction"`
}

// SubmitObservations flushes a session buffer in one batched call.
func (r *Remote) SubmitObservations(ctx context.Context, nonce string, obs []exercise.Observation) error {
	rows := make([]observationIn, 0, len(obs))
	for _, o := range obs {
		rows = append(rows, observationIn{
			EntrainementID: o.EntrainementID,
			ParcoursID:     o.ParcoursID,
			OperandOne:     o.OperandOne,
			OperandTwo:     o.OperandTwo,
			Operation:      string(o.Operation),
			Proposition:    o.Proposition,
			TempsSeconds:   o.TempsSeconds,
			Correction:     o.Correction,
		})
	}
	body := struct {
		BatchID      string          `json:"batch_id"`
		Observations []observationIn `json:"observations"`
	}{BatchID: nonce, Observations: rows}

	return r.do(ctx, http.MethodPost, "/observations/batch", body, nil)
}

// FetchObservations reads the authoritative rows for a session.
func (r *Remote) FetchObservations(ctx context.Context, sessionID int) ([]ObservationRow, error) {
	var out []ObservationRow
	path := fmt.Sprintf("/observations?entrainement_id=%d", sessionID)
	if err := r.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewItems fetches the bounded correction set for a session.
func (r *Remote) ReviewItems(ctx context.Context, sessionID int) ([]ReviewItem, error) {
	var out struct {
		Items []ReviewItem `json:"items"`
	}
	path := fmt.Sprintf("/revisions/derniere?entrainement_id=%d", sessionID)
	if err := r.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// VerifyReview submits the full answer set for verification.
func (r *Remote) VerifyReview(ctx context.Context, sessionID int, tries []ReviewTry) (VerifyResult, error) {
	body := struct {
		EntrainementID int         `json:"entrainement_id"`
		Essais         []ReviewTry `json:"essais"`
	}{EntrainementID: sessionID, Essais: tries}

	var out VerifyResult
	if err := r.do(ctx, http.MethodPost, "/revisions/verifier", body, &out); err != nil {
		return VerifyResult{}, err
	}
	return out, nil
}

// RecordCorrection increments the session's correction attempt counter.
func (r *Remote) RecordCorrection(ctx context.Context, sessionID int) (int, error) {
	var out struct {
		Attempt   int `json:"attempt"`
		Tentative int `json:"Tentative"`
	}
	body := map[string]int{"entrainement_id": sessionID}
	if err := r.do(ctx, http.MethodPost, "/revisions/corriger", body, &out); err != nil {
		return 0, err
	}
	if out.Attempt > 0 {
		return out.Attempt, nil
	}
	if out.Tentative > 0 {
		return out.Tentative, nil
	}
	return 1, nil
}

// CheckAndUnlockBadges runs the delegated badge-unlock evaluation.
func (r *Remote) CheckAndUnlockBadges(ctx context.Context) (BadgeCheckResult, error) {
	var out BadgeCheckResult
	if err := r.do(ctx, http.MethodPost, "/badges/verifier", nil, &out); err != nil {
		return BadgeCheckResult{}, err
	}
	return out, nil
}

// FetchMessages returns one page of chat history, newest first, strictly
// older than before when a cursor is given.
func (r *Remote) FetchMessages(ctx context.Context, before *time.Time) ([]chat.Message, error) {
	path := fmt.Sprintf("/chat/messages?limit=%d", chat.PageSize)
	if before != nil {
		path += "&before=" + url.QueryEscape(before.UTC().Format(time.RFC3339Nano))
	}
	var out []chat.Message
	if err := r.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage stores a message and returns the persisted row.
func (r *Remote) SendMessage(ctx context.Context, content string) (chat.Message, error) {
	if !r.Authenticated() {
		return chat.Message{}, ErrNotAuthenticated
	}
	var out chat.Message
	body := map[string]string{"content": content}
	if err := r.do(ctx, http.MethodPost, "/chat/messages", body, &out); err != nil {
		return chat.Message{}, err
	}
	return out, nil
}

// TotalScore returns the user's cumulative score over all sessions.
func (r *Remote) TotalScore(ctx context.Context) (int, error) {
	var out struct {
		Total int `json:"total"`
	}
	if err := r.do(ctx, http.MethodGet, "/observations/score", nil, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

// HasActiveEntitlement asks the subscription service whether the user
// holds an active entitlement.
func (r *Remote) HasActiveEntitlement(ctx context.Context) (bool, error) {
	if !r.Authenticated() {
		return false, nil
	}
	var out struct {
		Active bool `json:"active"`
	}
	if err := r.do(ctx, http.MethodGet, "/abonnements/actif", nil, &out); err != nil {
		return false, err
	}
	return out.Active, nil
}
