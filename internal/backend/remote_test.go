package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

func remoteFor(t *testing.T, handler http.HandlerFunc) *Remote {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRemote(RemoteConfig{BaseURL: server.URL, Token: "tok"})
}

func TestRemote_CreateSession(t *testing.T) {
	r := remoteFor(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/entrainements/mixte" || req.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", req.Method, req.URL.Path)
		}
		if got := req.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]int{"entrainement_id": 57})
	})

	id, err := r.CreateSession(context.Background(), 10)
	if err != nil || id != 57 {
		t.Fatalf("CreateSession = %d, %v", id, err)
	}
}

func TestRemote_CreateSessionUnauthenticated(t *testing.T) {
	r := NewRemote(RemoteConfig{BaseURL: "http://unused.invalid"})
	if _, err := r.CreateSession(context.Background(), 10); err != ErrNotAuthenticated {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestRemote_GenerateExercisesDropsUnknownOps(t *testing.T) {
	r := remoteFor(t, func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"exercices": []map[string]any{
				{"Type": "Addition", "Operateur_Un": 2, "Operateur_Deux": 3, "Parcours_Id": 1},
				{"Type": "Division", "Operateur_Un": 8, "Operateur_Deux": 2, "Parcours_Id": 1},
				{"Type": "mult", "Operateur_Un": 4, "Operateur_Deux": 4, "Parcours_Id": 1, "Solution": 16},
			},
		})
	})

	exos, err := r.GenerateExercises(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(exos) != 2 {
		t.Fatalf("len = %d, want unknown operation dropped", len(exos))
	}
	if exos[1].Operation != exercise.Multiplication || exos[1].Expected() != 16 {
		t.Errorf("exercise = %+v", exos[1])
	}
}

func TestRemote_SubmitObservationsSendsNonce(t *testing.T) {
	var got struct {
		BatchID      string `json:"batch_id"`
		Observations []struct {
			Operation  string `json:"Operation"`
			Correction string `json:"Correction"`
		} `json:"observations"`
	}
	r := remoteFor(t, func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	})

	obs := []exercise.Observation{
		{Operation: exercise.Addition, Correction: exercise.CorrectionNone},
		{Operation: exercise.Soustraction, Correction: exercise.CorrectionNone},
	}
	if err := r.SubmitObservations(context.Background(), "nonce-1", obs); err != nil {
		t.Fatal(err)
	}
	if got.BatchID != "nonce-1" || len(got.Observations) != 2 {
		t.Errorf("body = %+v", got)
	}
	if got.Observations[0].Correction != "NON" {
		t.Errorf("Correction = %q", got.Observations[0].Correction)
	}
}

func TestRemote_HTTPErrorSurfasedWithStatus(t *testing.T) {
	r := remoteFor(t, func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := r.FetchObservations(context.Background(), 3)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRemote_FetchMessagesCursor(t *testing.T) {
	var gotBefore string
	r := remoteFor(t, func(w http.ResponseWriter, req *http.Request) {
		gotBefore = req.URL.Query().Get("before")
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	cursor := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if _, err := r.FetchMessages(context.Background(), &cursor); err != nil {
		t.Fatal(err)
	}
	if gotBefore == "" {
		t.Error("before cursor not sent")
	}
	if parsed, err := time.Parse(time.RFC3339Nano, gotBefore); err != nil || !parsed.Equal(cursor) {
		t.Errorf("before = %q", gotBefore)
	}
}

func TestRemote_RecordCorrectionAcceptsBothShapes(t *testing.T) {
	r := remoteFor(t, func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"Tentative": 3})
	})
	n, err := r.RecordCorrection(context.Background(), 4)
	if err != nil || n != 3 {
		t.Fatalf("RecordCorrection = %d, %v", n, err)
	}
}
