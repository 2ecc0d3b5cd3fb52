// Package training is the session screen: it drives the session runner
// through exercise prompts, answer feedback, and the final batch flush.
package training

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screen"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screens/results"
	"github.com/Tnecniv1/Calcul-Pixel/internal/training"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/components"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
)

// Screen runs one training session.
type Screen struct {
	client backend.Client
	runner *training.Runner
	volume int

	input        components.TextInput
	lastCorrect  bool
	showFeedback bool
	showQuit     bool
	flushing     bool
	flushFailed  bool
	elapsed      time.Duration
	startedAt    time.Time
	errMsg       string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the session screen for the requested exercise volume.
func New(client backend.Client, volume int) *Screen {
	return &Screen{
		client: client,
		runner: training.NewRunner(client),
		volume: volume,
		input:  components.NewTextInput("Ta réponse...", true, 12),
	}
}

func (s *Screen) Init() tea.Cmd {
	s.startedAt = time.Now()
	return tea.Batch(s.startSession(), s.input.Init(), tickCmd())
}

func (s *Screen) Title() string {
	return "Entraînement"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.flushFailed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Réessayer"},
			{Key: "Esc", Description: "Abandonner"},
		}
	}
	if s.showQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandonner"},
			{Key: "N", Description: "Continuer"},
		}
	}
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continuer"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Valider"},
		{Key: "Esc", Description: "Quitter"},
	}
}

// ConsumesEsc keeps esc inside the session: it opens the quit
// confirmation instead of popping mid-session.
func (s *Screen) ConsumesEsc() bool { return true }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.runner.ResetAnchor()
		return s, nil

	case answerMsg:
		return s.handleAnswer(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case flushDoneMsg:
		return s.handleFlushDone(msg)

	case timerTickMsg:
		s.elapsed = time.Since(s.startedAt)
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) inputActive() bool {
	return s.errMsg == "" && !s.showFeedback && !s.showQuit && !s.flushing &&
		s.runner.State() == training.StateReady
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.flushFailed {
		switch key {
		case "enter":
			s.flushFailed = false
			s.errMsg = ""
			s.flushing = true
			return s, s.flush()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuit = false
			s.runner.ResetAnchor()
		}
		return s, nil
	}

	if s.showFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if !s.inputActive() {
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuit = true
		return s, nil
	case "enter":
		raw := s.input.Value()
		if raw == "" {
			return s, nil
		}
		result, err := s.runner.Validate(raw)
		return s, func() tea.Msg { return answerMsg{Result: result, Err: err} }
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleAnswer(msg answerMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.lastCorrect = msg.Result.Correct
	s.showFeedback = true

	if msg.Result.Done {
		s.flushing = true
		return s, s.flush()
	}
	return s, nil
}

func (s *Screen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showFeedback = false
	if s.flushing {
		// The flush command is already in flight; keep the overlay away
		// and wait for flushDoneMsg.
		return s, nil
	}
	s.input = components.NewTextInput("Ta réponse...", true, 12)
	return s, s.input.Init()
}

func (s *Screen) handleFlushDone(msg flushDoneMsg) (screen.Screen, tea.Cmd) {
	s.flushing = false
	s.showFeedback = false

	if msg.Err != nil {
		// Buffer and nonce are retained by the runner; Enter retries the
		// same batch, the backend dedups on the nonce.
		s.flushFailed = true
		s.errMsg = "Envoi des résultats impossible : " + msg.Err.Error()
		return s, nil
	}

	summary := s.runner.Summary()
	client := s.client
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(client, summary),
		}
	}
}

// startSession creates the session and loads its exercises.
func (s *Screen) startSession() tea.Cmd {
	runner := s.runner
	volume := s.volume
	return func() tea.Msg {
		err := runner.Start(context.Background(), volume)
		return sessionReadyMsg{Err: err}
	}
}

// flush submits the buffered observations in one batch.
func (s *Screen) flush() tea.Cmd {
	runner := s.runner
	return func() tea.Msg {
		return flushDoneMsg{Err: runner.Flush(context.Background())}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
