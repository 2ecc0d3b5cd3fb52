// Package review is the correction screen: the server-selected wrong
// items are listed with one answer slot each, verified in batched
// rounds until everything is correct.
package review

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
	"github.com/Tnecniv1/Calcul-Pixel/internal/review"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screen"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/components"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/theme"
)

// loadedMsg is sent when the correction set arrived.
type loadedMsg struct {
	Err error
}

// verifiedMsg is sent when a verification round returned.
type verifiedMsg struct {
	Outcome review.Outcome
	Err     error
}

// Screen drives one review session.
type Screen struct {
	session *review.Session

	mistakes []exercise.Mistake
	input    components.TextInput
	cursor   int
	outcome  review.Outcome
	resolved bool
	status   string
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the review screen for a finished session.
func New(client backend.Client, sessionID int, mistakes []exercise.Mistake) *Screen {
	return &Screen{
		session:  review.NewSession(client, sessionID),
		mistakes: mistakes,
		input:    components.NewTextInput("Réponse...", true, 12),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.input.Init())
}

func (s *Screen) Title() string {
	return "Correction"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.resolved {
		return []layout.KeyHint{{Key: "Esc", Description: "Retour"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Réponse suivante"},
		{Key: "Ctrl+S", Description: "Vérifier"},
		{Key: "↑↓", Description: "Naviguer"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if len(s.session.Items()) == 0 {
			// Nothing to correct; drop straight back.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.seedInput()
		return s, nil

	case verifiedMsg:
		return s.handleVerified(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editable() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) editable() bool {
	return s.errMsg == "" && !s.resolved && s.session.Phase() == review.PhaseInteracting
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.resolved {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.editable() {
		return s, nil
	}

	items := s.session.Items()

	switch key {
	case "up":
		s.storeAnswer()
		if s.cursor > 0 {
			s.cursor--
		}
		s.seedInput()
		return s, nil
	case "down":
		s.storeAnswer()
		if s.cursor < len(items)-1 {
			s.cursor++
		}
		s.seedInput()
		return s, nil
	case "enter":
		s.storeAnswer()
		if s.cursor < len(items)-1 {
			s.cursor++
			s.seedInput()
			return s, nil
		}
		return s, s.verify()
	case "ctrl+s":
		s.storeAnswer()
		return s, s.verify()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleVerified(msg verifiedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, review.ErrIncompleteAnswers) {
			s.status = "Toutes les réponses doivent être des nombres."
			return s, nil
		}
		s.status = "Vérification impossible : " + msg.Err.Error()
		return s, nil
	}

	s.outcome = msg.Outcome
	if msg.Outcome.Resolved {
		s.resolved = true
		if msg.Outcome.RecordWarning != nil {
			s.status = "Correction validée (tentative non enregistrée)."
		} else {
			s.status = fmt.Sprintf("Correction validée — tentative n°%d.", msg.Outcome.Attempt)
		}
		return s, nil
	}

	s.status = fmt.Sprintf("Encore %d erreur(s). Corrige les lignes marquées.", msg.Outcome.WrongCount)
	s.cursorToFirstWrong()
	s.seedInput()
	return s, nil
}

// storeAnswer writes the input buffer into the current item slot.
func (s *Screen) storeAnswer() {
	items := s.session.Items()
	if s.cursor < len(items) {
		s.session.SetAnswer(items[s.cursor].ID, s.input.Value())
	}
}

// seedInput refills the input with the current item's stored answer.
func (s *Screen) seedInput() {
	s.input = components.NewTextInput("Réponse...", true, 12)
	items := s.session.Items()
	if s.cursor < len(items) {
		s.input.Model.SetValue(items[s.cursor].Answer)
	}
}

func (s *Screen) cursorToFirstWrong() {
	for i, it := range s.session.Items() {
		if it.Wrong || (!it.Locked && it.Answer == "") {
			s.cursor = i
			return
		}
	}
}

func (s *Screen) load() tea.Cmd {
	session := s.session
	mistakes := s.mistakes
	return func() tea.Msg {
		return loadedMsg{Err: session.Load(context.Background(), mistakes)}
	}
}

func (s *Screen) verify() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		outcome, err := session.Submit(context.Background())
		return verifiedMsg{Outcome: outcome, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, theme.Incorrect.Render(s.errMsg))
	}
	if s.session.Phase() == review.PhaseLoading {
		return centered(width, theme.Hint.Render("Chargement des erreurs..."))
	}
	if s.session.Phase() == review.PhaseVerifying {
		return centered(width, theme.Hint.Render("Vérification..."))
	}
	if s.resolved {
		return centered(width, theme.Correct.Render("✓ Toutes les erreurs sont corrigées !")+
			"\n\n"+theme.Hint.Render(s.status))
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, it := range s.session.Items() {
		b.WriteString(s.renderItem(i, it, width))
		b.WriteString("\n")
	}
	if s.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.status))
	}
	return b.String()
}

func (s *Screen) renderItem(i int, it review.Item, width int) string {
	prompt := fmt.Sprintf("%s %s %s = ",
		trimFloat(it.OperandOne), exercise.Symbol(it.Operation), trimFloat(it.OperandTwo))

	var answer string
	switch {
	case it.Locked:
		answer = theme.Correct.Render(it.Answer + " ✓")
	case i == s.cursor:
		answer = s.input.View()
	case it.Answer != "":
		answer = theme.Body.Render(it.Answer)
	default:
		answer = theme.Hint.Render("…")
	}

	line := "  " + prompt + answer
	if it.Wrong {
		line += theme.Incorrect.Render("  ✗")
	}
	if !math.IsNaN(it.FirstAnswer) && !it.Locked {
		line += theme.Hint.Render(fmt.Sprintf("   (tu avais répondu %s)", trimFloat(it.FirstAnswer)))
	}

	if i == s.cursor && !it.Locked {
		return theme.Selected.Render("▸") + line[1:]
	}
	return line
}

func centered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + content)
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
