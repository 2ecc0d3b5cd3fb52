package training

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/training"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.showQuit {
		return renderQuitConfirm(width)
	}
	if s.runner.State() == training.StateLoading {
		return renderCentered(width, theme.Hint.Render("Préparation de la session..."))
	}
	if s.flushing {
		return renderCentered(width, theme.Hint.Render("Envoi des résultats..."))
	}
	if s.showFeedback {
		return s.renderFeedback(width)
	}
	return s.renderExercise(width)
}

func (s *Screen) renderExercise(width int) string {
	exo, ok := s.runner.Current()
	if !ok {
		return renderCentered(width, theme.Hint.Render("Plus d'exercices."))
	}

	var b strings.Builder

	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.runner.Index()+1, len(s.runner.Exercises())))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  ⏱ %d:%02d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.runner.Score(), mins, secs,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(exo.Text() + " = ?")
	b.WriteString(question)
	b.WriteString("\n\n")

	answer := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Réponse : " + s.input.View())
	b.WriteString(answer)

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	var line string
	if s.lastCorrect {
		line = theme.Correct.Render("✓ Bonne réponse !")
	} else {
		line = theme.Incorrect.Render("✗ Mauvaise réponse")
	}
	return renderCentered(width, line+"\n\n"+theme.Hint.Render("Appuie sur une touche pour continuer"))
}

func (s *Screen) renderError(width int) string {
	body := theme.Incorrect.Render(s.errMsg)
	if s.flushFailed {
		body += "\n\n" + theme.Hint.Render("Enter pour réessayer, Esc pour abandonner")
	} else {
		body += "\n\n" + theme.Hint.Render("Appuie sur une touche pour revenir")
	}
	return renderCentered(width, body)
}

func renderQuitConfirm(width int) string {
	return renderCentered(width,
		theme.Body.Render("Abandonner la session ?")+
			"\n\n"+theme.Hint.Render("Y pour abandonner, N pour continuer"))
}

func renderCentered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + content)
}
