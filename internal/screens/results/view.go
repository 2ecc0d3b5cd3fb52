package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
	"github.com/Tnecniv1/Calcul-Pixel/internal/results"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/components"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.loading {
		return centered(width, theme.Hint.Render("Chargement des résultats..."))
	}
	if s.noData || !s.report.HasRows {
		return s.renderNoData(width)
	}
	return s.renderReport(width)
}

func (s *Screen) renderNoData(width int) string {
	score := s.report.EffectiveScore(s.summary.Score)
	body := theme.Body.Render(fmt.Sprintf("Score : %d / %d", score, s.summary.Total)) +
		"\n\n" + theme.Hint.Render("Données de session indisponibles pour le moment.")
	return centered(width, body)
}

func (s *Screen) renderReport(width int) string {
	var b strings.Builder

	score := s.report.EffectiveScore(s.summary.Score)
	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Session terminée — %d points", score))
	b.WriteString("\n" + title + "\n\n")

	bd := s.report.Breakdown
	breakdown := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Base %+d   Vitesse %+d   Précision %+d   Total %+d",
			bd.Base, bd.Vitesse, bd.Precision, bd.Total))
	b.WriteString(breakdown + "\n\n")

	cw := components.ContentWidth(width)
	for _, op := range []exercise.Operation{exercise.Addition, exercise.Soustraction, exercise.Multiplication} {
		b.WriteString(renderOpCard(s.report.Metrics, op, cw, width))
		b.WriteString("\n")
	}

	if len(s.badges.NewlyUnlocked) > 0 {
		var names []string
		for _, bd := range s.badges.NewlyUnlocked {
			names = append(names, bd.Emoji+" "+bd.Name)
		}
		banner := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Nouveau badge : " + strings.Join(names, "  "))
		b.WriteString("\n" + banner + "\n")
	}

	if s.offerReview() {
		offer := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Appuie sur C pour corriger tes erreurs")
		b.WriteString("\n" + offer)
	}

	return b.String()
}

func renderOpCard(m results.Metrics, op exercise.Operation, cw, width int) string {
	om := m.ByOperation(op)

	label := fmt.Sprintf("%s %s", exercise.Symbol(string(op)), op)
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label)

	stats := lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Réussite %d%%   Temps moyen %.1fs   Marge %.1f%%   (%d)",
			om.SuccessRate, om.AvgTimeSec, om.ErrorMargin, om.Count))

	bar := components.NewProgressBar("", om.BarTime, false, cw-4).View()

	card := components.ArcadeCard(header+"\n"+stats+"\n"+bar, cw)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
}

func centered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + content)
}
