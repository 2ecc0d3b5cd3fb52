// Package results shows the reconciled session report: per-operation
// metrics, the score breakdown, newly unlocked badges, and the offer to
// correct mistakes.
package results

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/results"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screen"
	reviewscreen "github.com/Tnecniv1/Calcul-Pixel/internal/screens/review"
	"github.com/Tnecniv1/Calcul-Pixel/internal/training"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
)

// reportMsg is sent when the reconciler finished loading the rows.
type reportMsg struct {
	Report results.Report
	Err    error
}

// badgesMsg is sent when the delegated badge check returns.
type badgesMsg struct {
	Result backend.BadgeCheckResult
	Err    error
}

// Screen presents one finished session.
type Screen struct {
	client  backend.Client
	summary training.Summary

	loading bool
	report  results.Report
	noData  bool
	badges  backend.BadgeCheckResult
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the result screen from the runner's handoff summary.
func New(client backend.Client, summary training.Summary) *Screen {
	return &Screen{
		client:  client,
		summary: summary,
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.loadReport()
}

func (s *Screen) Title() string {
	return "Résultats"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Accueil"},
	}
	if s.offerReview() {
		hints = append([]layout.KeyHint{{Key: "C", Description: "Corriger mes erreurs"}}, hints...)
	}
	return hints
}

// offerReview reports whether a correction round is worth proposing.
func (s *Screen) offerReview() bool {
	if s.loading {
		return false
	}
	return s.report.MistakeCount > 0 || len(s.summary.Mistakes) > 0
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		s.loading = false
		if msg.Err != nil {
			s.noData = true
			return s, nil
		}
		s.report = msg.Report
		// Badge evaluation only runs once the metrics are durable and
		// loaded; the unlock check reads the freshly flushed rows.
		return s, s.checkBadges()

	case badgesMsg:
		// Badge evaluation is best effort; a failure just hides the banner.
		if msg.Err == nil {
			s.badges = msg.Result
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c", "C":
			if s.offerReview() {
				client := s.client
				sessionID := s.summary.SessionID
				mistakes := s.summary.Mistakes
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: reviewscreen.New(client, sessionID, mistakes),
					}
				}
			}
		}
	}
	return s, nil
}

// loadReport runs the reconciler, including its bounded empty-retry.
func (s *Screen) loadReport() tea.Cmd {
	client := s.client
	sessionID := s.summary.SessionID
	return func() tea.Msg {
		report, err := results.NewReconciler(client).Load(context.Background(), sessionID)
		return reportMsg{Report: report, Err: err}
	}
}

// checkBadges runs the delegated badge-unlock evaluation.
func (s *Screen) checkBadges() tea.Cmd {
	client := s.client
	return func() tea.Msg {
		res, err := client.CheckAndUnlockBadges(context.Background())
		return badgesMsg{Result: res, Err: err}
	}
}
