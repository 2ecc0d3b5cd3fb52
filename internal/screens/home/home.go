// Package home is the landing screen: the pixel creature lit by the
// cumulative score, the session volume picker behind the entitlement
// gate, and entries to chat and the rest of the app.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/entitlement"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screen"
	chatscreen "github.com/Tnecniv1/Calcul-Pixel/internal/screens/chat"
	trainingscreen "github.com/Tnecniv1/Calcul-Pixel/internal/screens/training"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/components"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/theme"
)

// Session volumes offered by the picker.
var volumes = []int{10, 20, 30}

// scoreMsg carries the cumulative score for the pixel grid.
type scoreMsg struct {
	Score int
	Err   error
}

// gateMsg carries the entitlement-gate verdict for a requested volume.
type gateMsg struct {
	Volume  int
	Allowed bool
	Err     error
}

// HomeScreen is the landing menu.
type HomeScreen struct {
	client backend.Client
	gate   *entitlement.Gate

	menu       components.Menu
	picking    bool // volume picker visible
	pickCursor int
	checking   bool
	score      int
	status     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(client backend.Client, gate *entitlement.Gate) *HomeScreen {
	h := &HomeScreen{client: client, gate: gate}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "S'entraîner", Action: func() tea.Cmd {
			return func() tea.Msg { return openPickerMsg{} }
		}},
		{Label: "Chat mondial", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(client)}
			}
		}},
		{Label: "Quitter", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

// openPickerMsg switches the home screen into volume-picking mode.
type openPickerMsg struct{}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadScore()
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Volume"},
			{Key: "Enter", Description: "Démarrer"},
			{Key: "Esc", Description: "Annuler"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Enter", Description: "Choisir"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoreMsg:
		if msg.Err == nil {
			h.score = msg.Score
		}
		return h, nil

	case openPickerMsg:
		h.picking = true
		h.pickCursor = 0
		h.status = ""
		return h, nil

	case gateMsg:
		return h.handleGate(msg)

	case tea.KeyMsg:
		if h.picking {
			return h.handlePickerKey(msg)
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) handlePickerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.checking {
		return h, nil
	}
	switch msg.String() {
	case "up", "k":
		if h.pickCursor > 0 {
			h.pickCursor--
		}
	case "down", "j":
		if h.pickCursor < len(volumes)-1 {
			h.pickCursor++
		}
	case "esc":
		h.picking = false
	case "enter":
		h.checking = true
		return h, h.checkGate(volumes[h.pickCursor])
	}
	return h, nil
}

func (h *HomeScreen) handleGate(msg gateMsg) (screen.Screen, tea.Cmd) {
	h.checking = false
	if msg.Err != nil {
		h.status = "Vérification de l'abonnement impossible."
		return h, nil
	}
	if !msg.Allowed {
		h.status = "Essai gratuit terminé — un abonnement est nécessaire."
		return h, nil
	}

	h.picking = false
	client := h.client
	volume := msg.Volume
	return h, func() tea.Msg {
		return router.PushScreenMsg{Screen: trainingscreen.New(client, volume)}
	}
}

// loadScore fetches the cumulative score when the backend supports it.
func (h *HomeScreen) loadScore() tea.Cmd {
	sp, ok := h.client.(backend.ScoreProvider)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		score, err := sp.TotalScore(context.Background())
		return scoreMsg{Score: score, Err: err}
	}
}

// checkGate evaluates trial-or-subscription access for a session start.
func (h *HomeScreen) checkGate(volume int) tea.Cmd {
	gate := h.gate
	return func() tea.Msg {
		allowed, err := gate.Allowed(context.Background())
		return gateMsg{Volume: volume, Allowed: allowed, Err: err}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	grid := components.PixelGrid(h.score)
	caption := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(scoreCaption(h.score))

	var body string
	if h.picking {
		body = h.renderPicker(cw)
	} else {
		body = h.menu.View()
	}

	content := grid + "\n" + caption + "\n\n" + body
	if h.status != "" {
		content += "\n" + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(h.status)
	}
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) renderPicker(cw int) string {
	if h.checking {
		return theme.Hint.Render("Vérification de l'accès...")
	}

	var rows string
	for i, v := range volumes {
		rows += components.ArcadeButton(labelForVolume(v), i == h.pickCursor, cw) + "\n"
	}
	return theme.Body.Render("Combien de questions ?") + "\n\n" + rows
}

func labelForVolume(v int) string {
	switch v {
	case 10:
		return "10 questions — échauffement"
	case 20:
		return "20 questions — entraînement"
	default:
		return "30 questions — marathon"
	}
}

func scoreCaption(score int) string {
	total := components.PixelGridTotal
	if score > total {
		score = total
	}
	if score < 0 {
		score = 0
	}
	return fmt.Sprintf("%d / %d pixels allumés", score, total)
}
