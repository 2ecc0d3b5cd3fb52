package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/entitlement"
	"github.com/Tnecniv1/Calcul-Pixel/internal/router"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screen"
	"github.com/Tnecniv1/Calcul-Pixel/internal/screens/home"
	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
)

// Options carries the app's injected dependencies.
type Options struct {
	// Backend serves sessions, results, review, badges, chat, and
	// entitlements, remote or local.
	Backend backend.Client

	// TrialStore persists the free-trial start timestamp.
	TrialStore entitlement.TrialStore
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	gate := entitlement.NewGate(entitlement.NewTrial(opts.TrialStore), opts.Backend)
	homeScreen := home.New(opts.Backend, gate)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens mid-flow (quit confirmation, flush retry, volume
			// picker) consume esc themselves; plain stacked screens pop.
			if m.router.Depth() > 1 && !activeConsumesEsc(m.router.Active()) {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// EscConsumer is implemented by screens that need esc delivered to them
// instead of triggering the global back navigation.
type EscConsumer interface {
	ConsumesEsc() bool
}

func activeConsumesEsc(s screen.Screen) bool {
	c, ok := s.(EscConsumer)
	return ok && c.ConsumesEsc()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, 0, 0, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Naviguer"},
			{Key: "Enter", Description: "Choisir"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
