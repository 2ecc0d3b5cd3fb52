// Package screen declares the contract every view in the app satisfies.
// The router owns a stack of these; the app shell draws the header and
// footer chrome around whichever one is on top.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Tnecniv1/Calcul-Pixel/internal/ui/layout"
)

// Screen is one full-window view.
type Screen interface {
	// Init returns the command to run when the screen enters the stack.
	Init() tea.Cmd

	// Update handles one message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body; the header and footer are drawn around it.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer
// instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
