package screen

import (
	tea "charm.land/bubbletea/v2"

	"parola/internal/ui/layout"
)

// Screen is one full-frame view: the lesson list, a running drill, or
// a session summary. The router owns a stack of these and the app
// model wraps the active one in the shared header/footer frame.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// KeyHints returns the key bindings shown in the footer.
	KeyHints() []layout.KeyHint
}
