// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"parola/internal/audio"
	"parola/internal/lessons"
	"parola/internal/progress"
	"parola/internal/router"
	"parola/internal/screens/drill"
	"parola/internal/screens/home"
	"parola/internal/ui/layout"
)

// Options configure the program.
type Options struct {
	Progress *progress.Repository
	Speaker  audio.Speaker

	// LessonID, when set, jumps straight into that lesson instead of
	// the home list.
	LessonID string

	// Seed fixes the question generator's randomness; zero means
	// time-seeded.
	Seed int64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Repository
	initCmd  tea.Cmd
	width    int
	height   int
}

func newAppModel(opts Options) AppModel {
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	homeScreen := home.New(opts.Progress, opts.Speaker, rng)
	r := router.New(homeScreen)

	initCmd := homeScreen.Init()
	if opts.LessonID != "" {
		lesson := lessons.Resolve(opts.LessonID)
		initCmd = r.Push(drill.New(lesson, opts.Progress, opts.Speaker, rng))
	}

	return AppModel{
		router:   r,
		progress: opts.Progress,
		initCmd:  initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
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
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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

	header := layout.RenderHeader(title, m.progress.Level(), m.progress.XP(), m.width)

	var footerHints []layout.KeyHint
	if active != nil {
		footerHints = active.KeyHints()
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
