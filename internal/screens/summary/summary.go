package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"parola/internal/router"
	"parola/internal/screen"
	"parola/internal/session"
	"parola/internal/ui/layout"
	"parola/internal/ui/theme"
)

// SummaryScreen displays the completed session's results.
type SummaryScreen struct {
	completion *session.Completion
}

var _ screen.Screen = (*SummaryScreen)(nil)

// New creates a summary screen.
func New(completion *session.Completion) *SummaryScreen {
	return &SummaryScreen{completion: completion}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	c := s.completion
	if c == nil {
		return ""
	}

	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Lezione completata! 🎉"))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Score       %d / %d", c.Score, c.Total),
		fmt.Sprintf("Accuracy    %d%%", c.Accuracy),
		fmt.Sprintf("XP earned   +%d", c.XPEarned),
	}
	if c.Retried > 0 {
		rows = append(rows, fmt.Sprintf("Retried     %d", c.Retried))
	}
	if c.Persisted {
		rows = append(rows, fmt.Sprintf("Level       %d", c.Level))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	b.WriteString(center.Render(card))
	b.WriteString("\n\n")

	msg := "Ben fatto! Keep the streak going."
	if c.Accuracy < 50 {
		msg = "Tough one. Give it another go!"
	}
	b.WriteString(center.Foreground(theme.TextDim).Render(msg))

	return b.String()
}
