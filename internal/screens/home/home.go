package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"parola/internal/audio"
	"parola/internal/lessons"
	"parola/internal/progress"
	"parola/internal/router"
	"parola/internal/screen"
	"parola/internal/screens/drill"
	"parola/internal/ui/layout"
	"parola/internal/ui/theme"
)

// HomeScreen lists the course lessons and overall stats.
type HomeScreen struct {
	progress *progress.Repository
	speaker  audio.Speaker
	rng      *rand.Rand

	lessons  []lessons.Lesson
	selected int
	offset   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the full course catalog.
func New(repo *progress.Repository, speaker audio.Speaker, rng *rand.Rand) *HomeScreen {
	return &HomeScreen{
		progress: repo,
		speaker:  speaker,
		rng:      rng,
		lessons:  lessons.All(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose a Lesson"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.lessons)-1 {
			h.selected++
		}
	case "enter":
		lesson := h.lessons[h.selected]
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: drill.New(lesson, h.progress, h.speaker, h.rng),
			}
		}
	}

	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	stats := h.progress.GetStats()
	statsLine := fmt.Sprintf(
		"Level %d   ✦ %d XP   %d/%d lessons   %d%% accuracy",
		stats.Level, stats.XP, stats.LessonsCompleted, len(h.lessons), stats.OverallAccuracy,
	)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(statsLine))
	b.WriteString("\n\n")

	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	if h.selected < h.offset {
		h.offset = h.selected
	}
	if h.selected >= h.offset+visible {
		h.offset = h.selected - visible + 1
	}

	end := h.offset + visible
	if end > len(h.lessons) {
		end = len(h.lessons)
	}

	for i := h.offset; i < end; i++ {
		lesson := h.lessons[i]
		b.WriteString(h.renderRow(lesson, i == h.selected, width))
		b.WriteByte('\n')
	}

	return b.String()
}

func (h *HomeScreen) renderRow(lesson lessons.Lesson, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	mark := "  "
	detail := ""
	if rec, ok := h.progress.LessonStats(lesson.ID); ok {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
		detail = fmt.Sprintf("  %d%%", rec.Accuracy)
	}

	tag := ""
	if lesson.IsConversation() {
		tag = lipgloss.NewStyle().Foreground(theme.Secondary).Render("  [conversation]")
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Render(lesson.Title)
	if selected {
		title = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(lesson.Title)
	}

	return prefix + mark + title + tag +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
}
