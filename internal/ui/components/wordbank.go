package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"parola/internal/ui/theme"
)

// WordBank is a horizontal row of word chips for fill-in-the-blank
// questions: left/right moves between chips, enter picks one.
type WordBank struct {
	Prompt    string
	Chips     []string
	Selected  int
	Submitted bool
	Chosen    string
	Correct   string
}

// NewWordBank creates a word bank over the given chips.
func NewWordBank(prompt string, chips []string) WordBank {
	return WordBank{
		Prompt: prompt,
		Chips:  chips,
	}
}

// Init returns nil.
func (w WordBank) Init() tea.Cmd {
	return nil
}

// Update handles chip navigation and selection.
func (w WordBank) Update(msg tea.Msg) (WordBank, tea.Cmd) {
	if w.Submitted {
		return w, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if w.Selected > 0 {
			w.Selected--
		}
	case "right", "l":
		if w.Selected < len(w.Chips)-1 {
			w.Selected++
		}
	case "enter", "space":
		w.Submitted = true
		w.Chosen = w.Chips[w.Selected]
	}

	return w, nil
}

// Reveal records the correct answer for the post-grade render.
func (w *WordBank) Reveal(correct string) {
	w.Correct = correct
}

// View renders the prompt with the blank filled by the selected chip,
// then the chip row.
func (w WordBank) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Prompt) + "\n\n"

	chips := make([]string, 0, len(w.Chips))
	for i, chip := range w.Chips {
		var style lipgloss.Style
		switch {
		case w.Submitted && w.Correct != "" && chip == w.Correct:
			style = theme.TileActive.Background(theme.Success)
		case w.Submitted && w.Correct != "" && chip == w.Chosen:
			style = theme.TileActive.Background(theme.Error)
		case !w.Submitted && i == w.Selected:
			style = theme.TileActive
		default:
			style = theme.TileInactive
		}
		chips = append(chips, style.Render(chip))
	}

	s += lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(chips)...)
	return s
}

// joinWithGap interleaves a one-space gap between rendered chips.
func joinWithGap(chips []string) []string {
	out := make([]string, 0, len(chips)*2)
	for i, c := range chips {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}
