package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"parola/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList is a vertical answer selector. Options are answer
// strings; grading happens outside, the component is told the correct
// answer when the choice is revealed.
type ChoiceList struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    string
	Correct   string
}

// NewChoiceList creates a selector over the given options.
func NewChoiceList(question string, options []string) ChoiceList {
	return ChoiceList{
		Question: question,
		Options:  options,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.Chosen = c.Options[c.Selected]
	}

	return c, nil
}

// Reveal marks the list as submitted and records the correct answer
// for the post-grade render.
func (c *ChoiceList) Reveal(correct string) {
	c.Correct = correct
}

// View renders the choice list.
func (c ChoiceList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		label := choiceLabels[i%len(choiceLabels)]
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if c.Submitted && c.Correct != "" {
			switch {
			case opt == c.Correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case opt == c.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
