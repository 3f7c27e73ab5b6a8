package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"parola/internal/quiz"
	"parola/internal/session"
	"parola/internal/ui/components"
	"parola/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	st := d.engine.State()
	q := st.Current
	if q == nil {
		return ""
	}

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", min(st.Index+1, st.Total), st.Total),
		float64(d.engine.ProgressPercent())/100,
		true,
		width-8,
	)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")

	if q.Retry {
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("↻ Let's try this one again"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(d.questionView(q, width))

	if st.Phase == session.PhaseEvaluated {
		b.WriteString("\n\n")
		b.WriteString(d.feedbackView(st, q, width))
	}

	return b.String()
}

func (d *DrillScreen) questionView(q *quiz.Question, width int) string {
	card := theme.Card.Width(width - 8)

	switch q.Mode {
	case quiz.ModeMultipleChoice:
		return card.Render(d.choices.View())

	case quiz.ModeFillBlank:
		return card.Render(d.bank.View())

	case quiz.ModeMatchPairs:
		head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)
		return card.Render(head + "\n\n" + d.grid.View())

	case quiz.ModeTyping, quiz.ModeTranslate:
		head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)
		return card.Render(head + "\n\n" + d.input.View())

	case quiz.ModeConversation:
		speaker := theme.Italian.Render(q.Line.Speaker + ":")
		if !q.LearnerTurn {
			line := speaker + " " + theme.Body.Render(q.Line.Italian) + "\n" +
				theme.Hint.Render("   "+q.Line.English) + "\n\n" +
				theme.Hint.Render("press enter to continue")
			return card.Render(line)
		}
		return card.Render(d.choices.View())
	}

	return ""
}

func (d *DrillScreen) feedbackView(st session.State, q *quiz.Question, width int) string {
	style := theme.Correct
	text := st.Feedback
	if !st.LastCorrect {
		style = theme.Incorrect
		text = st.Feedback + "   The answer was: " + q.Answer
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(text))
}
