package drill

import (
	"math/rand"

	tea "charm.land/bubbletea/v2"

	"parola/internal/audio"
	"parola/internal/lessons"
	"parola/internal/progress"
	"parola/internal/quiz"
	"parola/internal/router"
	"parola/internal/screen"
	"parola/internal/screens/summary"
	"parola/internal/session"
	"parola/internal/ui/components"
	"parola/internal/ui/layout"
)

// DrillScreen runs one lesson session, rendering whichever component
// the current question's mode needs.
type DrillScreen struct {
	engine  *session.Engine
	speaker audio.Speaker

	choices components.ChoiceList
	bank    components.WordBank
	grid    components.MatchGrid
	input   components.AnswerInput
	board   *quiz.MatchBoard
}

var _ screen.Screen = (*DrillScreen)(nil)

// New creates a drill screen for the lesson.
func New(lesson lessons.Lesson, repo *progress.Repository, speaker audio.Speaker, rng *rand.Rand) *DrillScreen {
	return &DrillScreen{
		engine:  session.NewEngine(lesson, repo, rng),
		speaker: speaker,
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	d.engine.Start()
	if d.engine.State().Phase == session.PhaseComplete {
		return d.finishCmd()
	}
	d.setupQuestion()
	return nil
}

func (d *DrillScreen) Title() string {
	return d.engine.Lesson().Title
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	st := d.engine.State()
	if st.Phase == session.PhaseEvaluated {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	if st.Current != nil && !st.Current.Gradeable() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "P", Description: "Pronounce"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
	if st.Current != nil && st.Current.Mode != quiz.ModeTyping && st.Current.Mode != quiz.ModeTranslate {
		hints = append([]layout.KeyHint{{Key: "P", Description: "Pronounce"}}, hints...)
	}
	return hints
}

// setupQuestion builds the component for the engine's current
// question and pronounces its Italian side.
func (d *DrillScreen) setupQuestion() {
	q := d.engine.State().Current
	if q == nil {
		return
	}

	switch q.Mode {
	case quiz.ModeMultipleChoice:
		d.choices = components.NewChoiceList(q.Prompt, q.Choices)
	case quiz.ModeFillBlank:
		d.bank = components.NewWordBank(q.Prompt, q.Choices)
	case quiz.ModeMatchPairs:
		d.board = quiz.NewMatchBoard(q)
		d.grid = components.NewMatchGrid(d.board)
	case quiz.ModeTyping, quiz.ModeTranslate:
		d.input = components.NewAnswerInput("type your answer", 64)
	case quiz.ModeConversation:
		d.choices = components.NewChoiceList(q.Prompt, q.Choices)
	}

	d.pronounce(q, false)
}

// pronounce speaks the Italian text a question exposes. Modes whose
// answer is the Italian text stay silent until the answer is revealed.
func (d *DrillScreen) pronounce(q *quiz.Question, revealed bool) {
	switch q.Mode {
	case quiz.ModeMultipleChoice, quiz.ModeFillBlank:
		d.speaker.Say(q.Word.Italian)
	case quiz.ModeConversation:
		if !q.LearnerTurn || revealed {
			d.speaker.Say(q.Line.Italian)
		}
	case quiz.ModeTranslate:
		if q.Direction == quiz.ToEnglish {
			d.speaker.Say(q.Word.Italian)
		} else if revealed {
			d.speaker.Say(q.Word.Italian)
		}
	case quiz.ModeTyping:
		if revealed {
			d.speaker.Say(q.Word.Italian)
		}
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	st := d.engine.State()
	q := st.Current

	kmsg, isKey := msg.(tea.KeyMsg)

	switch st.Phase {
	case session.PhaseEvaluated:
		if isKey && kmsg.String() == "enter" {
			d.engine.Advance()
			if d.engine.State().Phase == session.PhaseComplete {
				return d, d.finishCmd()
			}
			d.setupQuestion()
		}
		return d, nil

	case session.PhasePresenting:
		if q == nil {
			return d, nil
		}

		if !q.Gradeable() {
			if isKey {
				switch kmsg.String() {
				case "enter", "space":
					d.engine.ContinueTurn()
					if d.engine.State().Phase == session.PhaseComplete {
						return d, d.finishCmd()
					}
					d.setupQuestion()
				case "p":
					d.pronounce(q, false)
				}
			}
			return d, nil
		}

		if isKey && kmsg.String() == "p" && q.Mode != quiz.ModeTyping && q.Mode != quiz.ModeTranslate {
			d.pronounce(q, false)
			return d, nil
		}

		return d, d.updateComponent(msg, q)
	}

	return d, nil
}

// updateComponent routes input to the active component and submits to
// the engine when the component commits an answer.
func (d *DrillScreen) updateComponent(msg tea.Msg, q *quiz.Question) tea.Cmd {
	var cmd tea.Cmd

	switch q.Mode {
	case quiz.ModeMultipleChoice, quiz.ModeConversation:
		d.choices, cmd = d.choices.Update(msg)
		if d.choices.Submitted {
			d.engine.Submit(d.choices.Chosen)
			d.choices.Reveal(q.Answer)
			if q.Mode == quiz.ModeConversation {
				d.pronounce(q, true)
			}
		}

	case quiz.ModeFillBlank:
		d.bank, cmd = d.bank.Update(msg)
		if d.bank.Submitted {
			d.engine.Submit(d.bank.Chosen)
			d.bank.Reveal(q.Answer)
		}

	case quiz.ModeMatchPairs:
		d.grid, cmd = d.grid.Update(msg)
		if d.board.Solved() {
			d.engine.Submit("")
		}

	case quiz.ModeTyping, quiz.ModeTranslate:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			d.engine.Submit(d.input.Value())
			d.input.Submit(d.engine.State().LastCorrect)
			d.pronounce(q, true)
			return nil
		}
		d.input, cmd = d.input.Update(msg)
	}

	return cmd
}

func (d *DrillScreen) finishCmd() tea.Cmd {
	completion := d.engine.Completion()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(completion)}
	}
}
