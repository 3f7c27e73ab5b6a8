// Package quiz generates drill questions from lesson content and
// checks answers. All randomness flows through an injectable source so
// generation is deterministic under test.
package quiz

import "parola/internal/lessons"

// Mode is the question presentation style.
type Mode int

const (
	ModeMultipleChoice Mode = iota
	ModeFillBlank
	ModeMatchPairs
	ModeTyping
	ModeTranslate
	// ModeConversation is a scripted conversation turn, used only for
	// conversation lessons.
	ModeConversation
)

func (m Mode) String() string {
	switch m {
	case ModeMultipleChoice:
		return "multipleChoice"
	case ModeFillBlank:
		return "fillBlank"
	case ModeMatchPairs:
		return "matchPairs"
	case ModeTyping:
		return "typing"
	case ModeTranslate:
		return "translate"
	case ModeConversation:
		return "conversation"
	}
	return "unknown"
}

// Direction is the translation direction for ModeTranslate.
type Direction int

const (
	ToItalian Direction = iota
	ToEnglish
)

// Choice counts per mode.
const (
	MultipleChoiceCount = 4
	FillBlankCount      = 6
	MatchPairCount      = 4
	ConversationChoices = 3
)

// Question is one generated question. It carries everything needed to
// render (and re-render, for retries) the question: the word or line
// involved, the fixed accepted answer, and any generated choice set.
type Question struct {
	Mode Mode

	// Word is the item under drill for single-word modes.
	Word lessons.WordItem

	// Pairs holds the sampled word pairs for ModeMatchPairs; Right is
	// the shuffled right-hand column.
	Pairs []lessons.WordItem
	Right []string

	// Line is the conversation line for ModeConversation. LearnerTurn
	// is false when another speaker talks and the turn just advances.
	Line        lessons.ConversationLine
	LineIndex   int
	LearnerTurn bool

	// Direction applies to ModeTranslate only.
	Direction Direction

	// Prompt is the display text asking the question.
	Prompt string

	// Answer is the accepted answer, normalized at generation time.
	// It is fixed for the question's lifetime: a retry re-presents the
	// same answer even though distractors are regenerated.
	Answer string

	// Choices is the generated choice set for choice-based modes.
	Choices []string

	// Retry marks a question re-served from the retry queue.
	Retry bool
}

// Clone returns a deep copy of the question. The clone keeps the word,
// line, direction, and accepted answer; the session queues clones of
// missed questions so re-presentation is deterministic.
func (q *Question) Clone() *Question {
	c := *q
	c.Choices = append([]string(nil), q.Choices...)
	c.Pairs = append([]lessons.WordItem(nil), q.Pairs...)
	c.Right = append([]string(nil), q.Right...)
	return &c
}

// Gradeable reports whether the question expects an answer. The only
// non-gradeable question is a conversation turn spoken by someone
// other than the learner.
func (q *Question) Gradeable() bool {
	return q.Mode != ModeConversation || q.LearnerTurn
}
