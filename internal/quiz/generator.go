package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"parola/internal/lessons"
)

// wordModes are the modes served for word-list lessons.
var wordModes = []Mode{
	ModeMultipleChoice,
	ModeFillBlank,
	ModeMatchPairs,
	ModeTyping,
	ModeTranslate,
}

// Generator produces questions for one lesson.
type Generator struct {
	lesson lessons.Lesson
	rng    *rand.Rand
}

// NewGenerator creates a Generator for the lesson. A nil rng gets a
// time-seeded source.
func NewGenerator(lesson lessons.Lesson, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{lesson: lesson, rng: rng}
}

// Next produces a question in a uniformly random mode. Word selection
// is with replacement: repeats across a session are allowed.
func (g *Generator) Next() *Question {
	return g.NextForMode(wordModes[g.rng.Intn(len(wordModes))])
}

// NextForMode produces a question in the given word-list mode.
func (g *Generator) NextForMode(mode Mode) *Question {
	switch mode {
	case ModeFillBlank:
		return g.fillBlank()
	case ModeMatchPairs:
		return g.matchPairs()
	case ModeTyping:
		return g.typing()
	case ModeTranslate:
		return g.translate()
	default:
		return g.multipleChoice()
	}
}

// ConversationTurn produces the question for line index of a
// conversation lesson. Non-learner lines yield a non-gradeable turn
// that simply advances on an external continue signal.
func (g *Generator) ConversationTurn(index int) *Question {
	line := g.lesson.Lines[index]
	q := &Question{
		Mode:      ModeConversation,
		Line:      line,
		LineIndex: index,
	}
	if !line.IsLearner() {
		return q
	}

	q.LearnerTurn = true
	q.Answer = line.Italian
	q.Prompt = fmt.Sprintf("How do you respond? %q", line.English)
	q.Choices = g.conversationChoices(index, line.Italian)
	return q
}

// Refresh regenerates the presentation side of a question for retry:
// distractors and shuffle order are re-rolled, the word, line,
// direction, and accepted answer stay fixed.
func (g *Generator) Refresh(q *Question) {
	switch q.Mode {
	case ModeMultipleChoice:
		q.Choices = g.buildChoices(q.Answer, MultipleChoiceCount)
	case ModeFillBlank:
		q.Choices = g.buildChoices(q.Answer, FillBlankCount)
	case ModeMatchPairs:
		q.Right = g.shuffledEnglish(q.Pairs)
	case ModeConversation:
		if q.LearnerTurn {
			q.Choices = g.conversationChoices(q.LineIndex, q.Answer)
		}
	}
}

func (g *Generator) multipleChoice() *Question {
	word := g.randomWord()
	return &Question{
		Mode:    ModeMultipleChoice,
		Word:    word,
		Prompt:  fmt.Sprintf("What does %q mean?", word.Italian),
		Answer:  word.English,
		Choices: g.buildChoices(word.English, MultipleChoiceCount),
	}
}

func (g *Generator) fillBlank() *Question {
	word := g.randomWord()
	return &Question{
		Mode:    ModeFillBlank,
		Word:    word,
		Prompt:  fmt.Sprintf("%q means ___", word.Italian),
		Answer:  word.English,
		Choices: g.buildChoices(word.English, FillBlankCount),
	}
}

func (g *Generator) matchPairs() *Question {
	pairs := g.samplePairs(MatchPairCount)
	return &Question{
		Mode:   ModeMatchPairs,
		Prompt: "Match the pairs",
		Pairs:  pairs,
		Right:  g.shuffledEnglish(pairs),
	}
}

func (g *Generator) typing() *Question {
	word := g.randomWord()
	return &Question{
		Mode:   ModeTyping,
		Word:   word,
		Prompt: fmt.Sprintf("Type the Italian for %q", word.English),
		Answer: strings.ToLower(word.Italian),
	}
}

func (g *Generator) translate() *Question {
	word := g.randomWord()
	q := &Question{
		Mode: ModeTranslate,
		Word: word,
	}
	if g.rng.Intn(2) == 0 {
		q.Direction = ToItalian
		q.Prompt = fmt.Sprintf("Translate to Italian: %q", word.English)
		q.Answer = strings.ToLower(word.Italian)
	} else {
		q.Direction = ToEnglish
		q.Prompt = fmt.Sprintf("Translate to English: %q", word.Italian)
		q.Answer = strings.ToLower(word.English)
	}
	return q
}

func (g *Generator) randomWord() lessons.WordItem {
	return g.lesson.Words[g.rng.Intn(len(g.lesson.Words))]
}

// buildChoices builds a shuffled choice set containing the correct
// answer plus unique random distractors. The target size is bounded by
// the number of distinct translations in the lesson, so a small word
// pool yields a short set instead of looping forever.
func (g *Generator) buildChoices(correct string, want int) []string {
	distinct := make(map[string]bool, len(g.lesson.Words))
	for _, w := range g.lesson.Words {
		distinct[w.English] = true
	}
	distinct[correct] = true
	if want > len(distinct) {
		want = len(distinct)
	}

	choices := []string{correct}
	seen := map[string]bool{correct: true}
	for len(choices) < want {
		candidate := g.randomWord().English
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		choices = append(choices, candidate)
	}
	g.shuffle(choices)
	return choices
}

// samplePairs picks n distinct words without replacement, tracking
// chosen indices. n is capped at the lesson size.
func (g *Generator) samplePairs(n int) []lessons.WordItem {
	if n > len(g.lesson.Words) {
		n = len(g.lesson.Words)
	}
	used := make(map[int]bool, n)
	pairs := make([]lessons.WordItem, 0, n)
	for len(pairs) < n {
		i := g.rng.Intn(len(g.lesson.Words))
		if used[i] {
			continue
		}
		used[i] = true
		pairs = append(pairs, g.lesson.Words[i])
	}
	return pairs
}

func (g *Generator) shuffledEnglish(pairs []lessons.WordItem) []string {
	right := make([]string, len(pairs))
	for i, p := range pairs {
		right[i] = p.English
	}
	g.shuffle(right)
	return right
}

// conversationChoices builds up to 3 choices for a learner turn: the
// correct line, then distractors drawn without replacement from other
// learner lines, then (if still short) from the lesson word list.
func (g *Generator) conversationChoices(index int, correct string) []string {
	choices := []string{correct}
	seen := map[string]bool{correct: true}

	var others []string
	for i, line := range g.lesson.Lines {
		if i != index && line.IsLearner() && !seen[line.Italian] {
			others = append(others, line.Italian)
		}
	}
	for len(choices) < ConversationChoices && len(others) > 0 {
		i := g.rng.Intn(len(others))
		pick := others[i]
		others = append(others[:i], others[i+1:]...)
		if seen[pick] {
			continue
		}
		seen[pick] = true
		choices = append(choices, pick)
	}

	// Pad from the word list, bounded by its distinct terms.
	if len(choices) < ConversationChoices && len(g.lesson.Words) > 0 {
		distinct := make(map[string]bool, len(g.lesson.Words))
		for _, w := range g.lesson.Words {
			if !seen[w.Italian] {
				distinct[w.Italian] = true
			}
		}
		want := ConversationChoices
		if max := len(choices) + len(distinct); want > max {
			want = max
		}
		for len(choices) < want {
			candidate := g.randomWord().Italian
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			choices = append(choices, candidate)
		}
	}

	g.shuffle(choices)
	return choices
}

func (g *Generator) shuffle(s []string) {
	g.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
