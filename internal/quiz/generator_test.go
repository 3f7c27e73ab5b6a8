package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parola/internal/lessons"
)

func testLesson() lessons.Lesson {
	return lessons.Lesson{
		ID:    "test",
		Title: "Test",
		Kind:  lessons.KindWordList,
		Words: []lessons.WordItem{
			{Italian: "Ciao", English: "Hello"},
			{Italian: "Grazie", English: "Thank you"},
			{Italian: "Acqua", English: "Water"},
			{Italian: "Pane", English: "Bread"},
			{Italian: "Gatto", English: "Cat"},
			{Italian: "Cane", English: "Dog"},
			{Italian: "Casa", English: "House"},
		},
	}
}

func testConversation() lessons.Lesson {
	return lessons.Lesson{
		ID:    "conv",
		Title: "Conversation",
		Kind:  lessons.KindConversation,
		Words: []lessons.WordItem{
			{Italian: "Ciao", English: "Hello"},
			{Italian: "Grazie", English: "Thank you"},
		},
		Lines: []lessons.ConversationLine{
			{Speaker: "Marco", Italian: "Ciao! Come stai?", English: "Hi! How are you?"},
			{Speaker: "You", Italian: "Sto bene, grazie.", English: "I'm well, thanks."},
			{Speaker: "Marco", Italian: "Che bello!", English: "How nice!"},
			{Speaker: "You", Italian: "E tu?", English: "And you?"},
			{Speaker: "You", Italian: "A presto!", English: "See you soon!"},
		},
	}
}

func newTestGen(t *testing.T, lesson lessons.Lesson) *Generator {
	t.Helper()
	return NewGenerator(lesson, rand.New(rand.NewSource(42)))
}

func TestMultipleChoice(t *testing.T) {
	g := newTestGen(t, testLesson())

	for i := 0; i < 50; i++ {
		q := g.NextForMode(ModeMultipleChoice)
		require.Len(t, q.Choices, MultipleChoiceCount)
		assert.Contains(t, q.Choices, q.Answer)
		assert.Equal(t, q.Word.English, q.Answer)

		seen := map[string]bool{}
		for _, c := range q.Choices {
			assert.False(t, seen[c], "duplicate choice %q", c)
			seen[c] = true
		}
	}
}

func TestFillBlankChoices(t *testing.T) {
	g := newTestGen(t, testLesson())

	q := g.NextForMode(ModeFillBlank)
	require.Len(t, q.Choices, FillBlankCount)
	assert.Contains(t, q.Choices, q.Answer)
}

func TestChoicesBoundedBySmallLesson(t *testing.T) {
	small := lessons.Lesson{
		ID:   "small",
		Kind: lessons.KindWordList,
		Words: []lessons.WordItem{
			{Italian: "Ciao", English: "Hello"},
			{Italian: "Grazie", English: "Thank you"},
		},
	}
	g := newTestGen(t, small)

	q := g.NextForMode(ModeFillBlank)
	assert.Len(t, q.Choices, 2)
	assert.Contains(t, q.Choices, q.Answer)
}

func TestMatchPairs(t *testing.T) {
	g := newTestGen(t, testLesson())

	q := g.NextForMode(ModeMatchPairs)
	require.Len(t, q.Pairs, MatchPairCount)
	require.Len(t, q.Right, MatchPairCount)

	seen := map[string]bool{}
	for _, p := range q.Pairs {
		assert.False(t, seen[p.Italian], "duplicate pair %q", p.Italian)
		seen[p.Italian] = true
		assert.Contains(t, q.Right, p.English)
	}
}

func TestMatchPairsCappedAtLessonSize(t *testing.T) {
	small := lessons.Lesson{
		ID:   "small",
		Kind: lessons.KindWordList,
		Words: []lessons.WordItem{
			{Italian: "Ciao", English: "Hello"},
			{Italian: "Grazie", English: "Thank you"},
		},
	}
	g := newTestGen(t, small)

	q := g.NextForMode(ModeMatchPairs)
	assert.Len(t, q.Pairs, 2)
}

func TestTypingAnswerLowercase(t *testing.T) {
	g := newTestGen(t, testLesson())

	q := g.NextForMode(ModeTyping)
	for _, r := range q.Answer {
		assert.False(t, r >= 'A' && r <= 'Z', "answer not lowercased: %q", q.Answer)
	}
	assert.Empty(t, q.Choices)
}

func TestTranslateBothDirections(t *testing.T) {
	g := newTestGen(t, testLesson())

	dirs := map[Direction]bool{}
	for i := 0; i < 50; i++ {
		q := g.NextForMode(ModeTranslate)
		dirs[q.Direction] = true
		if q.Direction == ToItalian {
			assert.Contains(t, q.Prompt, q.Word.English)
		} else {
			assert.Contains(t, q.Prompt, q.Word.Italian)
		}
	}
	assert.True(t, dirs[ToItalian])
	assert.True(t, dirs[ToEnglish])
}

func TestNextServesWordModesOnly(t *testing.T) {
	g := newTestGen(t, testLesson())

	for i := 0; i < 100; i++ {
		q := g.Next()
		assert.NotEqual(t, ModeConversation, q.Mode)
		assert.True(t, q.Gradeable())
	}
}

func TestConversationTurnLearner(t *testing.T) {
	g := newTestGen(t, testConversation())

	q := g.ConversationTurn(1)
	require.True(t, q.LearnerTurn)
	assert.True(t, q.Gradeable())
	assert.Equal(t, "Sto bene, grazie.", q.Answer)
	require.Len(t, q.Choices, ConversationChoices)
	assert.Contains(t, q.Choices, q.Answer)
	assert.Contains(t, q.Choices, "E tu?")
	assert.Contains(t, q.Choices, "A presto!")
}

func TestConversationTurnNonLearner(t *testing.T) {
	g := newTestGen(t, testConversation())

	q := g.ConversationTurn(0)
	assert.False(t, q.LearnerTurn)
	assert.False(t, q.Gradeable())
	assert.Empty(t, q.Choices)
	assert.Equal(t, "Marco", q.Line.Speaker)
}

func TestConversationChoicesPadFromWords(t *testing.T) {
	conv := testConversation()
	conv.Lines = conv.Lines[:2]
	g := newTestGen(t, conv)

	q := g.ConversationTurn(1)
	require.Len(t, q.Choices, ConversationChoices)
	assert.Contains(t, q.Choices, q.Answer)
}

func TestRefreshKeepsAnswer(t *testing.T) {
	g := newTestGen(t, testLesson())

	q := g.NextForMode(ModeMultipleChoice)
	answer := q.Answer
	word := q.Word

	for i := 0; i < 20; i++ {
		g.Refresh(q)
		assert.Equal(t, answer, q.Answer)
		assert.Equal(t, word, q.Word)
		require.Len(t, q.Choices, MultipleChoiceCount)
		assert.Contains(t, q.Choices, answer)
	}
}

func TestRefreshMatchPairsReshuffles(t *testing.T) {
	g := newTestGen(t, testLesson())

	q := g.NextForMode(ModeMatchPairs)
	pairs := append([]lessons.WordItem(nil), q.Pairs...)

	g.Refresh(q)
	assert.Equal(t, pairs, q.Pairs)
	require.Len(t, q.Right, len(pairs))
	for _, p := range pairs {
		assert.Contains(t, q.Right, p.English)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := newTestGen(t, testLesson())

	q := g.NextForMode(ModeMultipleChoice)
	c := q.Clone()
	c.Retry = true
	c.Choices[0] = "mutated"

	assert.False(t, q.Retry)
	assert.NotEqual(t, "mutated", q.Choices[0])
	assert.Equal(t, q.Answer, c.Answer)
}

func TestDeterministicUnderSeed(t *testing.T) {
	a := NewGenerator(testLesson(), rand.New(rand.NewSource(7)))
	b := NewGenerator(testLesson(), rand.New(rand.NewSource(7)))

	for i := 0; i < 25; i++ {
		qa, qb := a.Next(), b.Next()
		assert.Equal(t, qa.Mode, qb.Mode)
		assert.Equal(t, qa.Answer, qb.Answer)
		assert.Equal(t, qa.Choices, qb.Choices)
	}
}
