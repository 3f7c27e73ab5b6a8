package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownID(t *testing.T) {
	l := Resolve("lesson4")
	assert.Equal(t, "lesson4", l.ID)
	assert.Equal(t, "Colors", l.Title)
	assert.Equal(t, KindWordList, l.Kind)
	assert.NotEmpty(t, l.Words)
}

func TestResolve_UnknownIDFallsBack(t *testing.T) {
	l := Resolve("no-such-lesson")
	assert.Equal(t, DefaultLessonID, l.ID)

	l = Resolve("")
	assert.Equal(t, DefaultLessonID, l.ID)
}

func TestLookup_Conversation(t *testing.T) {
	l, ok := Lookup("review1")
	require.True(t, ok)
	assert.Equal(t, KindConversation, l.Kind)
	assert.True(t, l.IsConversation())
	assert.Empty(t, l.Words)
	assert.Equal(t, len(l.Lines), l.Size())

	learnerLines := 0
	for _, line := range l.Lines {
		if line.IsLearner() {
			learnerLines++
		}
	}
	assert.Greater(t, learnerLines, 0, "a review must have learner turns")
}

func TestCatalog_Integrity(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, l := range all {
		assert.False(t, seen[l.ID], "duplicate lesson id %s", l.ID)
		seen[l.ID] = true
		assert.NotEmpty(t, l.Title, "lesson %s has no title", l.ID)

		switch l.Kind {
		case KindWordList:
			assert.NotEmpty(t, l.Words, "word lesson %s is empty", l.ID)
			for _, w := range l.Words {
				assert.NotEmpty(t, w.Italian)
				assert.NotEmpty(t, w.English)
			}
		case KindConversation:
			assert.NotEmpty(t, l.Lines, "conversation %s is empty", l.ID)
		}
	}
	assert.True(t, seen[DefaultLessonID], "default lesson must exist")
}
