package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckMultipleChoice(t *testing.T) {
	q := &Question{Mode: ModeMultipleChoice, Answer: "Hello"}

	assert.True(t, Check(q, "Hello"))
	assert.True(t, Check(q, "hello"))
	assert.False(t, Check(q, "Goodbye"))
}

func TestCheckFillBlankCaseInsensitive(t *testing.T) {
	q := &Question{Mode: ModeFillBlank, Answer: "Thank you"}

	assert.True(t, Check(q, "Thank you"))
	assert.True(t, Check(q, "thank you"))
	assert.True(t, Check(q, "  THANK YOU "))
	assert.False(t, Check(q, "thankyou"))
}

func TestCheckTyping(t *testing.T) {
	q := &Question{Mode: ModeTyping, Answer: "grazie"}

	assert.True(t, Check(q, "grazie"))
	assert.True(t, Check(q, "Grazie"))
	assert.True(t, Check(q, " GRAZIE  "))
	assert.False(t, Check(q, "grazi"))
}

func TestCheckTranslate(t *testing.T) {
	q := &Question{Mode: ModeTranslate, Answer: "water"}

	assert.True(t, Check(q, "Water"))
	assert.False(t, Check(q, "waters"))
}

func TestCheckConversationExact(t *testing.T) {
	q := &Question{Mode: ModeConversation, LearnerTurn: true, Answer: "Sto bene, grazie."}

	assert.True(t, Check(q, "Sto bene, grazie."))
	assert.False(t, Check(q, "sto bene, grazie."))
}

func TestCheckMatchPairsAlwaysCorrect(t *testing.T) {
	q := &Question{Mode: ModeMatchPairs}

	assert.True(t, Check(q, ""))
}
