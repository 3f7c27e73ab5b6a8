package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parola/internal/lessons"
)

func testBoard(t *testing.T) *MatchBoard {
	t.Helper()
	q := &Question{
		Mode: ModeMatchPairs,
		Pairs: []lessons.WordItem{
			{Italian: "Gatto", English: "Cat"},
			{Italian: "Cane", English: "Dog"},
			{Italian: "Pane", English: "Bread"},
			{Italian: "Acqua", English: "Water"},
		},
		Right: []string{"Water", "Cat", "Bread", "Dog"},
	}
	return NewMatchBoard(q)
}

func rightIndex(t *testing.T, b *MatchBoard, english string) int {
	t.Helper()
	for i, e := range b.Right() {
		if e == english {
			return i
		}
	}
	t.Fatalf("%q not in right column", english)
	return -1
}

func TestMatchBoardSolve(t *testing.T) {
	b := testBoard(t)

	for i, left := range []string{"Gatto", "Cane", "Pane", "Acqua"} {
		b.SelectLeft(i)
		b.SelectRight(rightIndex(t, b, map[string]string{
			"Gatto": "Cat", "Cane": "Dog", "Pane": "Bread", "Acqua": "Water",
		}[left]))
		assert.False(t, b.Mismatch())
	}

	assert.True(t, b.Solved())
	assert.Equal(t, 0, b.Misses())
}

func TestMatchBoardMismatchHeldUntilRelease(t *testing.T) {
	b := testBoard(t)

	b.SelectLeft(0)
	b.SelectRight(rightIndex(t, b, "Dog"))
	require.True(t, b.Mismatch())
	assert.Equal(t, 1, b.Misses())

	// Selections are ignored while the mismatch is held.
	b.SelectLeft(1)
	assert.Equal(t, 0, b.SelectedLeft())

	b.Release()
	assert.False(t, b.Mismatch())
	assert.Equal(t, -1, b.SelectedLeft())
	assert.Equal(t, -1, b.SelectedRight())

	b.SelectLeft(0)
	b.SelectRight(rightIndex(t, b, "Cat"))
	assert.False(t, b.Mismatch())
	assert.True(t, b.MatchedLeft(0))
}

func TestMatchBoardRightFirstSelection(t *testing.T) {
	b := testBoard(t)

	ri := rightIndex(t, b, "Bread")
	b.SelectRight(ri)
	assert.Equal(t, ri, b.SelectedRight())
	assert.False(t, b.Solved())

	b.SelectLeft(2)
	assert.True(t, b.MatchedLeft(2))
	assert.True(t, b.MatchedRight(ri))
}

func TestMatchBoardMatchedTilesLocked(t *testing.T) {
	b := testBoard(t)

	b.SelectLeft(0)
	b.SelectRight(rightIndex(t, b, "Cat"))
	require.True(t, b.MatchedLeft(0))

	b.SelectLeft(0)
	assert.Equal(t, -1, b.SelectedLeft())
}

func TestMatchBoardSolvesDespiteMisses(t *testing.T) {
	b := testBoard(t)

	b.SelectLeft(0)
	b.SelectRight(rightIndex(t, b, "Water"))
	b.Release()
	b.SelectLeft(0)
	b.SelectRight(rightIndex(t, b, "Cat"))

	for left, english := range map[int]string{1: "Dog", 2: "Bread", 3: "Water"} {
		b.SelectLeft(left)
		b.SelectRight(rightIndex(t, b, english))
	}

	assert.True(t, b.Solved())
	assert.Equal(t, 1, b.Misses())
}
