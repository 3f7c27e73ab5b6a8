package quiz

import "parola/internal/lessons"

// MatchBoard tracks the interactive state of a ModeMatchPairs
// question: two columns of tiles the player matches one pair at a
// time. A mismatch is held visible until Release is called so the
// player sees which tiles disagreed before trying again.
type MatchBoard struct {
	pairs []lessons.WordItem
	right []string

	matchedLeft  map[int]bool
	matchedRight map[int]bool

	selLeft  int
	selRight int

	mismatch bool
	misses   int
}

// NewMatchBoard builds a board from a ModeMatchPairs question.
func NewMatchBoard(q *Question) *MatchBoard {
	return &MatchBoard{
		pairs:        q.Pairs,
		right:        q.Right,
		matchedLeft:  map[int]bool{},
		matchedRight: map[int]bool{},
		selLeft:      -1,
		selRight:     -1,
	}
}

// Left returns the Italian column in order.
func (b *MatchBoard) Left() []string {
	out := make([]string, len(b.pairs))
	for i, p := range b.pairs {
		out[i] = p.Italian
	}
	return out
}

// Right returns the shuffled English column.
func (b *MatchBoard) Right() []string { return b.right }

// MatchedLeft reports whether the left tile at i is already matched.
func (b *MatchBoard) MatchedLeft(i int) bool { return b.matchedLeft[i] }

// MatchedRight reports whether the right tile at i is already matched.
func (b *MatchBoard) MatchedRight(i int) bool { return b.matchedRight[i] }

// SelectedLeft returns the currently selected left index, or -1.
func (b *MatchBoard) SelectedLeft() int { return b.selLeft }

// SelectedRight returns the currently selected right index, or -1.
func (b *MatchBoard) SelectedRight() int { return b.selRight }

// Mismatch reports whether the board is holding a wrong pair on
// screen. While true, further selections are ignored until Release.
func (b *MatchBoard) Mismatch() bool { return b.mismatch }

// Misses returns how many wrong pair attempts the board has seen.
func (b *MatchBoard) Misses() int { return b.misses }

// SelectLeft picks the left tile at i. Matched tiles and selections
// during a held mismatch are ignored. If a right tile is already
// selected the pair resolves.
func (b *MatchBoard) SelectLeft(i int) {
	if b.mismatch || i < 0 || i >= len(b.pairs) || b.matchedLeft[i] {
		return
	}
	b.selLeft = i
	b.resolve()
}

// SelectRight picks the right tile at i, resolving the pair if a left
// tile is already selected.
func (b *MatchBoard) SelectRight(i int) {
	if b.mismatch || i < 0 || i >= len(b.right) || b.matchedRight[i] {
		return
	}
	b.selRight = i
	b.resolve()
}

func (b *MatchBoard) resolve() {
	if b.selLeft < 0 || b.selRight < 0 {
		return
	}
	if b.pairs[b.selLeft].English == b.right[b.selRight] {
		b.matchedLeft[b.selLeft] = true
		b.matchedRight[b.selRight] = true
		b.selLeft, b.selRight = -1, -1
		return
	}
	b.misses++
	b.mismatch = true
}

// Release clears a held mismatch so the player can pick again.
func (b *MatchBoard) Release() {
	if !b.mismatch {
		return
	}
	b.mismatch = false
	b.selLeft, b.selRight = -1, -1
}

// Solved reports whether every pair has been matched.
func (b *MatchBoard) Solved() bool {
	return len(b.matchedLeft) == len(b.pairs)
}
