package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"parola/internal/quiz"
	"parola/internal/ui/theme"
)

// MatchGrid renders a quiz.MatchBoard as two columns of tiles.
// Up/down moves within a column, left/right switches columns, enter
// selects a tile. A mismatch is shown in red until the next keypress.
type MatchGrid struct {
	Board *quiz.MatchBoard

	// Col is 0 for the Italian column, 1 for English. Row is the
	// cursor row within the active column.
	Col int
	Row int
}

// NewMatchGrid creates a grid over the board.
func NewMatchGrid(board *quiz.MatchBoard) MatchGrid {
	return MatchGrid{Board: board}
}

// Init returns nil.
func (g MatchGrid) Init() tea.Cmd {
	return nil
}

// Update handles tile navigation and selection.
func (g MatchGrid) Update(msg tea.Msg) (MatchGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	// Any key clears a held mismatch first.
	if g.Board.Mismatch() {
		g.Board.Release()
		return g, nil
	}

	rows := len(g.Board.Left())
	switch kmsg.String() {
	case "up", "k":
		if g.Row > 0 {
			g.Row--
		}
	case "down", "j":
		if g.Row < rows-1 {
			g.Row++
		}
	case "left", "h":
		g.Col = 0
	case "right", "l":
		g.Col = 1
	case "tab":
		g.Col = 1 - g.Col
	case "enter", "space":
		if g.Col == 0 {
			g.Board.SelectLeft(g.Row)
		} else {
			g.Board.SelectRight(g.Row)
		}
	}

	return g, nil
}

// View renders the two tile columns side by side.
func (g MatchGrid) View() string {
	left := g.renderColumn(g.Board.Left(), 0)
	right := g.renderColumn(g.Board.Right(), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (g MatchGrid) renderColumn(tiles []string, col int) string {
	var s string
	for i, tile := range tiles {
		matched := g.matched(col, i)
		selected := g.selected(col) == i
		cursor := g.Col == col && g.Row == i

		var style lipgloss.Style
		switch {
		case matched:
			style = theme.TileMatched
		case selected && g.Board.Mismatch():
			style = theme.TileActive.Background(theme.Error)
		case selected:
			style = theme.TileActive.Background(theme.Secondary)
		case cursor:
			style = theme.TileActive
		default:
			style = theme.TileInactive
		}

		s += style.Render(tile) + "\n"
	}
	return s
}

func (g MatchGrid) matched(col, i int) bool {
	if col == 0 {
		return g.Board.MatchedLeft(i)
	}
	return g.Board.MatchedRight(i)
}

func (g MatchGrid) selected(col int) int {
	if col == 0 {
		return g.Board.SelectedLeft()
	}
	return g.Board.SelectedRight()
}
