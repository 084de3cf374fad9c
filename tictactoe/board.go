package tictactoe

import (
	"fmt"
	"strings"

	"minmax/searcher"
)

const Size = 3

type Grid [Size][Size]searcher.Player

type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// Symbols maps each player to the rune drawn in its cells.
type Symbols struct {
	You   rune
	Them  rune
	Empty rune
}

var DefaultSymbols = Symbols{You: 'X', Them: 'O', Empty: ' '}

func (s Symbols) of(p searcher.Player) rune {
	switch p {
	case searcher.You:
		return s.You
	case searcher.Them:
		return s.Them
	default:
		return s.Empty
	}
}

// winner returns the owner of a completed line. Lines of empty cells never
// count, so an empty board has no winner.
func (g *Grid) winner() searcher.Player {
	for i := 0; i < Size; i++ {
		if line(g[i][0], g[i][1], g[i][2]) { // Rows
			return g[i][0]
		}
		if line(g[0][i], g[1][i], g[2][i]) { // Columns
			return g[0][i]
		}
	}
	if line(g[0][0], g[1][1], g[2][2]) || line(g[2][0], g[1][1], g[0][2]) {
		return g[1][1]
	}
	return searcher.Empty
}

func line(a, b, c searcher.Player) bool {
	return a != searcher.Empty && a == b && b == c
}

func (g *Grid) full() bool {
	for _, row := range g {
		for _, cell := range row {
			if cell == searcher.Empty {
				return false
			}
		}
	}
	return true
}

// Render draws the grid inside a +---+ frame.
func (g *Grid) Render(symbols Symbols) string {
	var sb strings.Builder
	sb.WriteString("+---+\n")
	for _, row := range g {
		sb.WriteByte('|')
		for _, cell := range row {
			sb.WriteRune(symbols.of(cell))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---+")
	return sb.String()
}
