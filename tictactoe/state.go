package tictactoe

import (
	"errors"
	"fmt"
	"math"

	"minmax/searcher"
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrOccupied    = errors.New("cell already taken")
	ErrGameOver    = errors.New("game already finished")
)

// State is an immutable tic-tac-toe position. It satisfies
// searcher.State[Move, int, State].
type State struct {
	searcher.Side
	grid   Grid
	winner searcher.Player
}

// New returns the empty board with You to move.
func New() State {
	return State{Side: searcher.NewSide(searcher.You)}
}

// NewState returns the position with the given grid and player to move.
func NewState(turn searcher.Player, grid Grid) State {
	return State{
		Side:   searcher.NewSide(turn),
		grid:   grid,
		winner: grid.winner(),
	}
}

func (s State) Grid() Grid {
	return s.grid
}

// Winner returns the player owning a completed line, or Empty.
func (s State) Winner() searcher.Player {
	return s.winner
}

func (s State) IsTerminal() bool {
	return s.winner != searcher.Empty || s.grid.full()
}

// Score is math.MaxInt if You won, math.MinInt if Them won, 0 otherwise.
func (s State) Score() int {
	switch s.winner {
	case searcher.You:
		return math.MaxInt
	case searcher.Them:
		return math.MinInt
	default:
		return 0
	}
}

// Moves lists the empty cells in row-major order.
func (s State) Moves() []searcher.Transition[Move, State] {
	moves := make([]searcher.Transition[Move, State], 0, Size*Size)
	if s.winner != searcher.Empty {
		return moves
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if s.grid[row][col] != searcher.Empty {
				continue
			}
			move := Move{Row: row, Col: col}
			moves = append(moves, searcher.Transition[Move, State]{Move: move, State: s.apply(move)})
		}
	}
	return moves
}

// Play validates move and returns the resulting state.
func (s State) Play(move Move) (State, error) {
	if !move.inBounds() {
		return State{}, fmt.Errorf("playing %v: %w", move, ErrOutOfBounds)
	}
	if s.IsTerminal() {
		return State{}, fmt.Errorf("playing %v: %w", move, ErrGameOver)
	}
	if s.grid[move.Row][move.Col] != searcher.Empty {
		return State{}, fmt.Errorf("playing %v: %w", move, ErrOccupied)
	}
	return s.apply(move), nil
}

func (s State) apply(move Move) State {
	grid := s.grid
	grid[move.Row][move.Col] = s.Turn()
	return NewState(s.NextTurn(), grid)
}

func (s State) Render(symbols Symbols) string {
	return s.grid.Render(symbols)
}

func (s State) String() string {
	return s.grid.Render(DefaultSymbols)
}
