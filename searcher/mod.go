package searcher

import "golang.org/x/exp/constraints"

// Player identifies a side of a two-player game.
type Player int8

const (
	Empty Player = iota // No player (e.g. an unoccupied cell)
	You                 // Maximizing side
	Them                // Minimizing side
)

// Opponent returns the side that moves after p.
func (p Player) Opponent() Player {
	if p == You {
		return Them
	}
	return You
}

func (p Player) String() string {
	switch p {
	case You:
		return "You"
	case Them:
		return "Them"
	default:
		return "Empty"
	}
}

// Score is any ordered numeric type a game can evaluate positions with.
type Score interface {
	constraints.Integer | constraints.Float
}

// Transition pairs a legal move with the state it leads to.
type Transition[M any, T any] struct {
	Move  M
	State T
}

// State is the contract a game must satisfy to be searchable. T is the
// concrete state type itself, so successors come back fully typed.
//
// States should be immutable - Moves always returns new copies.
type State[M any, S Score, T any] interface {
	// Turn returns the player to move.
	Turn() Player
	// NextTurn returns the opponent of Turn.
	NextTurn() Player
	// IsTerminal reports whether the game is over.
	IsTerminal() bool
	// Score evaluates the position for You: MaxScore if You won, MinScore if
	// You lost, a heuristic value otherwise.
	Score() S
	// Moves returns every legal move with its successor state. Order breaks
	// ties between equally scored moves.
	Moves() []Transition[M, T]
}

// Side implements Turn and NextTurn; embed it in a concrete state.
// The zero value is You to move.
type Side struct {
	turn Player
}

func NewSide(turn Player) Side {
	if turn == Empty {
		turn = You
	}
	return Side{turn: turn}
}

func (s Side) Turn() Player {
	if s.turn == Empty {
		return You
	}
	return s.turn
}

func (s Side) NextTurn() Player {
	return s.Turn().Opponent()
}
