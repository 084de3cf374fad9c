package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// tree is an explicit game tree; leaves and terminal nodes carry scores.
type tree struct {
	score    int
	terminal bool
	children []*tree
}

type mockState struct {
	Side
	node *tree
}

func (m mockState) IsTerminal() bool {
	return m.node.terminal
}

func (m mockState) Score() int {
	return m.node.score
}

func (m mockState) Moves() []Transition[int, mockState] {
	moves := make([]Transition[int, mockState], 0, len(m.node.children))
	for i, child := range m.node.children {
		moves = append(moves, Transition[int, mockState]{
			Move:  i,
			State: mockState{Side: NewSide(m.NextTurn()), node: child},
		})
	}
	return moves
}

// floatState reads the same trees with float64 scores.
type floatState struct {
	Side
	node *tree
}

func (f floatState) IsTerminal() bool {
	return f.node.terminal
}

func (f floatState) Score() float64 {
	return float64(f.node.score)
}

func (f floatState) Moves() []Transition[int, floatState] {
	moves := make([]Transition[int, floatState], 0, len(f.node.children))
	for i, child := range f.node.children {
		moves = append(moves, Transition[int, floatState]{
			Move:  i,
			State: floatState{Side: NewSide(f.NextTurn()), node: child},
		})
	}
	return moves
}

func leaf(score int) *tree {
	return &tree{score: score}
}

func branch(children ...*tree) *tree {
	return &tree{children: children}
}

// randomTree builds a tree of the given height. Some inner nodes are
// terminal, some leaves sit at the sentinel scores.
func randomTree(r *rand.Rand, height int) *tree {
	if height == 0 || r.Intn(8) == 0 {
		t := &tree{score: r.Intn(21) - 10, terminal: true}
		switch r.Intn(20) {
		case 0:
			t.score = math.MaxInt
		case 1:
			t.score = math.MinInt
		}
		return t
	}
	t := &tree{score: r.Intn(21) - 10}
	for i := r.Intn(5); i > 0; i-- {
		t.children = append(t.children, randomTree(r, height-1))
	}
	return t
}

// fullMinMax is plain min-max without pruning, using the same tie-break and
// sentinels as solve.
func fullMinMax(state mockState, depth int, maximizing bool) (move int, found bool, score int) {
	if depth <= 0 || state.IsTerminal() {
		return 0, false, state.Score()
	}
	score = math.MaxInt
	if maximizing {
		score = math.MinInt
	}
	for _, t := range state.Moves() {
		_, _, childScore := fullMinMax(t.State, depth-1, !maximizing)
		if (maximizing && childScore > score) || (!maximizing && childScore < score) {
			move, found, score = t.Move, true, childScore
		}
	}
	return move, found, score
}
