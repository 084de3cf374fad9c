package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests alpha-beta search on explicit trees
- base cases: depth 0, terminal root, no moves
- maximizing/minimizing selection with first-move tie-break
- cutoffs skip siblings without changing the result
- equivalence with unpruned min-max on random trees
*/

func root(node *tree) mockState {
	return mockState{Side: NewSide(You), node: node}
}

func TestSolveBaseCases(t *testing.T) {
	t.Run("depth zero returns the static score without a move", func(t *testing.T) {
		state := root(branch(leaf(5), leaf(7)))
		state.node.score = 3

		got := Solve[int, int](state, 0)

		_, ok := got.Move()
		require.False(t, ok, "Depth 0 should not select a move")
		require.Equal(t, 3, got.Score, "Depth 0 should return the state's own score")
	})

	t.Run("terminal root short-circuits at any depth", func(t *testing.T) {
		node := branch(leaf(5), leaf(7))
		node.terminal = true
		node.score = -4
		for depth := 0; depth <= 5; depth++ {
			got := Solve[int, int](root(node), depth)

			_, ok := got.Move()
			require.False(t, ok, "Terminal state should not select a move")
			require.Equal(t, -4, got.Score, "Terminal state should return its own score")
		}
	})

	t.Run("non-terminal maximizing node without moves returns the minimum", func(t *testing.T) {
		got := Solve[int, int](root(branch()), 3)

		_, ok := got.Move()
		require.False(t, ok)
		require.Equal(t, math.MinInt, got.Score)
	})

	t.Run("non-terminal minimizing node without moves returns the maximum", func(t *testing.T) {
		state := mockState{Side: NewSide(Them), node: branch()}

		got := Solve[int, int](state, 3)

		_, ok := got.Move()
		require.False(t, ok)
		require.Equal(t, math.MaxInt, got.Score)
	})

	t.Run("inner nodes without moves use the float limits", func(t *testing.T) {
		state := floatState{Side: NewSide(You), node: branch(&tree{score: 2, terminal: true}, branch())}
		m := NewMinMax[int, float64, floatState](WithMetrics())

		got, metric := m.Solve(state, 3)

		move, ok := got.Move()
		require.True(t, ok)
		require.Equal(t, 1, move, "Empty minimizing child should score the maximum")
		require.Equal(t, math.MaxFloat64, got.Score)
		require.Equal(t, 3, metric.Nodes)

		state = floatState{Side: NewSide(Them), node: branch(branch())}
		got = Solve[int, float64](state, 3)
		require.Equal(t, -math.MaxFloat64, got.Score, "Empty maximizing child should score the most negative float")
	})
}

func TestSolveSelection(t *testing.T) {
	t.Run("maximizer picks the highest child", func(t *testing.T) {
		got := Solve[int, int](root(branch(leaf(1), leaf(9), leaf(4))), 1)

		move, ok := got.Move()
		require.True(t, ok)
		require.Equal(t, 1, move)
		require.Equal(t, 9, got.Score)
	})

	t.Run("minimizer picks the lowest child", func(t *testing.T) {
		state := mockState{Side: NewSide(Them), node: branch(leaf(1), leaf(-9), leaf(4))}

		got := Solve[int, int](state, 1)

		move, ok := got.Move()
		require.True(t, ok)
		require.Equal(t, 1, move)
		require.Equal(t, -9, got.Score)
	})

	t.Run("ties keep the first move", func(t *testing.T) {
		got := Solve[int, int](root(branch(leaf(2), leaf(6), leaf(6))), 1)

		move, _ := got.Move()
		require.Equal(t, 1, move, "Later equal-scoring moves should be ignored")
	})

	t.Run("surfaces the root move, not the child's reply", func(t *testing.T) {
		// You picks branch 1; Them would reply with its move 0 there
		state := root(branch(
			branch(leaf(3), leaf(-5)),
			branch(leaf(4), leaf(8)),
		))

		got := Solve[int, int](state, 2)

		move, ok := got.Move()
		require.True(t, ok)
		require.Equal(t, 1, move)
		require.Equal(t, 4, got.Score)
	})

	t.Run("all children at the minimum keep no move", func(t *testing.T) {
		got := Solve[int, int](root(branch(leaf(math.MinInt), leaf(math.MinInt))), 1)

		_, ok := got.Move()
		require.False(t, ok, "Strict comparison never beats the sentinel")
		require.Equal(t, math.MinInt, got.Score)
	})

	t.Run("role comes from the argument, not the state", func(t *testing.T) {
		state := root(branch(leaf(1), leaf(9)))

		got := SolveWithBounds[int, int](state, 1, math.MinInt, math.MaxInt, false)

		move, _ := got.Move()
		require.Equal(t, 0, move, "Forced minimizing role should choose the lower child")
		require.Equal(t, 1, got.Score)
	})
}

func TestSolvePruning(t *testing.T) {
	t.Run("cutoff skips remaining siblings", func(t *testing.T) {
		// After branch 0 (value 5), branch 1's first reply 2 refutes it
		state := root(branch(
			branch(leaf(5), leaf(6)),
			branch(leaf(2), leaf(100)),
		))
		m := NewMinMax[int, int, mockState](WithMetrics())

		got, metric := m.Solve(state, 2)

		move, _ := got.Move()
		require.Equal(t, 0, move)
		require.Equal(t, 5, got.Score)
		require.Equal(t, 1, metric.Cutoffs, "Branch 1 should be cut after its first reply")
		require.Equal(t, 6, metric.Nodes, "Leaf 100 should never be visited")
		require.Equal(t, 2, metric.Depth)
	})

	t.Run("narrow window forces an immediate cutoff", func(t *testing.T) {
		state := root(branch(leaf(3), leaf(9)))

		got := SolveWithBounds[int, int](state, 1, 0, 2, true)

		move, _ := got.Move()
		require.Equal(t, 0, move, "First child already exceeds beta")
		require.Equal(t, 3, got.Score)
	})

	t.Run("maximum score at the root stops the search", func(t *testing.T) {
		state := root(branch(leaf(math.MaxInt), leaf(math.MaxInt)))
		m := NewMinMax[int, int, mockState](WithMetrics())

		got, metric := m.Solve(state, 1)

		move, _ := got.Move()
		require.Equal(t, 0, move)
		require.Equal(t, math.MaxInt, got.Score)
		require.Equal(t, 1, metric.Cutoffs)
	})
}

func TestSolveMatchesUnprunedMinMax(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		node := randomTree(r, 6)
		turn := You
		if i%2 == 1 {
			turn = Them
		}
		state := mockState{Side: NewSide(turn), node: node}

		for depth := 0; depth <= 6; depth++ {
			wantMove, wantFound, wantScore := fullMinMax(state, depth, turn == You)

			got := Solve[int, int](state, depth)
			gotMove, gotFound := got.Move()

			require.Equal(t, wantScore, got.Score, "tree %d depth %d: pruning should not change the score", i, depth)
			require.Equal(t, wantFound, gotFound, "tree %d depth %d", i, depth)
			if wantFound {
				require.Equal(t, wantMove, gotMove, "tree %d depth %d: first best move should be kept", i, depth)
				require.Less(t, gotMove, len(node.children), "Move should come from Moves()")
			}
		}
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	node := randomTree(r, 7)

	first := Solve[int, int](root(node), 7)
	second := Solve[int, int](root(node), 7)

	require.Equal(t, first, second)
}

func TestMinMaxSolve(t *testing.T) {
	t.Run("matches the package-level search", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		node := randomTree(r, 5)
		m := NewMinMax[int, int, mockState]()

		got, metric := m.Solve(root(node), 5)

		require.Equal(t, Solve[int, int](root(node), 5), got)
		require.Equal(t, 0, metric.Nodes, "Metrics should be off by default")
	})

	t.Run("counts every node on an unprunable tree", func(t *testing.T) {
		state := root(branch(leaf(1), leaf(2), leaf(3)))
		m := NewMinMax[int, int, mockState](WithMetrics())

		_, metric := m.Solve(state, 1)

		require.Equal(t, 4, metric.Nodes)
		require.Equal(t, 3, metric.Leaves)
		require.Equal(t, 0, metric.Cutoffs)
	})

	t.Run("metrics reset between searches", func(t *testing.T) {
		state := root(branch(leaf(1), leaf(2)))
		m := NewMinMax[int, int, mockState](WithMetrics())

		m.Solve(state, 1)
		_, metric := m.Solve(state, 1)

		require.Equal(t, 3, metric.Nodes)
	})
}
