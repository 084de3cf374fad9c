package searcher

import (
	"minmax/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Solution is the outcome of a search: the best move found at the root, if
// any, and the score it leads to.
type Solution[M any, S Score] struct {
	move  M
	found bool
	Score S
}

// Move returns the chosen move. ok is false when the search stopped at the
// root (depth 0, terminal state, or no moves).
func (s Solution[M, S]) Move() (move M, ok bool) {
	return s.move, s.found
}

// Solve computes the best move and score for state within depth plies.
// The root maximizes if it is You's turn.
func Solve[M any, S Score, T State[M, S, T]](state T, depth int) Solution[M, S] {
	b := newBounds[S]()
	return solve[M, S, T](state, depth, b.min, b.max, state.Turn() == You, b, metrics.NewDummyCollector())
}

// SolveWithBounds runs alpha-beta from state with the given window and role.
func SolveWithBounds[M any, S Score, T State[M, S, T]](state T, depth int, alpha, beta S, maximizing bool) Solution[M, S] {
	return solve[M, S, T](state, depth, alpha, beta, maximizing, newBounds[S](), metrics.NewDummyCollector())
}

// bounds holds the score limits of S, computed once per search.
type bounds[S Score] struct {
	min, max S
}

func newBounds[S Score]() bounds[S] {
	return bounds[S]{min: MinScore[S](), max: MaxScore[S]()}
}

func solve[M any, S Score, T State[M, S, T]](state T, depth int, alpha, beta S, maximizing bool, b bounds[S], c metrics.Collector) Solution[M, S] {
	c.AddNode()
	if depth <= 0 || state.IsTerminal() {
		c.AddLeaf()
		return Solution[M, S]{Score: state.Score()}
	}

	if maximizing {
		best := Solution[M, S]{Score: b.min}
		for _, t := range state.Moves() {
			child := solve[M, S, T](t.State, depth-1, alpha, beta, false, b, c)
			if child.Score > best.Score {
				best = Solution[M, S]{move: t.Move, found: true, Score: child.Score}
			}
			if best.Score > alpha {
				alpha = best.Score
			}
			if alpha >= beta {
				c.AddCutoff()
				return best
			}
		}
		return best
	}

	best := Solution[M, S]{Score: b.max}
	for _, t := range state.Moves() {
		child := solve[M, S, T](t.State, depth-1, alpha, beta, true, b, c)
		if child.Score < best.Score {
			best = Solution[M, S]{move: t.Move, found: true, Score: child.Score}
		}
		if best.Score < beta {
			beta = best.Score
		}
		if beta <= alpha {
			c.AddCutoff()
			return best
		}
	}
	return best
}

type Option func(m *minMaxOptions)

type minMaxOptions struct {
	metrics bool
	logger  *zerolog.Logger
}

// WithMetrics collects node, leaf and cutoff counts for every search.
func WithMetrics() Option {
	return func(o *minMaxOptions) {
		o.metrics = true
	}
}

// WithLogger replaces the global logger for search summaries.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *minMaxOptions) {
		o.logger = &logger
	}
}

// MinMax is a reusable alpha-beta searcher for one game type. A MinMax with
// metrics must not run concurrent searches.
type MinMax[M any, S Score, T State[M, S, T]] struct {
	metrics metrics.Collector
	logger  zerolog.Logger
	bounds  bounds[S]
}

func NewMinMax[M any, S Score, T State[M, S, T]](options ...Option) *MinMax[M, S, T] {
	o := &minMaxOptions{}
	for _, option := range options {
		option(o)
	}

	m := &MinMax[M, S, T]{ // Default values
		metrics: metrics.NewDummyCollector(),
		logger:  log.Logger,
		bounds:  newBounds[S](),
	}
	if o.metrics {
		m.metrics = metrics.NewCollector()
	}
	if o.logger != nil {
		m.logger = *o.logger
	}
	return m
}

// Solve behaves like the package-level Solve and also reports search metrics
// (zero valued unless WithMetrics was given).
func (m *MinMax[M, S, T]) Solve(state T, depth int) (Solution[M, S], metrics.SearchMetric) {
	m.metrics.Start(depth)
	solution := solve[M, S, T](state, depth, m.bounds.min, m.bounds.max, state.Turn() == You, m.bounds, m.metrics)
	metric := m.metrics.Complete()

	event := m.logger.Debug().Int("depth", depth).Interface("score", solution.Score)
	if move, ok := solution.Move(); ok {
		event = event.Interface("move", move)
	}
	event.Int("nodes", metric.Nodes).Int("cutoffs", metric.Cutoffs).Msg("search completed")

	return solution, metric
}
