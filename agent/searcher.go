package agent

import (
	"fmt"
	"time"

	"minmax/experiments/metrics"
	"minmax/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Searcher plays the move found by iterative deepening: it searches at depth
// 1, 2, ... maxDepth and keeps the deepest result.
type Searcher[M any, S searcher.Score, T searcher.State[M, S, T]] struct {
	minmax   *searcher.MinMax[M, S, T]
	maxDepth int
	logger   zerolog.Logger
	progress zerolog.Level
}

func NewSearcher[M any, S searcher.Score, T searcher.State[M, S, T]](maxDepth int, options ...searcher.Option) *Searcher[M, S, T] {
	if maxDepth < 1 {
		panic("Must search at least one ply")
	}
	return &Searcher[M, S, T]{
		minmax:   searcher.NewMinMax[M, S, T](options...),
		maxDepth: maxDepth,
		logger:   log.Logger,
		progress: zerolog.DebugLevel,
	}
}

// WithLogger sets the logger used for per-depth progress.
func (a *Searcher[M, S, T]) WithLogger(logger zerolog.Logger) *Searcher[M, S, T] {
	a.logger = logger
	return a
}

// WithProgressLevel sets the level of the per-depth best move lines.
func (a *Searcher[M, S, T]) WithProgressLevel(level zerolog.Level) *Searcher[M, S, T] {
	a.progress = level
	return a
}

func (a *Searcher[M, S, T]) MaxDepth() int {
	return a.maxDepth
}

func (a *Searcher[M, S, T]) FindMove(state T) (M, metrics.SearchMetric, error) {
	var (
		move  M
		found bool
		total metrics.SearchMetric
	)
	start := time.Now()

	for depth := 1; depth <= a.maxDepth; depth++ {
		solution, metric := a.minmax.Solve(state, depth)
		total.Nodes += metric.Nodes
		total.Leaves += metric.Leaves
		total.Cutoffs += metric.Cutoffs
		total.Score = float64(solution.Score)

		if m, ok := solution.Move(); ok {
			move, found = m, true
			a.logger.WithLevel(a.progress).Msgf("depth %d: best move %v", depth, m)
		} else {
			a.logger.WithLevel(a.progress).Msgf("depth %d: no move", depth)
		}
	}

	total.Depth = a.maxDepth
	total.Duration = time.Since(start)
	if !found {
		return move, total, fmt.Errorf("searching %d plies: %w", a.maxDepth, ErrNoMove)
	}
	return move, total, nil
}
