package engine

import (
	"context"
	"errors"

	"minmax/experiments/metrics"
	"minmax/searcher"
)

const MaxMoves = 10000

var (
	ErrRejectedMove = errors.New("agent move rejected by the game")
	ErrMoveLimit    = errors.New("move limit reached")
)

// Game is what the engine needs from a position beyond searching it.
type Game[M any, T any] interface {
	Turn() searcher.Player
	IsTerminal() bool
	Winner() searcher.Player
	Play(move M) (T, error)
}

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
