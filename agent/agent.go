package agent

import (
	"errors"

	"minmax/experiments/metrics"
)

var ErrNoMove = errors.New("no move found")

type Agent[M any, T any] interface {
	// FindMove returns the move to play in state and performance metrics
	// (if collected) from finding it
	FindMove(state T) (M, metrics.SearchMetric, error)
}
