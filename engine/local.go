package engine

import (
	"context"
	"fmt"
	"time"

	"minmax/agent"
	"minmax/experiments/metrics"
	"minmax/searcher"

	"github.com/rs/zerolog/log"
)

type Update[M any, T any] struct {
	Step   int
	Player searcher.Player
	Move   M
	State  T
}

// Local runs a game in-process between two agents, one per side.
type Local[M any, T Game[M, T]] struct {
	State   T
	Agents  map[searcher.Player]agent.Agent[M, T]
	Updates []Update[M, T]
	// OnUpdate, if set, is called after every move.
	OnUpdate func(Update[M, T])
}

func NewLocal[M any, T Game[M, T]](state T, you, them agent.Agent[M, T]) *Local[M, T] {
	if you == nil || them == nil {
		panic("need an agent for each player")
	}
	return &Local[M, T]{
		State: state,
		Agents: map[searcher.Player]agent.Agent[M, T]{
			searcher.You:  you,
			searcher.Them: them,
		},
	}
}

// Run executes the game loop until the game is over.
func (e *Local[M, T]) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %v is starting", e.State.Turn())

	for step := 1; !e.State.IsTerminal(); step++ {
		if step > MaxMoves {
			return gameMetric, moveMetrics, fmt.Errorf("after %d moves: %w", MaxMoves, ErrMoveLimit)
		}
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		player := e.State.Turn()
		move, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("player %v finding move %d: %w", player, step, err)
		}

		next, err := e.State.Play(move)
		if err != nil {
			log.Error().Err(err).Msgf("player %v chose an illegal move %v", player, move)
			return gameMetric, moveMetrics, fmt.Errorf("%w: %w", ErrRejectedMove, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
		u := Update[M, T]{Step: step, Player: player, Move: move, State: next}
		e.Updates = append(e.Updates, u)
		e.State = next
		if e.OnUpdate != nil {
			e.OnUpdate(u)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.Updates)
	if winner := e.State.Winner(); winner != searcher.Empty {
		gameMetric.Winner = winner.String()
	}

	log.Debug().Msgf("game over after %d moves, winner: %q", gameMetric.TotalMoves, gameMetric.Winner)

	return gameMetric, moveMetrics, nil
}
