package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minmax/agent"
	"minmax/engine"
	"minmax/experiments/metrics"
	"minmax/meta"
	"minmax/searcher"
	"minmax/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const MaxRandomOpenings = meta.MaxRandomOpenings

var ErrInvalidOptions = errors.New("invalid experiment options")

type Options struct {
	Depths         []int  // One agent per depth
	NumGames       int    // Per matchup
	RandomOpenings int    // Random moves played before the agents take over
	Seed           uint64 // Seeds the openings; game i uses Seed+i
	Workers        int    // Games played concurrently
}

func DefaultOptions() Options {
	return Options{
		Depths:         []int{1, 2, 4, 9},
		NumGames:       meta.Games,
		RandomOpenings: meta.RandomOpenings,
		Seed:           1,
		Workers:        meta.Workers,
	}
}

func (o Options) validate() error {
	if len(o.Depths) == 0 {
		return fmt.Errorf("%w: no depths", ErrInvalidOptions)
	}
	for _, depth := range o.Depths {
		if depth < 1 {
			return fmt.Errorf("%w: depth %d", ErrInvalidOptions, depth)
		}
	}
	if o.NumGames < 1 {
		return fmt.Errorf("%w: %d games per matchup", ErrInvalidOptions, o.NumGames)
	}
	if o.RandomOpenings < 0 || o.RandomOpenings > MaxRandomOpenings {
		return fmt.Errorf("%w: %d random openings", ErrInvalidOptions, o.RandomOpenings)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: %d workers", ErrInvalidOptions, o.Workers)
	}
	return nil
}

type Result struct {
	Setup   metrics.Setup
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

type job struct {
	id     int
	agent1 metrics.AgentConfig
	agent2 metrics.AgentConfig
	seed   uint64
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// RunDepthExperiment pits every depth against every depth, each taking both
// sides, and collects game and move metrics.
func RunDepthExperiment(ctx context.Context, options Options) (Result, error) {
	if err := options.validate(); err != nil {
		return Result{}, err
	}

	configs := make([]metrics.AgentConfig, len(options.Depths))
	for i, depth := range options.Depths {
		configs[i] = metrics.AgentConfig{ID: i + 1, Depth: depth}
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config1 := range configs {
		for _, config2 := range configs {
			matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
		}
	}

	jobs := []job{}
	for _, matchUp := range matchUps {
		for i := 0; i < options.NumGames; i++ {
			id := len(jobs) + 1
			jobs = append(jobs, job{id: id, agent1: matchUp[0], agent2: matchUp[1], seed: options.Seed + uint64(id)})
		}
	}

	setup := metrics.Setup{
		Name:           "depth",
		Matchups:       matchUps,
		NumGames:       options.NumGames,
		RandomOpenings: options.RandomOpenings,
		Seed:           options.Seed,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("starting depth experiment with %d matchups, %d games...", len(matchUps), len(jobs))

	outcomes := make([]outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(options.Workers)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			o, err := playGame(gctx, j, options.RandomOpenings)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}
			outcomes[i] = o
			log.Info().Msgf("completed game %d of %d between agent%d and agent%d, winner: %q",
				j.id, len(jobs), j.agent1.ID, j.agent2.ID, o.game.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msgf("completed depth experiment in %v", setup.Duration)

	result := Result{Setup: setup, Configs: configs}
	for _, o := range outcomes {
		result.Games = append(result.Games, o.game)
		result.Moves = append(result.Moves, o.moves...)
	}
	return result, nil
}

func playGame(ctx context.Context, j job, openings int) (outcome, error) {
	state, err := randomOpening(tictactoe.New(), openings, j.seed)
	if err != nil {
		return outcome{}, err
	}

	e := engine.NewLocal[tictactoe.Move, tictactoe.State](state, newAgent(j.agent1), newAgent(j.agent2))
	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{
		game: metrics.GameRecord{
			ID:         j.id,
			Agent1:     j.agent1.ID,
			Agent2:     j.agent2.ID,
			GameMetric: gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		o.moves = append(o.moves, metrics.MoveRecord{Game: j.id, MoveMetric: mm})
	}
	return o, nil
}

func newAgent(config metrics.AgentConfig) agent.Agent[tictactoe.Move, tictactoe.State] {
	quiet := log.Logger.Level(zerolog.WarnLevel)
	return agent.NewSearcher[tictactoe.Move, int, tictactoe.State](config.Depth,
		searcher.WithMetrics(), searcher.WithLogger(quiet)).WithLogger(quiet)
}

// randomOpening plays n uniformly random legal moves from state.
func randomOpening(state tictactoe.State, n int, seed uint64) (tictactoe.State, error) {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n && !state.IsTerminal(); i++ {
		moves := state.Moves()
		next, err := state.Play(moves[r.Intn(len(moves))].Move)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}

// Write stores the setup, agent configs and records under w.
func (r Result) Write(w *metrics.Writer) error {
	if err := w.WriteSetup(r.Setup); err != nil {
		return err
	}
	log.Info().Msg("stored experiment setup")

	if err := w.WriteAgentConfigs(r.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := w.WriteGameRecords(r.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(r.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}
