package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"minmax/agent"
	"minmax/config"
	"minmax/engine"
	"minmax/experiments"
	"minmax/experiments/metrics"
	"minmax/searcher"
	"minmax/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	flagConfig     = flag.String("config", "", "Path to a config file (default: XDG minmax/config.json)")
	flagDepth      = flag.Int("depth", 0, "Deepest search for the engine's move")
	flagFirst      = flag.String("first", "", "Who moves first: human or engine")
	flagLogLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagExperiment = flag.Bool("experiment", false, "Run the self-play depth experiment instead of a game")
	flagGames      = flag.Int("games", 0, "Self-play games per matchup")
	flagWorkers    = flag.Int("workers", 0, "Self-play games played concurrently")
	flagSeed       = flag.Uint64("seed", 0, "Seed for random self-play openings")
	flagOut        = flag.String("out", "", "Directory for experiment results")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the XDG config directory and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := applyFlags(cfg, setFlags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *flagSaveConfig {
		path, err := cfg.Save()
		if err != nil {
			log.Error().Err(err).Msg("failed to save config")
			return 1
		}
		log.Info().Msgf("saved config to %s", path)
		return 0
	}

	if *flagExperiment {
		return runExperiment(cfg)
	}
	return playGame(cfg)
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overrides cfg with the flags in set, then validates the result.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if set["depth"] {
		cfg.MaxDepth = *flagDepth
	}
	if set["first"] {
		switch *flagFirst {
		case "human":
			cfg.HumanFirst = true
		case "engine":
			cfg.HumanFirst = false
		default:
			return fmt.Errorf("unknown -first %q: want human or engine", *flagFirst)
		}
	}
	if set["log-level"] {
		cfg.LogLevel = *flagLogLevel
	}
	if set["games"] {
		cfg.Experiment.Games = *flagGames
	}
	if set["workers"] {
		cfg.Experiment.Workers = *flagWorkers
	}
	if set["seed"] {
		cfg.Experiment.Seed = *flagSeed
	}
	return cfg.Validate()
}

// playGame runs an interactive game: the human plays You, the engine Them.
func playGame(cfg *config.Config) int {
	symbols := tictactoe.Symbols{You: cfg.Symbols.You, Them: cfg.Symbols.Them, Empty: cfg.Symbols.Empty}
	fmt.Println("Welcome to the tic-tac-toe AI.")
	fmt.Printf("You are player %c, the bot is %c.\n", symbols.You, symbols.Them)

	state := tictactoe.New()
	if !cfg.HumanFirst {
		state = tictactoe.NewState(searcher.Them, tictactoe.Grid{})
	}
	human := agent.NewHuman(os.Stdin, os.Stdout, symbols)
	bot := agent.NewSearcher[tictactoe.Move, int, tictactoe.State](cfg.MaxDepth).
		WithProgressLevel(zerolog.InfoLevel)

	e := engine.NewLocal[tictactoe.Move, tictactoe.State](state, human, bot)
	e.OnUpdate = func(u engine.Update[tictactoe.Move, tictactoe.State]) {
		if u.Player == searcher.You && !u.State.IsTerminal() {
			fmt.Println("Computing AI move...")
		}
		if u.Player == searcher.Them {
			fmt.Printf("The bot plays %v\n", u.Move)
		}
	}

	_, _, err := e.Run(context.Background())
	if errors.Is(err, engine.ErrRejectedMove) {
		fmt.Println("AI move is invalid!")
		log.Error().Err(err).Msg("engine chose a move the game rejected")
		return 1
	}
	if err != nil {
		log.Error().Err(err).Msg("game aborted")
		return 1
	}

	fmt.Println(e.State.Render(symbols))
	switch e.State.Winner() {
	case searcher.You:
		fmt.Println("You won, gg!")
	case searcher.Them:
		fmt.Println("You lost, gg!")
	default:
		fmt.Println("This is a draw :(")
	}
	return 0
}

func runExperiment(cfg *config.Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := experiments.Options{
		Depths:         cfg.Experiment.Depths,
		NumGames:       cfg.Experiment.Games,
		RandomOpenings: cfg.Experiment.RandomOpenings,
		Seed:           cfg.Experiment.Seed,
		Workers:        cfg.Experiment.Workers,
	}
	result, err := experiments.RunDepthExperiment(ctx, options)
	if err != nil {
		log.Error().Err(err).Msg("experiment failed")
		return 1
	}

	out := *flagOut
	if out == "" {
		timestamp := time.Now().UTC().Format(time.RFC3339)
		out = filepath.Join("experiments", "results", timestamp)
	}
	writer, err := metrics.NewWriter(out)
	if err != nil {
		log.Error().Err(err).Msg("failed to create experiment writer")
		return 1
	}
	if err := result.Write(writer); err != nil {
		log.Error().Err(err).Msg("failed to store experiment results")
		return 1
	}
	log.Info().Msgf("results written to %s", writer.Dir())
	return 0
}
