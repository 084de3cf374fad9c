package config

import "minmax/meta"

func DefaultConfig() Config {
	return Config{
		MaxDepth:   meta.MaxDepth,
		HumanFirst: true,
		LogLevel:   "info",
		Symbols: Symbols{
			You:   'X',
			Them:  'O',
			Empty: ' ',
		},
		Experiment: Experiment{
			Games:          meta.Games,
			Workers:        meta.Workers,
			Seed:           1,
			Depths:         []int{1, 2, 4, 9},
			RandomOpenings: meta.RandomOpenings,
		},
	}
}
