package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"minmax/meta"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "minmax/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Symbols struct {
	You   rune `json:"you"`
	Them  rune `json:"them"`
	Empty rune `json:"empty"`
}

type Experiment struct {
	Games          int    `json:"games"`
	Workers        int    `json:"workers"`
	Seed           uint64 `json:"seed"`
	Depths         []int  `json:"depths"`
	RandomOpenings int    `json:"random_openings"`
}

type Config struct {
	MaxDepth   int        `json:"max_depth"`
	HumanFirst bool       `json:"human_first"`
	LogLevel   string     `json:"log_level"`
	Symbols    Symbols    `json:"symbols"`
	Experiment Experiment `json:"experiment"`
}

// Load reads the config at path, or the first minmax/config.json in the XDG
// config directories when path is empty. Without a file it returns defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		absPath, err := xdg.SearchConfigFile(cfgFile)
		if err != nil { // No config file
			return &config, config.Validate()
		}
		path = absPath
	}
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return &InvalidConfig{fmt.Sprintf("max_depth must be positive, got %d", c.MaxDepth)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log_level %q", c.LogLevel)}
	}
	for _, r := range []rune{c.Symbols.You, c.Symbols.Them, c.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Symbols.You == c.Symbols.Them || c.Symbols.You == c.Symbols.Empty || c.Symbols.Them == c.Symbols.Empty {
		return &InvalidConfig{"symbols must be distinct"}
	}
	return c.Experiment.validate()
}

func (e *Experiment) validate() error {
	if e.Games < 1 {
		return &InvalidConfig{fmt.Sprintf("experiment.games must be positive, got %d", e.Games)}
	}
	if e.Workers < 1 {
		return &InvalidConfig{fmt.Sprintf("experiment.workers must be positive, got %d", e.Workers)}
	}
	if len(e.Depths) == 0 {
		return &InvalidConfig{"experiment.depths must not be empty"}
	}
	for _, depth := range e.Depths {
		if depth < 1 {
			return &InvalidConfig{fmt.Sprintf("experiment.depths must be positive, got %d", depth)}
		}
	}
	if e.RandomOpenings < 0 || e.RandomOpenings > meta.MaxRandomOpenings {
		return &InvalidConfig{fmt.Sprintf("experiment.random_openings must be between 0 and %d, got %d", meta.MaxRandomOpenings, e.RandomOpenings)}
	}
	return nil
}

// Save writes the config to the user's XDG config directory and returns the
// file path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("locating config file: %w", err)
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return &InvalidConfig{fmt.Sprintf("%s: offset %d: %v", filePath, syntaxErr.Offset, err)}
		}
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
