package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seeding patterns understood by the driver.
const (
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation
type Config struct {
	Width                    int           `json:"width"`
	Height                   int           `json:"height"`
	InitialPopulationPercent float64       `json:"initial_population_percent"`
	FrameRate                time.Duration `json:"frame_rate"`
	MaxGenerations           int           `json:"max_generations"`
	Seed                     int64         `json:"seed"`
	AutoRestart              bool          `json:"auto_restart"`
	StagnationThreshold      int           `json:"stagnation_threshold"`
	Pattern                  string        `json:"pattern"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:                    60,
		Height:                   30,
		InitialPopulationPercent: 25,
		FrameRate:                150 * time.Millisecond,
		MaxGenerations:           200,
		Seed:                     0, // time-based
		AutoRestart:              false,
		StagnationThreshold:      5,
		Pattern:                  PatternRandom,
	}
}

// LoadConfig loads configuration from JSON file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, errors.Wrapf(config.Validate(), "[LoadConfig] file: %+v", filename)
}

// Validate rejects configurations the engine cannot be built from
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.InitialPopulationPercent < 0 || c.InitialPopulationPercent > 100:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] initial_population_percent %v outside [0,100]", c.InitialPopulationPercent)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max_generations %d", c.MaxGenerations)
	}

	switch c.Pattern {
	case PatternRandom, PatternGlider, PatternBlinker, PatternBlock:
		return nil
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
}
