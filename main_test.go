package main

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gridlife/model"
	"github.com/sheikhrachel/gridlife/utils"
)

// recordingRenderer remembers the generation and population of every frame.
type recordingRenderer struct {
	generations []int
	populations []int
}

func (r *recordingRenderer) Display(g *model.GridEngine) error {
	r.generations = append(r.generations, g.Generation())
	r.populations = append(r.populations, g.Population())
	return nil
}

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height = 12, 10
	config.FrameRate = 0
	config.Seed = 1
	config.MaxGenerations = 3
	return config
}

func TestInitializeGameSeedsPopulation(t *testing.T) {
	config := testConfig()
	g, err := initializeGame(config, &recordingRenderer{})
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	want := model.PopulationFromPercent(12, 10, config.InitialPopulationPercent)
	if g.grid.Population() != want {
		t.Fatalf("population %d, expected %d", g.grid.Population(), want)
	}
}

func TestInitializeGameInvalidConfig(t *testing.T) {
	config := testConfig()
	config.Width = 0
	if _, err := initializeGame(config, &recordingRenderer{}); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSeedGridPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{utils.PatternGlider, 5},
		{utils.PatternBlinker, 3},
		{utils.PatternBlock, 4},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			grid, err := model.NewGridEngine(8, 8)
			if err != nil {
				t.Fatalf("NewGridEngine: %v", err)
			}
			config := testConfig()
			config.Pattern = tt.pattern
			if err = seedGrid(grid, config, nil); err != nil {
				t.Fatalf("seedGrid: %v", err)
			}
			if grid.Population() != tt.want {
				t.Fatalf("population %d, expected %d", grid.Population(), tt.want)
			}
		})
	}
}

func TestRunGameStopsAtMaxGenerations(t *testing.T) {
	renderer := &recordingRenderer{}
	config := testConfig()
	config.Pattern = utils.PatternBlinker

	g, err := initializeGame(config, renderer)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if err = runGame(context.Background(), g); err != nil {
		t.Fatalf("runGame: %v", err)
	}

	wantGenerations := []int{0, 1, 2, 3}
	if len(renderer.generations) != len(wantGenerations) {
		t.Fatalf("rendered %d frames, expected %d", len(renderer.generations), len(wantGenerations))
	}
	for i, gen := range wantGenerations {
		if renderer.generations[i] != gen {
			t.Errorf("frame %d showed generation %d, expected %d", i, renderer.generations[i], gen)
		}
		if renderer.populations[i] != 3 {
			t.Errorf("frame %d population %d, expected 3", i, renderer.populations[i])
		}
	}
}

func TestRunGameStopsWhenCancelled(t *testing.T) {
	renderer := &recordingRenderer{}
	config := testConfig()
	config.MaxGenerations = 0

	g, err := initializeGame(config, renderer)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = runGame(ctx, g); err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if len(renderer.generations) != 1 {
		t.Fatalf("rendered %d frames after cancellation, expected 1", len(renderer.generations))
	}
}

func TestRunGameRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.InitialPopulationPercent = 0
	config.AutoRestart = true
	config.MaxGenerations = 2

	g, err := initializeGame(config, &recordingRenderer{})
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if err = runGame(context.Background(), g); err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if g.stats.Restarts != 2 {
		t.Fatalf("restarts %d, expected 2", g.stats.Restarts)
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	tests := []struct {
		name          string
		livingCells   int
		stagnantCount int
		restart       bool
	}{
		{"extinct", 0, 0, true},
		{"stagnant", 10, config.StagnationThreshold, true},
		{"active", 10, config.StagnationThreshold - 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := checkRestartConditions(tt.livingCells, tt.stagnantCount, config); got != tt.restart {
				t.Fatalf("restart=%v, expected %v", got, tt.restart)
			}
		})
	}
}
