package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gridlife/model"
	"github.com/sheikhrachel/gridlife/utils"
)

// game is everything the driver owns between ticks
type game struct {
	config   utils.Config
	grid     *model.GridEngine
	rng      *rand.Rand
	renderer model.Renderer
	history  *model.History
	stats    *utils.Stats
}

// screenClearer is implemented by renderers that redraw in place
type screenClearer interface {
	Clear()
}

// initializeGame builds and seeds the engine described by config
func initializeGame(config utils.Config, renderer model.Renderer) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	grid, err := model.NewGridEngine(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		grid:     grid,
		rng:      rand.New(rand.NewSource(seed)),
		renderer: renderer,
		history:  model.NewHistory(5),
		stats:    utils.NewStats(),
	}
	if err = seedGrid(g.grid, config, g.rng); err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	return g, nil
}

// seedGrid clears the grid and lays down the configured starting population
func seedGrid(grid *model.GridEngine, config utils.Config, rng model.RandomSource) error {
	if err := grid.Clear(); err != nil {
		return err
	}

	midRow, midCol := grid.Height()/2, grid.Width()/2
	switch config.Pattern {
	case utils.PatternGlider:
		return model.PlaceGlider(grid, 1, 1)
	case utils.PatternBlinker:
		return model.PlaceBlinker(grid, midRow, midCol-1)
	case utils.PatternBlock:
		return model.PlaceBlock(grid, midRow-1, midCol-1)
	default:
		count := model.PopulationFromPercent(grid.Width(), grid.Height(), config.InitialPopulationPercent)
		return grid.Seed(count, rng)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		g.grid.Width(), g.grid.Height(), g.config.Pattern, g.grid.Population())
	fmt.Printf("Generations: %d | Delay: %v | Auto restart: %v\n",
		g.config.MaxGenerations, g.config.FrameRate, g.config.AutoRestart)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and returns status information
func updateGameState(g *game, frameDuration time.Duration) (int, float64, string, bool) {
	livingCells := g.grid.Population()
	density := float64(livingCells) / float64(g.grid.Width()*g.grid.Height()) * 100

	g.stats.Update(g.grid.Generation(), livingCells, frameDuration)

	isStagnant := g.history.IsStagnant(g.grid)
	g.history.Record(g.grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, livingCells int, density float64, status string) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.stats.TotalGenerations, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Restarts: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Restarts,
		time.Since(g.stats.StartTime).Seconds())
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame re-seeds the grid with a fresh starting population
func restartGame(g *game) error {
	if err := seedGrid(g.grid, g.config, g.rng); err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	g.history.Reset()
	g.stats.Restarts++
	fmt.Printf("New population seeded! Living cells: %d\n", g.grid.Population())
	return nil
}

// runGame renders and steps the grid once per frame until MaxGenerations
// steps have run or ctx is cancelled. MaxGenerations of 0 runs until cancelled.
func runGame(ctx context.Context, g *game) error {
	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
		steps         = 0
	)

	for {
		if clearer, ok := g.renderer.(screenClearer); ok {
			clearer.Clear()
		}

		frameStart := time.Now()
		livingCells, density, status, isStagnant := updateGameState(g, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g, livingCells, density, status)
		if err := g.renderer.Display(g.grid); err != nil {
			return errors.Wrap(err, "[runGame]")
		}

		if g.config.MaxGenerations > 0 && steps >= g.config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return nil
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, g.config); shouldRestart && g.config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", reason)
			if err := restartGame(g); err != nil {
				return err
			}
			stagnantCount = 0
		}

		if err := g.grid.Step(); err != nil {
			return errors.Wrap(err, "[runGame]")
		}
		steps++

		if err := wait(ctx, g.config.FrameRate); err != nil {
			return nil
		}
	}
}

// wait blocks for d or until ctx is done, whichever comes first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
