package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gridlife/model"
	"github.com/sheikhrachel/gridlife/utils"
)

const configFile = "config.json"

var errInterrupted = errors.New("interrupted")

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Printf("Error loading %s: %v\n", configFile, err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config, &model.TerminalRenderer{})
	if err != nil {
		fmt.Printf("Error initializing game: %v\n", err)
		os.Exit(1)
	}
	displayGameInfo(g)
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return runGame(ctx, g)
	})
	eg.Go(func() error {
		select {
		case <-sigChan:
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, errInterrupted):
		fmt.Println("\nShutting down gracefully...")
	case err != nil:
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
