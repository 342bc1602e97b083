package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"

	"windasim/src/config"
	"windasim/src/elev"
	"windasim/src/input"
	"windasim/src/render"
	"windasim/src/scenario"
	"windasim/src/timer"
	"windasim/src/utils"
)

func main() {
	configPath := flag.String("config", "windasim.yaml", "YAML config file, skipped when missing")
	envPath := flag.String("env", ".env", "env file with WINDASIM_* overrides, skipped when missing")
	scenarioPath := flag.String("scenario", "", "replay a YAML scenario headlessly instead of reading the keyboard")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level := elev.ParseLevel(cfg.LogLevel)
	if *debug {
		level = slog.LevelDebug
	}
	logCloser, err := elev.InitLogger(level, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	sim, err := elev.New(cfg)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	renderer := render.New(language.English)

	if *scenarioPath != "" {
		err = runScenario(sim, cfg, *scenarioPath, renderer)
	} else {
		err = runInteractive(sim, cfg, renderer)
	}
	if err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func runScenario(sim *elev.Sim, cfg config.Config, path string, renderer *render.Renderer) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	snap, ticks, err := scenario.Run(sim, sc, time.Now(), cfg.TickInterval)
	slog.Info("Scenario finished", "name", snap.Name, "ticks", ticks)
	if renderErr := renderer.Render(os.Stdout, snap); renderErr != nil {
		return renderErr
	}
	return err
}

func runInteractive(sim *elev.Sim, cfg config.Config, renderer *render.Renderer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	mgr := elev.StartManager(ctx, sim)

	tickCh := make(chan time.Time, 1)
	tickAction := make(chan timer.TimerAction)
	go timer.Ticker(ctx, cfg.TickInterval, tickCh, tickAction)

	callCh := make(chan input.Call)
	pauseCh := make(chan struct{})
	inputErr := make(chan error, 1)
	go func() {
		inputErr <- input.Listen(ctx, cfg.Floors, callCh, pauseCh)
	}()

	fmt.Printf("Simulation %s: type origin and destination floor digits (0-%d). p pauses, Esc clears, q quits.\n",
		sim.Name(), cfg.Floors-1)

	paused := false
	for {
		select {
		case now := <-tickCh:
			mgr.Step(now)
			if snap, ok := mgr.Snapshot(); ok {
				utils.PrintStatus(os.Stdout, snap)
			}

		case call := <-callCh:
			mgr.Call(call.Origin, call.Destination)
			slog.Info("Call placed", "call", elev.FormatCall(call.Origin, call.Destination))

		case <-pauseCh:
			paused = !paused
			action := timer.Start
			if paused {
				action = timer.Stop
			}
			select {
			case tickAction <- action:
			case <-ctx.Done():
				return nil
			}
			slog.Info("Pause toggled", "paused", paused)

		case err := <-inputErr:
			cancel()
			<-mgr.Done()
			fmt.Println()
			if renderErr := renderer.Render(os.Stdout, sim.Snapshot()); renderErr != nil {
				return renderErr
			}
			if err == nil || errors.Is(err, input.ErrQuit) {
				return nil
			}
			return err

		case <-ctx.Done():
			return nil
		}
	}
}
