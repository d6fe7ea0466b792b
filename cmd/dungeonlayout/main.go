// Package main is the entry point for dungeonlayout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/samdwyer/dungeonlayout/internal/config"
	"github.com/samdwyer/dungeonlayout/internal/rng"
	"github.com/samdwyer/dungeonlayout/internal/server"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
	"github.com/samdwyer/dungeonlayout/internal/ui"
	"github.com/samdwyer/dungeonlayout/internal/viewer"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

const usage = `usage: dungeonlayout <command> [flags]

commands:
  print   write a layout to stdout
  view    browse layouts in the terminal
  serve   serve layouts over HTTP
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Local overrides for DUNGEON_* and OTEL_* variables
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cmd, args := os.Args[1], os.Args[2:]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	bindFlags(fs, cmd, &cfg)
	if err := fs.Parse(args); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	stdr.SetVerbosity(cfg.LogVerbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing is optional; generation works without it
	shutdown, err := telemetry.Setup(ctx, logger)
	if err != nil {
		logger.Error(err, "telemetry setup failed, continuing without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error(err, "telemetry shutdown failed")
			}
		}()
	}

	switch cmd {
	case "print":
		err = runPrint(ctx, cfg, logger)
	case "view":
		// The screen owns the terminal, so generation logging is silenced
		err = runView(ctx, cfg, logr.Discard())
	case "serve":
		err = runServe(ctx, cfg, logger)
	default:
		fmt.Fprint(os.Stderr, usage)
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		logger.Error(err, "command failed", "command", cmd)
		stop()
		os.Exit(1)
	}
}

// bindFlags registers the flags of cmd over the loaded configuration.
func bindFlags(fs *flag.FlagSet, cmd string, cfg *config.Config) {
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "area rows")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "area columns")
	fs.IntVar(&cfg.LogVerbosity, "v", cfg.LogVerbosity, "log verbosity")
	fs.IntVar(&cfg.MaxSynthesisAttempts, "max-attempts", cfg.MaxSynthesisAttempts, "region synthesis attempts")
	fs.IntVar(&cfg.MaxConnectIterations, "max-iterations", cfg.MaxConnectIterations, "region connection iterations")

	switch cmd {
	case "print":
		fs.StringVar(&cfg.Color, "color", cfg.Color, "colorize output: auto, always or never")
	case "serve":
		fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	}
}

func runPrint(ctx context.Context, cfg config.Config, logger logr.Logger) error {
	gen := world.NewGenerator(cfg.Limits(), logger)
	dungeon, err := gen.Generate(ctx, rng.New(cfg.Seed), cfg.Rows, cfg.Columns)
	if err != nil {
		return err
	}

	p := newPrinter(os.Stdout, colorEnabled(cfg.Color, os.Stdout))
	if err := p.Print(dungeon); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "seed %d  shape %s  rooms %d  fingerprint %016x  id %s\n",
		cfg.Seed, dungeon.Shape, len(dungeon.Rooms()), dungeon.Fingerprint(), dungeon.ID())
	return nil
}

func runView(ctx context.Context, cfg config.Config, logger logr.Logger) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Close()

	gen := world.NewGenerator(cfg.Limits(), logger)
	return viewer.New(screen, gen, cfg.Shape(), cfg.Seed).Run(ctx)
}

func runServe(ctx context.Context, cfg config.Config, logger logr.Logger) error {
	if err := cfg.Shape().Validate(); err != nil {
		return err
	}

	gen := world.NewGenerator(cfg.Limits(), logger.V(1))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Routes(gen, cfg.Shape(), logger.WithName("http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "shape", cfg.Shape().String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
