// Command mazegrow generates a perfect maze with the growing-tree algorithm
// and writes it as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/mazegrow/growtree"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "mazegrow:", err)
		}
		os.Exit(1)
	}
}

// run parses args, builds the generator and steps it to completion.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mazegrow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "Path to maze config JSON file")
		width      = fs.Int("width", 0, "Maze width in cells (overrides config)")
		height     = fs.Int("height", 0, "Maze height in cells (overrides config)")
		startX     = fs.Int("start-x", -1, "Start cell X (overrides config)")
		startY     = fs.Int("start-y", -1, "Start cell Y (overrides config)")
		strategy   = fs.String("strategy", "", "Candidate strategy: newest, random, newest-random (overrides config)")
		seed       = fs.Int64("seed", 0, "Random seed; 0 keeps the config value (overrides config)")
		logLevel   = fs.String("log-level", "info", "Log level: debug, info, warn, error")
		logFormat  = fs.String("log-format", "text", "Log format: text or json")
		outPath    = fs.String("out", "", "Write the maze JSON to this file instead of stdout")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := growtree.DefaultConfig()
	if *configFile != "" {
		loaded, err := growtree.LoadConfig(*configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg.Merge(&growtree.Config{Width: *width, Height: *height, Strategy: *strategy, Seed: *seed})
	if *startX >= 0 {
		cfg.StartX = *startX
	}
	if *startY >= 0 {
		cfg.StartY = *startY
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		return err
	}

	gen, err := growtree.NewFromConfig(cfg, growtree.WithLogger(logger), growtree.WithContext(ctx))
	if err != nil {
		return err
	}
	if err := gen.Run(ctx); err != nil {
		return fmt.Errorf("generation stopped after %d steps: %w", gen.Steps(), err)
	}

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gen.Maze()); err != nil {
		return fmt.Errorf("failed to write maze: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}
