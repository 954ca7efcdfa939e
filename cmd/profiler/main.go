// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command profiler analyzes a household energy-consumption dataset with a
// remote AI assistant and prints the resulting summary.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/enersight/profiler"
	"github.com/enersight/profiler/energy"
	"github.com/enersight/profiler/internal/config"
	"github.com/enersight/profiler/openai"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "profiler",
		Usage:   "AI-driven household energy consumption profiling",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
		},
		Commands: []*cli.Command{
			analyzeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Upload the energy dataset and run the analysis",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the energy dataset `FILE`",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Override the model the assistant is created with",
			},
			&cli.DurationFlag{
				Name:  "poll-interval",
				Usage: "Interval between run status fetches",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Abort the analysis after this duration",
			},
			&cli.BoolFlag{
				Name:  "keep-resources",
				Usage: "Leave the created assistant on the server",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if data := c.String("data"); data != "" {
		cfg.DatasetPath = data
	}
	if model := c.String("model"); model != "" {
		cfg.Model = model
	}
	if interval := c.Duration("poll-interval"); interval > 0 {
		cfg.PollInterval = interval
	}
	if timeout := c.Duration("timeout"); timeout > 0 {
		cfg.RunTimeout = timeout
	}
	if c.Bool("keep-resources") {
		cfg.KeepResources = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(c.Bool("verbose"))

	opts := []energy.Option{
		energy.WithModel(cfg.Model),
		energy.WithPollInterval(cfg.PollInterval),
		energy.WithLogger(logger),
		energy.WithOnStatus(func(status profiler.RunStatus) {
			fmt.Println(status)
		}),
	}
	if cfg.KeepResources {
		opts = append(opts, energy.WithKeepResources())
	}

	executor := openai.NewExecutor(cfg.APIKey, openai.WithBaseURL(cfg.BaseURL))
	p := energy.New(executor, opts...)

	ctx := c.Context
	if cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RunTimeout)
		defer cancel()
	}

	analysis, err := p.Analyze(ctx, cfg.DatasetPath)
	if err != nil {
		return err
	}

	fmt.Println("Final result:")
	fmt.Println(analysis.Result)

	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}
