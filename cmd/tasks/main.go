package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"transcript-tasks/config"
	"transcript-tasks/internal/bootstrap"
	"transcript-tasks/internal/cli"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/log"
)

// Set by ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersionInfo(version, commit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{
		In:  os.Stdin,
		Out: os.Stdout,
		Build: func(ctx context.Context) (pipeline.UseCase, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			// stdout carries the JSON result.
			logger := log.Init(log.ZapConfig{
				Level:        cfg.Logger.Level,
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
				Output:       log.OutputStderr,
			})
			c, err := bootstrap.Build(ctx, cfg, logger)
			if err != nil {
				return nil, err
			}
			return c.UseCase, nil
		},
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
