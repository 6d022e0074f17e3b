package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"transcript-tasks/config"
	_ "transcript-tasks/docs" // Swagger docs
	"transcript-tasks/internal/bootstrap"
	"transcript-tasks/internal/httpserver"
	"transcript-tasks/internal/middleware"
	pipelineHTTP "transcript-tasks/internal/pipeline/delivery/http"
	"transcript-tasks/pkg/log"
)

// @title       Transcript Tasks API
// @description Turns meeting recordings and transcripts into Jira issues.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Transcript Tasks...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Pipeline
	components, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize pipeline: ", err)
		return
	}

	pipelineHandler := pipelineHTTP.New(logger, components.UseCase, pipelineHTTP.Config{
		MaxUploadBytes: int64(cfg.HTTPServer.MaxUploadMB) << 20,
		UploadDir:      cfg.Media.TmpDir,
	})

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		MaxClients:      cfg.RateLimit.MaxClients,
		ClientTTLMin:    cfg.RateLimit.ClientTTLMin,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PipelineHandler: pipelineHandler,
		Middleware:      mw,
		Integrations:    components.Integrations,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
