// Aura orchestrator server — provides the HTTP API, manages the story
// worker pool, and drives wave execution.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/api"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/database"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/gate"
	"github.com/johnazariah/aura-sub009/pkg/gitops"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/orchestrator"
	"github.com/johnazariah/aura-sub009/pkg/services"
	"github.com/johnazariah/aura-sub009/pkg/tools"
	"github.com/johnazariah/aura-sub009/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		return
	}

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting Aura",
		"version", version.GitCommit,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Load agent definitions and optionally watch the directory
	registry := agents.NewRegistry(cfg.Agents.Dir)
	if err := registry.Load(); err != nil {
		slog.Error("Failed to load agent definitions", "dir", cfg.Agents.Dir, "error", err)
		os.Exit(1)
	}
	slog.Info("Agent definitions loaded", "dir", cfg.Agents.Dir, "count", registry.Len())

	var watcher *agents.Watcher
	if cfg.Agents.Watch {
		watcher = agents.NewWatcher(registry, 0)
		if err := watcher.Start(ctx); err != nil {
			slog.Error("Failed to start agent directory watcher", "error", err)
			os.Exit(1)
		}
		slog.Info("Agent directory watcher started")
	}

	// 4. Create LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 5. Event bus and domain services
	bus := events.NewBus()
	publisher := events.NewPublisher(bus, dbClient.Client)

	var github *gitops.GitHubClient
	if token := os.Getenv(cfg.GitHub.TokenEnv); token != "" {
		github = gitops.NewGitHubClient(token)
		slog.Info("GitHub integration enabled")
	} else {
		slog.Info("GitHub integration disabled", "token_env", cfg.GitHub.TokenEnv)
	}

	stories := services.NewStoryService(dbClient.Client, cfg, registry, llmClient, gitops.New(), github, publisher)
	steps := services.NewStepService(dbClient.Client, registry, publisher)
	chat := services.NewChatService(dbClient.Client, cfg, registry, llmClient, publisher)
	slog.Info("Services initialized")

	// 6. Step runner, wave scheduler, and story worker pool (before HTTP server)
	runner := orchestrator.NewRunner(cfg, registry, llmClient, tools.NewRegistry(), steps, chat, publisher)
	scheduler := orchestrator.NewScheduler(cfg, stories, steps, gate.NewRunner(cfg.Gate), publisher, runner)
	pool := orchestrator.NewPool(dbClient.Client, cfg, scheduler)
	pool.Start(ctx)

	// Story cancellation must interrupt in-flight waves, not just flip status.
	stories.SetCancelHook(pool.CancelStory)

	// 7. Create HTTP server
	server := api.NewServer(cfg, dbClient, registry, bus, stories, steps, chat, runner)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.Router(),
	}

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Aura started successfully",
		"agents", registry.Len(),
		"story_concurrency", cfg.Orchestrator.StoryConcurrency)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting requests, then drain stories.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			slog.Error("Error stopping agent directory watcher", "error", err)
		}
	}

	// Pool.Stop cancels in-flight stories and waits up to the configured
	// drain timeout for their cancellation writes to land.
	poolDone := make(chan struct{})
	go func() {
		pool.Stop()
		close(poolDone)
	}()

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Orchestrator.GracefulShutdownTimeout)
	defer drainCancel()
	select {
	case <-poolDone:
		slog.Info("Story worker pool stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded — interrupted stories resume on next start")
	}

	slog.Info("Shutdown complete")
}
