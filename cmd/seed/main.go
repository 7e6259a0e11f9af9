package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchday/internal/app"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

func main() {
	rosterPath := flag.String("roster", "db/seed/roster.yaml", "path to the YAML roster")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).WithService("matchday-seed", cfg.ServiceVersion)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, cfg, logger, *rosterPath)
	if err != nil {
		logger.Error("seed failed", "roster", *rosterPath, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	out, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err == nil {
		fmt.Println(string(out))
	}
	if result.FailedCount > 0 {
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, rosterPath string) (usecase.RosterResult, error) {
	roster, err := loadRosterFile(rosterPath)
	if err != nil {
		return usecase.RosterResult{}, err
	}

	// The memory driver starts empty so the roster is the only data.
	cfg.SeedMemory = false
	repos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return usecase.RosterResult{}, err
	}

	services := app.NewServices(repos, cfg)
	loader := usecase.NewRosterService(services.Teams, services.Players, cfg.SeedWorkers, clockwork.NewRealClock())

	result, loadErr := loader.Load(ctx, roster)
	for _, row := range result.Teams {
		if row.Status != usecase.RosterStatusSuccess {
			logger.Warn("seed team failed", "tricode", row.Tricode, "team_id", row.TeamID, "message", row.Message)
		}
	}
	logger.Info("seed finished",
		"teams", len(result.Teams),
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"workers", cfg.SeedWorkers,
		"storage", cfg.StorageDriver,
	)

	return result, errors.Join(loadErr, repos.Close())
}
