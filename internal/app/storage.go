package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Repositories is the set of stores one process works against.
type Repositories struct {
	Teams   football.TeamRepository
	Players football.PlayerRepository
	Games   football.GameRepository
	LineUps football.LineUpRepository
	Weather football.WeatherRepository

	close func() error
}

func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// OpenRepositories selects the storage driver named in cfg.
func OpenRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return openMemory(ctx, cfg, logger)
	case config.StorageDriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return Repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openMemory(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	store := memory.NewStore(clockwork.NewRealClock())
	if cfg.SeedMemory {
		if err := memory.Seed(ctx, store); err != nil {
			return Repositories{}, fmt.Errorf("seed memory store: %w", err)
		}
	}
	logger.Info("storage ready", "driver", config.StorageDriverMemory, "seeded", cfg.SeedMemory)

	return Repositories{
		Teams:   memory.NewTeamRepository(store),
		Players: memory.NewPlayerRepository(store),
		Games:   memory.NewGameRepository(store),
		LineUps: memory.NewLineUpRepository(store),
		Weather: memory.NewWeatherRepository(store),
	}, nil
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return Repositories{}, err
	}
	logger.Info("storage ready",
		"driver", config.StorageDriverPostgres,
		"db_name", dbNameFromURL(cfg.DBURL),
		"max_open_conns", cfg.DBMaxOpenConns,
	)

	return Repositories{
		Teams:   postgres.NewTeamRepository(db),
		Players: postgres.NewPlayerRepository(db),
		Games:   postgres.NewGameRepository(db),
		LineUps: postgres.NewLineUpRepository(db),
		Weather: postgres.NewWeatherRepository(db),
		close:   db.Close,
	}, nil
}

// OpenDB opens a traced postgres pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)
	db, err := otelsqlx.Open("postgres", dsn, dbTraceOptions(dsn)...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
