package bootstrap

import (
	"context"
	"log/slog"

	"session-ledger/internal/infra/db"
	"session-ledger/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the ledger pool; every credit and booking write goes through it.
func NewDB(lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("ledger database connected",
		"host", cfg.Host,
		"database", cfg.DBName,
		"max_conns", pool.Config().MaxConns,
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing ledger database",
				"acquired_conns", stat.AcquiredConns(),
				"total_conns", stat.TotalConns(),
			)
			cleanup()
			return nil
		},
	})

	return pool, nil
}
