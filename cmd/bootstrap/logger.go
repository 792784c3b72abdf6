package bootstrap

import (
	"log/slog"

	"session-ledger/internal/handler/middleware"
	"session-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	return middleware.NewLogger(cfg).GetSlogLogger()
}
