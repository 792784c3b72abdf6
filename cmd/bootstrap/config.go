package bootstrap

import (
	"log/slog"

	"session-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		SplitConfig,
	),
	fx.Invoke(logLedgerSettings),
)

// ConfigSections lets constructors depend on the slice of settings they use.
type ConfigSections struct {
	fx.Out

	DB        config.DBConfig
	Log       config.LogConfig
	RateLimit config.RateLimitConfig
	Video     config.VideoConfig
	Messaging config.MessagingConfig
}

func SplitConfig(cfg config.Config) ConfigSections {
	return ConfigSections{
		DB:        cfg.DB,
		Log:       cfg.Log,
		RateLimit: cfg.RateLimit,
		Video:     cfg.Video,
		Messaging: cfg.Messaging,
	}
}

func logLedgerSettings(cfg config.Config, logger *slog.Logger) {
	logger.Info("ledger settings loaded",
		"default_credit_expiry", cfg.Ledger.DefaultCreditExpiry,
		"default_currency", cfg.Ledger.DefaultCurrency,
		"messaging_enabled", cfg.Messaging.Enabled,
		"rate_limit_rps", cfg.RateLimit.RPS,
	)
}
