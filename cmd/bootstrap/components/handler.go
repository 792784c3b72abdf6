package components

import (
	"context"

	"session-ledger/internal/handler"
	"session-ledger/internal/handler/api"
	"session-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewLedgerHandler,
		api.NewPolicyHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimitMiddleware,
	),
	fx.Invoke(
		handler.NewRouter,
		runRateLimitSweeper,
	),
)

func runRateLimitSweeper(lc fx.Lifecycle, limiter *middleware.RateLimiter) {
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.Run(stop)
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})
}
