package components

import (
	"context"
	"log/slog"

	"session-ledger/internal/infra/integration/video"
	"session-ledger/internal/infra/messaging"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/usecase/commands"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewRoomProvisioner,
		NewNotifier,
	),
	fx.Invoke(StartPurchaseConsumer),
)

func NewRoomProvisioner(cfg config.Config) commands.RoomProvisioner {
	if cfg.Video.BaseURL == "" {
		slog.Info("video provider not configured, using local room names")
		return video.LocalRooms{}
	}
	return video.NewClient(cfg.Video)
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config) (commands.Notifier, error) {
	if !cfg.Messaging.Enabled {
		return messaging.NewLogNotifier(), nil
	}
	pub, err := messaging.NewPublisher(cfg.Messaging.URL, cfg.Messaging.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return messaging.NewNotifier(pub, cfg.Messaging.PublishTimeout), nil
}

func StartPurchaseConsumer(lc fx.Lifecycle, cfg config.Config, issuance commands.IssuanceCommands) {
	if !cfg.Messaging.Enabled {
		slog.Info("messaging disabled, purchases are accepted through the webhook only")
		return
	}

	var (
		consumer *messaging.Consumer
		cancel   context.CancelFunc
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var err error
			consumer, err = messaging.NewConsumer(
				cfg.Messaging.URL,
				cfg.Messaging.Exchange,
				cfg.Messaging.PurchaseQueue,
				[]string{messaging.RoutingKeyPurchaseCompleted},
			)
			if err != nil {
				return err
			}
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			return messaging.NewPurchaseConsumer(consumer, issuance).Run(ctx)
		},
		OnStop: func(_ context.Context) error {
			if cancel != nil {
				cancel()
			}
			if consumer != nil {
				return consumer.Close()
			}
			return nil
		},
	})
}
