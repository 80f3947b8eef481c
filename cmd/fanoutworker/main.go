package main

import (
	"context"
	"log/slog"
	"os"

	"petkeeper/config"
	"petkeeper/internal/delivery"
	"petkeeper/internal/delivery/worker"
	"petkeeper/internal/delivery/worker/handler"
	"petkeeper/internal/infra/cache"
	"petkeeper/internal/infra/firebaseapp"
	logs "petkeeper/internal/infra/log"
	"petkeeper/internal/infra/metrics"
	"petkeeper/internal/infra/notification"
	"petkeeper/internal/infra/persistence"
	"petkeeper/internal/infra/pubsub"
	"petkeeper/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		persistence.Module(cfg),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		firebaseapp.New,
		firebaseapp.NewMessagingClient,
		metrics.NewRegistry,
		metrics.NewCollector,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
			metrics.NewMetricsRecorder,
			cache.NewMessageDeduplicator,
		),
		// family.notify events may publish tokens.cleanup follow-ups of their own
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewMembershipService,
			impl.NewDispatchService,
			impl.NewNotificationService,
			impl.NewTokenHygieneService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
